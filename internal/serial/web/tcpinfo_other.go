//go:build !linux

package web

import (
	"net"
	"time"

	"github.com/pkg/errors"
)

var errNoTCPInfo = errors.New("TCP_INFO is only available on linux")

func tcpRTT(*net.TCPConn) (time.Duration, error) {
	return 0, errNoTCPInfo
}
