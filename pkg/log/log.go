// Package log provides the logger used throughout the emulator. The
// default implementation is backed by logrus.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the emulator.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(str string)
}

// New returns a logger writing to stderr at info level.
func New() Logger {
	return NewWithOutput(os.Stderr, logrus.InfoLevel)
}

// NewWithLevel returns a logger writing to stderr at the named
// level (e.g. "debug", "info", "warn").
func NewWithLevel(level string) (Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return NewWithOutput(os.Stderr, lvl), nil
}

// NewWithOutput returns a logger writing to w at the given level.
func NewWithOutput(w io.Writer, level logrus.Level) Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{l}
}

// logger adapts a logrus.Logger to Logger.
type logger struct {
	*logrus.Logger
}

func (l *logger) Fatal(str string) {
	l.Logger.Fatal(str)
}
