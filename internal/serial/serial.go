// Package serial provides sinks for the bytes written to the
// serial data register (types.SB). The bus emits every written
// byte to a single io.ByteWriter, which may be any of the sinks
// in this package, a *bytes.Buffer, or a Tee of several.
package serial

import (
	"bytes"
	"io"
	"strings"

	"github.com/thelolagemann/sm83/pkg/log"
)

// nullSink is an implementation of io.ByteWriter that discards
// everything. This is used when no sink is attached to the bus.
type nullSink struct{}

// WriteByte does nothing.
func (nullSink) WriteByte(byte) error { return nil }

// Discard returns a sink that drops every byte.
func Discard() io.ByteWriter {
	return nullSink{}
}

// Result is the outcome reported by a test ROM over serial.
type Result uint8

const (
	// Running means neither "Passed" nor "Failed" has been seen.
	Running Result = iota
	// Passed means the output contains "Passed".
	Passed
	// Failed means the output contains "Failed".
	Failed
)

func (r Result) String() string {
	switch r {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	}
	return "running"
}

// Buffer captures serial output. Test ROMs print their
// result as text, so Buffer also reports whether the output
// so far reads as a pass or a failure.
type Buffer struct {
	buf bytes.Buffer
}

// WriteByte implements io.ByteWriter.
func (b *Buffer) WriteByte(c byte) error {
	return b.buf.WriteByte(c)
}

// String returns everything received so far.
func (b *Buffer) String() string {
	return b.buf.String()
}

// Bytes returns everything received so far.
func (b *Buffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Result inspects the output for the "Passed"/"Failed" markers.
func (b *Buffer) Result() Result {
	out := b.buf.String()
	switch {
	case strings.Contains(out, "Failed"):
		return Failed
	case strings.Contains(out, "Passed"):
		return Passed
	}
	return Running
}

// LogSink collects serial output into lines and emits each
// completed line through a log.Logger.
type LogSink struct {
	log  log.Logger
	line []byte
}

// NewLogSink returns a LogSink writing to l.
func NewLogSink(l log.Logger) *LogSink {
	return &LogSink{log: l}
}

// WriteByte implements io.ByteWriter.
func (s *LogSink) WriteByte(c byte) error {
	if c == '\n' {
		s.Flush()
		return nil
	}
	s.line = append(s.line, c)
	return nil
}

// Flush emits any partial line.
func (s *LogSink) Flush() {
	if len(s.line) == 0 {
		return
	}
	s.log.Infof("serial: %s", s.line)
	s.line = s.line[:0]
}

type tee []io.ByteWriter

// Tee returns a sink that duplicates every byte to each of
// the given sinks. Every sink receives the byte even if an
// earlier one fails, the first error is returned.
func Tee(sinks ...io.ByteWriter) io.ByteWriter {
	return tee(sinks)
}

func (t tee) WriteByte(c byte) error {
	var err error
	for _, s := range t {
		if e := s.WriteByte(c); e != nil && err == nil {
			err = e
		}
	}
	return err
}
