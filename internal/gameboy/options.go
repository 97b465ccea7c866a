package gameboy

import (
	"io"

	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Trace logs every executed instruction at debug level.
func Trace() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Debug = true
	}
}

// NoBios starts execution at 0x100 with the registers set to the
// values left behind by the boot ROM. This is the default.
func NoBios() Opt {
	return func(gb *GameBoy) {
		gb.CPU.Reset()
	}
}

// WithLogger sets the logger of the GameBoy, and of its CPU.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
		gb.CPU.SetLogger(log)
		gb.MMU.Log = log
	}
}

// WithSerial attaches a sink for the bytes written to the
// serial data register.
func WithSerial(w io.ByteWriter) Opt {
	return func(gb *GameBoy) {
		gb.MMU.AttachSerial(w)
	}
}

// WithTicksPerFrame sets the tick budget of a Frame.
func WithTicksPerFrame(ticks int) Opt {
	return func(gb *GameBoy) {
		gb.ticksPerFrame = ticks
	}
}

// WithHaltBug enables or disables emulation of the HALT bug,
// which is enabled by default.
func WithHaltBug(enabled bool) Opt {
	return func(gb *GameBoy) {
		gb.CPU.SetHaltBug(enabled)
	}
}
