// Package interrupts provides the interrupt context shared
// between the CPU, the bus and the timer.
package interrupts

import (
	"github.com/thelolagemann/sm83/internal/types"
)

const (
	// VBlankFlag is the VBlank interrupt flag (bit 0).
	VBlankFlag = types.Bit0
	// LCDFlag is the LCD STAT interrupt flag (bit 1).
	LCDFlag = types.Bit1
	// TimerFlag is the Timer interrupt flag (bit 2),
	// which is requested when the timer overflows,
	// (types.TIMA > 0xFF).
	TimerFlag = types.Bit2
	// SerialFlag is the Serial interrupt flag (bit 3).
	SerialFlag = types.Bit3
	// JoypadFlag is the Joypad interrupt Flag (bit 4).
	JoypadFlag = types.Bit4

	// Mask covers the 5 architecturally meaningful
	// bits of the Flag and Enable registers.
	Mask = 0x1F
)

// Vectors holds the handler address of each interrupt,
// indexed by its bit number.
var Vectors = [5]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// Service is the interrupt context. It is owned by the CPU
// and passed by reference to the bus and the timer, which
// read and write it, but never retain it.
//
// When an interrupt is requested, the corresponding bit
// in the Flag register is set. When an interrupt is
// enabled, the corresponding bit in the Enable register
// is set. Bits 5-7 of both registers carry no meaning,
// but are stored verbatim so that software can read
// back what it wrote.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Pending returns the interrupts that are both requested
// and enabled.
func (s *Service) Pending() uint8 {
	return s.Flag & s.Enable & Mask
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Pending() != 0
}

// Acknowledge selects the highest priority pending interrupt
// (the lowest set bit), clears its request, and returns its
// handler address. ok is false when nothing is pending.
func (s *Service) Acknowledge() (vector uint16, ok bool) {
	pending := s.Pending()
	for i := uint8(0); i < 5; i++ {
		flag := uint8(1 << i)
		if pending&flag != 0 {
			s.Flag &^= flag
			return Vectors[i], true
		}
	}

	return 0, false
}

// Reset clears both registers.
func (s *Service) Reset() {
	s.Flag = 0
	s.Enable = 0
}
