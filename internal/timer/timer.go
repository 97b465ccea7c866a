// Package timer provides an implementation of the Game Boy
// timer. It is used to generate interrupts at a specific
// frequency. The frequency can be configured using the
// types.TAC register.
package timer

import (
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/types"
)

// frequencies holds the number of ticks between TIMA increments,
// indexed by the clock select bits of TAC.
var frequencies = [4]uint16{1024, 16, 64, 256}

// dividerPeriod is the number of ticks between DIV increments.
const dividerPeriod = 256

// Controller is a timer controller. It has four registers:
//
//   - DIV: incremented once every 256 ticks.
//   - TIMA: incremented at the rate selected by TAC, while enabled.
//   - TMA: the value TIMA is reloaded with when it overflows.
//   - TAC: enables TIMA and selects its frequency.
//
// The controller holds no reference to the interrupt context,
// it is handed one on every tick.
type Controller struct {
	div  uint8
	tima uint8
	tma  uint8
	tac  uint8

	divCounter  uint16 // ticks since DIV last incremented
	timaCounter uint16 // ticks since TIMA last incremented
}

// NewController returns a new timer controller.
func NewController() *Controller {
	return &Controller{}
}

// Tick advances the timer by a single tick. On a TIMA overflow
// TIMA is reloaded from TMA and a timer interrupt is requested
// in the same tick.
func (c *Controller) Tick(irq *interrupts.Service) {
	c.divCounter++
	if c.divCounter == dividerPeriod {
		c.div++
		c.divCounter = 0
	}

	if !c.Enabled() {
		return
	}

	c.timaCounter++
	// >= rather than == as TAC may select a shorter period
	// while the counter is already past it
	if c.timaCounter >= frequencies[c.tac&0b11] {
		c.timaCounter = 0
		if c.tima == 0xFF {
			c.tima = c.tma
			irq.Request(interrupts.TimerFlag)
		} else {
			c.tima++
		}
	}
}

// Enabled returns true if TIMA is counting.
func (c *Controller) Enabled() bool {
	return c.tac&types.Bit2 != 0
}

// Period returns the number of ticks between TIMA increments
// for the currently selected frequency.
func (c *Controller) Period() uint16 {
	return frequencies[c.tac&0b11]
}

// Read returns the value of the register at the specified address.
// Addresses outside of the timer return 0xFF.
func (c *Controller) Read(address uint16) uint8 {
	switch address {
	case types.DIV:
		return c.div
	case types.TIMA:
		return c.tima
	case types.TMA:
		return c.tma
	case types.TAC:
		return c.tac
	}

	return 0xFF
}

// Write writes the value to the register at the specified address.
// Any write to DIV resets it, along with its sub-tick counter.
func (c *Controller) Write(address uint16, value uint8) {
	switch address {
	case types.DIV:
		c.div = 0
		c.divCounter = 0
	case types.TIMA:
		c.tima = value
	case types.TMA:
		c.tma = value
	case types.TAC:
		c.tac = value
	}
}

// Reset returns the timer to its power on state.
func (c *Controller) Reset() {
	*c = Controller{}
}
