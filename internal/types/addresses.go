package types

// HardwareAddress represents the address of a hardware
// register. The hardware registers decoded by the bus
// live at 0xFF01 - 0xFF0F and 0xFFFF.
type HardwareAddress = uint16

const (
	// SB is the address of the serial data register. Every
	// byte written to SB is emitted to the attached serial
	// sink, reads are unmapped.
	SB HardwareAddress = 0xFF01
	// DIV is the address of the divider register. DIV is
	// incremented once every 256 ticks, regardless of TAC.
	// Writing any value to DIV resets it to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is the address of the timer counter. TIMA is
	// incremented at the rate selected by TAC, and when it
	// overflows it is reloaded from TMA and a timer
	// interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the address of the timer modulo register, the
	// value loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC is the address of the timer control register.
	//
	//  Bit 2   : Timer enable
	//  Bit 1-0 : Clock select (00: 1024, 01: 16, 10: 64, 11: 256 ticks)
	TAC HardwareAddress = 0xFF07
	// IF is the address of the interrupt flag register. Writing a 1
	// to a bit in IF requests an interrupt, and writing a 0 clears
	// the request.
	//
	//  Bit 0: V-Blank Interrupt Request (INT 40h)  (1=Request)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h) (1=Request)
	//  Bit 2: Timer Interrupt Request (INT 50h)    (1=Request)
	//  Bit 3: Serial Interrupt Request (INT 58h)   (1=Request)
	//  Bit 4: Joypad Interrupt Request (INT 60h)   (1=Request)
	IF HardwareAddress = 0xFF0F
	// IE is the address of the interrupt enable register, using
	// the same bit layout as IF.
	IE HardwareAddress = 0xFFFF
)
