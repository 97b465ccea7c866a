// Package cpu provides an implementation of the SM83, the CPU
// of the Game Boy. Opcodes are decoded through two fixed tables,
// InstructionSet and InstructionSetCB, and executed one per Step.
//
// A tick is a single machine cycle: every memory access the CPU
// makes costs one tick, as does every internal delay, and the
// MMU (and through it the timer) is advanced once per tick.
package cpu

import (
	"github.com/thelolagemann/sm83/internal/interrupts"
	"github.com/thelolagemann/sm83/internal/mmu"
	"github.com/thelolagemann/sm83/pkg/log"
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	mmu *mmu.MMU
	irq *interrupts.Service

	ime        bool // interrupt master enable
	pendingIME bool // set by EI, applied after the next instruction
	halted     bool

	haltBug        bool // the next opcode fetch does not increment PC
	haltBugEnabled bool

	ticks       uint64
	currentTick uint8

	err error

	// Debug logs every executed instruction at debug level.
	Debug bool
	log   log.Logger
}

// NewCPU creates a new CPU instance with the given MMU and
// interrupt context. The CPU starts in the post-boot state.
func NewCPU(mmu *mmu.MMU, irq *interrupts.Service) *CPU {
	c := &CPU{
		mmu:            mmu,
		irq:            irq,
		haltBugEnabled: true,
		log:            log.NewNullLogger(),
	}
	c.Reset()

	return c
}

// SetLogger sets the logger used for traces and fatal errors.
func (c *CPU) SetLogger(l log.Logger) {
	c.log = l
}

// SetHaltBug enables or disables emulation of the HALT bug.
func (c *CPU) SetHaltBug(enabled bool) {
	c.haltBugEnabled = enabled
}

// Reset sets the registers to the values left behind by the
// boot ROM, and clears the interrupt, halt and error state.
func (c *CPU) Reset() {
	c.Registers = Registers{
		A: 0x00,
		F: 0x80,
		B: 0x00,
		C: 0x13,
		D: 0x00,
		E: 0xD8,
		H: 0x01,
		L: 0x4D,
	}
	c.SP = 0xFFFE
	c.PC = 0x0100

	c.ime = false
	c.pendingIME = false
	c.halted = false
	c.haltBug = false
	c.ticks = 0
	c.currentTick = 0
	c.err = nil
}

// IME returns the state of the interrupt master enable.
func (c *CPU) IME() bool {
	return c.ime
}

// SetIME sets the interrupt master enable, discarding any
// enable still pending from an EI.
func (c *CPU) SetIME(enabled bool) {
	c.ime = enabled
	c.pendingIME = false
}

// Halted returns true if the CPU is waiting for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// Ticks returns the number of ticks elapsed since the last Reset.
func (c *CPU) Ticks() uint64 {
	return c.ticks
}

// Err returns the error the CPU stopped on, if any.
func (c *CPU) Err() error {
	return c.err
}

// Step performs exactly one of, in order: the dispatch of a
// pending interrupt, a single idle tick while halted, or the
// execution of one instruction. It returns the number of ticks
// that elapsed.
func (c *CPU) Step() (uint8, error) {
	if c.err != nil {
		return 0, ErrStopped
	}

	// reset tick counter
	c.currentTick = 0

	// a pending interrupt always wakes the CPU, but is
	// only serviced with IME set
	if c.irq.HasInterrupts() {
		c.halted = false
		if c.ime {
			c.executeInterrupt()
			return c.currentTick, nil
		}
	}

	if c.halted {
		c.tick()
		return c.currentTick, nil
	}

	enableIME := c.pendingIME
	c.pendingIME = false

	pc := c.PC
	opcode := c.readInstruction()
	instruction := InstructionSet[opcode]
	prefixed := false
	if instruction.Op == OpPrefix {
		prefixed = true
		opcode = c.readOperand()
		instruction = InstructionSetCB[opcode]
	}

	if instruction.Op == OpUndefined {
		c.err = &UndefinedOpcodeError{Opcode: opcode, Prefixed: prefixed, PC: pc}
		c.log.Errorf("%s", c.err)
		return c.currentTick, c.err
	}

	c.execute(instruction)

	if c.Debug {
		c.log.Debugf("%04X %-16s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X (%d ticks)",
			pc, instruction, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.currentTick)
	}

	// EI takes effect once the following instruction has
	// executed, unless that instruction was DI
	if enableIME && instruction.Op != OpDI {
		c.ime = true
	}

	return c.currentTick, nil
}

// executeInterrupt services the highest priority pending interrupt.
func (c *CPU) executeInterrupt() {
	c.ime = false
	vector, _ := c.irq.Acknowledge()

	// returning from the handler re-executes the HALT
	if c.haltBug {
		c.haltBug = false
		c.PC--
	}

	c.tick()
	c.tick()
	c.pushStack(c.PC)
	c.tick()

	c.PC = vector
}

// tick advances the MMU, and through it the timer, by one tick.
func (c *CPU) tick() {
	c.mmu.Tick(c.irq)
	c.currentTick++
	c.ticks++
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tick()
	return c.mmu.Read(c.irq, addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tick()
	c.mmu.Write(c.irq, addr, val)
}

// readInstruction reads the next opcode from memory. When the
// HALT bug is pending, PC is left pointing at the same byte.
func (c *CPU) readInstruction() uint8 {
	value := c.readByte(c.PC)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.PC++
	}
	return value
}

// readOperand reads the next operand from memory.
func (c *CPU) readOperand() uint8 {
	value := c.readByte(c.PC)
	c.PC++
	return value
}

// readOperand16 reads the next two operands as a little endian value.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	high := c.readOperand()
	return uint16(high)<<8 | uint16(low)
}

// pushStack pushes a 16-bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16-bit value from the stack.
func (c *CPU) popStack() uint16 {
	low := c.readByte(c.SP)
	c.SP++
	high := c.readByte(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

// read8 returns the value of an 8-bit operand, consuming
// operands and ticking for memory accesses as needed.
func (c *CPU) read8(op Operand8) uint8 {
	switch op {
	case RegA:
		return c.A
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	case IndHL:
		return c.readByte(c.HL())
	case Imm8:
		return c.readOperand()
	case IndBC:
		return c.readByte(c.BC())
	case IndDE:
		return c.readByte(c.DE())
	case IndHLI:
		hl := c.HL()
		c.SetHL(hl + 1)
		return c.readByte(hl)
	case IndHLD:
		hl := c.HL()
		c.SetHL(hl - 1)
		return c.readByte(hl)
	case IndImm16:
		return c.readByte(c.readOperand16())
	case HighImm8:
		return c.readByte(0xFF00 | uint16(c.readOperand()))
	case HighC:
		return c.readByte(0xFF00 | uint16(c.C))
	}
	panic("cpu: read of invalid operand " + op.String())
}

// write8 stores a value to an 8-bit operand.
func (c *CPU) write8(op Operand8, value uint8) {
	switch op {
	case RegA:
		c.A = value
	case RegB:
		c.B = value
	case RegC:
		c.C = value
	case RegD:
		c.D = value
	case RegE:
		c.E = value
	case RegH:
		c.H = value
	case RegL:
		c.L = value
	case IndHL:
		c.writeByte(c.HL(), value)
	case IndBC:
		c.writeByte(c.BC(), value)
	case IndDE:
		c.writeByte(c.DE(), value)
	case IndHLI:
		hl := c.HL()
		c.SetHL(hl + 1)
		c.writeByte(hl, value)
	case IndHLD:
		hl := c.HL()
		c.SetHL(hl - 1)
		c.writeByte(hl, value)
	case IndImm16:
		c.writeByte(c.readOperand16(), value)
	case HighImm8:
		c.writeByte(0xFF00|uint16(c.readOperand()), value)
	case HighC:
		c.writeByte(0xFF00|uint16(c.C), value)
	default:
		panic("cpu: write to invalid operand " + op.String())
	}
}

// read16 returns the value of a 16-bit operand.
func (c *CPU) read16(op Operand16) uint16 {
	switch op {
	case RegBC:
		return c.BC()
	case RegDE:
		return c.DE()
	case RegHL:
		return c.HL()
	case RegSP:
		return c.SP
	case RegAF:
		return c.AF()
	case Imm16:
		return c.readOperand16()
	}
	panic("cpu: read of invalid operand " + op.String())
}

// write16 stores a value to a 16-bit operand.
func (c *CPU) write16(op Operand16, value uint16) {
	switch op {
	case RegBC:
		c.SetBC(value)
	case RegDE:
		c.SetDE(value)
	case RegHL:
		c.SetHL(value)
	case RegSP:
		c.SP = value
	case RegAF:
		c.SetAF(value)
	case Ind16Imm:
		addr := c.readOperand16()
		c.writeByte(addr, uint8(value))
		c.writeByte(addr+1, uint8(value>>8))
	default:
		panic("cpu: write to invalid operand " + op.String())
	}
}

// condition reports whether a branch condition holds.
func (c *CPU) condition(cond Condition) bool {
	switch cond {
	case CondNZ:
		return !c.isFlagSet(FlagZero)
	case CondZ:
		return c.isFlagSet(FlagZero)
	case CondNC:
		return !c.isFlagSet(FlagCarry)
	case CondC:
		return c.isFlagSet(FlagCarry)
	}
	return true
}
