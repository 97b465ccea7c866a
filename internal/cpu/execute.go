package cpu

// execute runs the semantics of an instruction whose opcode (and
// prefix) has already been fetched.
func (c *CPU) execute(ins Instruction) {
	switch ins.Op {
	case OpNOP, OpSTOP:
	case OpLD:
		c.write8(ins.Dst, c.read8(ins.Src))
	case OpLD16:
		value := c.read16(ins.Src16)
		if ins.Dst16 == RegSP && ins.Src16 == RegHL {
			c.tick()
		}
		c.write16(ins.Dst16, value)
	case OpLDHLSP:
		c.SetHL(c.addSPSigned())
		c.tick()
	case OpPUSH:
		c.tick()
		c.pushStack(c.read16(ins.Src16))
	case OpPOP:
		c.write16(ins.Dst16, c.popStack())

	case OpADD:
		c.A = c.add(c.A, c.read8(ins.Src), false)
	case OpADC:
		c.A = c.add(c.A, c.read8(ins.Src), true)
	case OpSUB:
		c.A = c.sub(c.A, c.read8(ins.Src), false)
	case OpSBC:
		c.A = c.sub(c.A, c.read8(ins.Src), true)
	case OpAND:
		c.A = c.and(c.A, c.read8(ins.Src))
	case OpXOR:
		c.A = c.xor(c.A, c.read8(ins.Src))
	case OpOR:
		c.A = c.or(c.A, c.read8(ins.Src))
	case OpCP:
		c.compare(c.A, c.read8(ins.Src))
	case OpINC:
		c.write8(ins.Dst, c.increment(c.read8(ins.Src)))
	case OpDEC:
		c.write8(ins.Dst, c.decrement(c.read8(ins.Src)))
	case OpDAA:
		c.decimalAdjust()
	case OpCPL:
		c.A = ^c.A
		c.setFlag(FlagSubtract)
		c.setFlag(FlagHalfCarry)
	case OpCCF:
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.SetFlag(FlagCarry, !c.isFlagSet(FlagCarry))
	case OpSCF:
		c.clearFlag(FlagSubtract)
		c.clearFlag(FlagHalfCarry)
		c.setFlag(FlagCarry)

	case OpADDHL:
		c.SetHL(c.addUint16(c.HL(), c.read16(ins.Src16)))
		c.tick()
	case OpINC16:
		c.write16(ins.Dst16, c.read16(ins.Src16)+1)
		c.tick()
	case OpDEC16:
		c.write16(ins.Dst16, c.read16(ins.Src16)-1)
		c.tick()
	case OpADDSP:
		c.SP = c.addSPSigned()
		c.tick()
		c.tick()

	case OpRLCA:
		c.A = c.rotateLeftCarry(c.A)
		c.clearFlag(FlagZero)
	case OpRLA:
		c.A = c.rotateLeftThroughCarry(c.A)
		c.clearFlag(FlagZero)
	case OpRRCA:
		c.A = c.rotateRightCarry(c.A)
		c.clearFlag(FlagZero)
	case OpRRA:
		c.A = c.rotateRightThroughCarry(c.A)
		c.clearFlag(FlagZero)

	case OpHALT:
		c.halt()
	case OpDI:
		c.ime = false
		c.pendingIME = false
	case OpEI:
		c.pendingIME = true

	case OpJP:
		c.jumpAbsolute(ins.Cond)
	case OpJPHL:
		c.PC = c.HL()
	case OpJR:
		c.jumpRelative(ins.Cond)
	case OpCALL:
		c.call(ins.Cond)
	case OpRET:
		c.ret(ins.Cond)
	case OpRETI:
		c.ret(CondAlways)
		c.ime = true
	case OpRST:
		c.tick()
		c.pushStack(c.PC)
		c.PC = ins.Vector

	case OpRLC:
		c.write8(ins.Dst, c.rotateLeftCarry(c.read8(ins.Src)))
	case OpRRC:
		c.write8(ins.Dst, c.rotateRightCarry(c.read8(ins.Src)))
	case OpRL:
		c.write8(ins.Dst, c.rotateLeftThroughCarry(c.read8(ins.Src)))
	case OpRR:
		c.write8(ins.Dst, c.rotateRightThroughCarry(c.read8(ins.Src)))
	case OpSLA:
		c.write8(ins.Dst, c.shiftLeftIntoCarry(c.read8(ins.Src)))
	case OpSRA:
		c.write8(ins.Dst, c.shiftRightIntoCarry(c.read8(ins.Src)))
	case OpSWAP:
		c.write8(ins.Dst, c.swap(c.read8(ins.Src)))
	case OpSRL:
		c.write8(ins.Dst, c.shiftRightLogical(c.read8(ins.Src)))
	case OpBIT:
		c.testBit(c.read8(ins.Src), ins.Bit)
	case OpRES:
		c.write8(ins.Dst, c.read8(ins.Src)&^(1<<ins.Bit))
	case OpSET:
		c.write8(ins.Dst, c.read8(ins.Src)|1<<ins.Bit)

	default:
		panic("cpu: no semantics for " + ins.String())
	}
}

// halt enters the halted state. With IME clear and an interrupt
// already pending, the CPU does not halt, and instead fails to
// increment PC on the next opcode fetch.
func (c *CPU) halt() {
	if !c.ime && c.irq.HasInterrupts() && c.haltBugEnabled {
		c.haltBug = true
		return
	}
	c.halted = true
}
