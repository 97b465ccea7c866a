package cpu

// jumpAbsolute reads a 16-bit address and jumps to it if the
// condition holds. A taken jump costs one extra tick.
//
//	JP a16
//	JP cc, a16
func (c *CPU) jumpAbsolute(cond Condition) {
	addr := c.readOperand16()
	if c.condition(cond) {
		c.tick()
		c.PC = addr
	}
}

// jumpRelative reads a signed 8-bit offset and adds it to PC if
// the condition holds. A taken jump costs one extra tick.
//
//	JR e8
//	JR cc, e8
func (c *CPU) jumpRelative(cond Condition) {
	offset := int8(c.readOperand())
	if c.condition(cond) {
		c.tick()
		c.PC = uint16(int32(c.PC) + int32(offset))
	}
}

// call reads a 16-bit address and, if the condition holds, pushes
// the address of the next instruction and jumps to it.
//
//	CALL a16
//	CALL cc, a16
func (c *CPU) call(cond Condition) {
	addr := c.readOperand16()
	if c.condition(cond) {
		c.tick()
		c.pushStack(c.PC)
		c.PC = addr
	}
}

// ret pops the return address from the stack if the condition holds.
// One idle tick is always spent before the condition is evaluated, and
// conditional returns spend another setting PC when taken.
//
//	RET
//	RET cc
func (c *CPU) ret(cond Condition) {
	c.tick()
	if !c.condition(cond) {
		return
	}
	c.PC = c.popStack()
	if cond != CondAlways {
		c.tick()
	}
}
