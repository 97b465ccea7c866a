package cpu

// add adds n, and the carry flag when withCarry is set, to a.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(a, n uint8, withCarry bool) uint8 {
	carry := uint16(0)
	if withCarry {
		carry = uint16(c.carryBit())
	}
	sum := uint16(a) + uint16(n) + carry
	c.setFlags(uint8(sum) == 0, false, uint16(a&0x0F)+uint16(n&0x0F)+carry > 0x0F, sum > 0xFF)

	return uint8(sum)
}

// sub subtracts n, and the carry flag when withCarry is set, from a.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(a, n uint8, withCarry bool) uint8 {
	carry := int16(0)
	if withCarry {
		carry = int16(c.carryBit())
	}
	diff := int16(a) - int16(n) - carry
	c.setFlags(uint8(diff) == 0, true, int16(a&0x0F)-int16(n&0x0F)-carry < 0, diff < 0)

	return uint8(diff)
}

// compare compares n to a, setting the flags as sub would, but
// discarding the result.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) compare(a, n uint8) {
	c.sub(a, n, false)
}

// and performs a bitwise AND operation on n and a.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(a, n uint8) uint8 {
	result := a & n
	c.setFlags(result == 0, false, true, false)
	return result
}

// or performs a bitwise OR operation on n and a.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(a, n uint8) uint8 {
	result := a | n
	c.setFlags(result == 0, false, false, false)
	return result
}

// xor performs a bitwise XOR operation on n and a.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(a, n uint8) uint8 {
	result := a ^ n
	c.setFlags(result == 0, false, false, false)
	return result
}

// increment increments n by 1.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0x0F == 0x0F, c.isFlagSet(FlagCarry))
	return result
}

// decrement decrements n by 1.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0x0F == 0, c.isFlagSet(FlagCarry))
	return result
}

// addUint16 adds two 16-bit values.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addUint16(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	c.setFlags(c.isFlagSet(FlagZero), false, a&0x0FFF+b&0x0FFF > 0x0FFF, sum > 0xFFFF)
	return uint16(sum)
}

// addSPSigned reads a signed 8-bit operand and returns it added
// to SP. The carries are those of the low byte addition.
//
//	ADD SP, e8
//	LD HL, SP+e8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned() uint16 {
	e := c.readOperand()
	result := c.SP + uint16(int8(e))
	c.setFlags(false, false, c.SP&0x0F+uint16(e&0x0F) > 0x0F, c.SP&0xFF+uint16(e) > 0xFF)
	return result
}

// decimalAdjust adjusts A to a binary coded decimal, after an
// addition or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if register A is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set or reset according to operation.
func (c *CPU) decimalAdjust() {
	correction := uint8(0)
	carry := false
	subtract := c.isFlagSet(FlagSubtract)

	if c.isFlagSet(FlagHalfCarry) || (!subtract && c.A&0x0F > 0x09) {
		correction |= 0x06
	}
	if c.isFlagSet(FlagCarry) || (!subtract && c.A > 0x99) {
		correction |= 0x60
		carry = true
	}

	if subtract {
		c.A -= correction
	} else {
		c.A += correction
	}
	c.setFlags(c.A == 0, subtract, false, carry)
}
