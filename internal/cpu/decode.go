package cpu

// InstructionSet holds the unprefixed instructions, indexed by opcode.
var InstructionSet [256]Instruction

// InstructionSetCB holds the instructions prefixed by 0xCB, indexed
// by the byte that follows the prefix.
var InstructionSetCB [256]Instruction

// registers8 lists the 8-bit operands in opcode encoding order.
var registers8 = [8]Operand8{RegB, RegC, RegD, RegE, RegH, RegL, IndHL, RegA}

// registers16 lists the register pairs in opcode encoding order,
// with AF taking the place of SP for PUSH and POP.
var (
	registers16      = [4]Operand16{RegBC, RegDE, RegHL, RegSP}
	registers16Stack = [4]Operand16{RegBC, RegDE, RegHL, RegAF}
)

// conditions lists the branch conditions in opcode encoding order.
var conditions = [4]Condition{CondNZ, CondZ, CondNC, CondC}

func init() {
	for i := range InstructionSet {
		InstructionSet[i] = nullary(OpUndefined)
	}

	generateInstructions()
	generateInstructionsCB()
}

func nullary(op Operation) Instruction {
	return Instruction{Op: op, Dst: None8, Src: None8, Dst16: None16, Src16: None16}
}

func load8(dst, src Operand8) Instruction {
	i := nullary(OpLD)
	i.Dst, i.Src = dst, src
	return i
}

func load16(dst, src Operand16) Instruction {
	i := nullary(OpLD16)
	i.Dst16, i.Src16 = dst, src
	return i
}

func alu(op Operation, src Operand8) Instruction {
	i := nullary(op)
	i.Dst, i.Src = RegA, src
	return i
}

func unary8(op Operation, dst Operand8) Instruction {
	i := nullary(op)
	i.Dst, i.Src = dst, dst
	return i
}

func unary16(op Operation, r Operand16) Instruction {
	i := nullary(op)
	i.Dst16, i.Src16 = r, r
	return i
}

func branch(op Operation, cond Condition) Instruction {
	i := nullary(op)
	i.Cond = cond
	return i
}

func bitwise(op Operation, bit uint8, dst Operand8) Instruction {
	i := unary8(op, dst)
	i.Bit = bit
	return i
}

func generateInstructions() {
	set := &InstructionSet

	set[0x00] = nullary(OpNOP)
	set[0x08] = load16(Ind16Imm, RegSP)
	set[0x10] = nullary(OpSTOP)
	set[0x18] = branch(OpJR, CondAlways)
	for i, cond := range conditions {
		set[0x20+i<<3] = branch(OpJR, cond)
	}

	// 16-bit loads and arithmetic, one row per register pair
	for i, r := range registers16 {
		row := uint8(i) << 4
		set[0x01+row] = load16(r, Imm16)
		set[0x03+row] = unary16(OpINC16, r)
		set[0x09+row] = unary16(OpADDHL, r)
		set[0x0B+row] = unary16(OpDEC16, r)
	}

	set[0x02] = load8(IndBC, RegA)
	set[0x12] = load8(IndDE, RegA)
	set[0x22] = load8(IndHLI, RegA)
	set[0x32] = load8(IndHLD, RegA)
	set[0x0A] = load8(RegA, IndBC)
	set[0x1A] = load8(RegA, IndDE)
	set[0x2A] = load8(RegA, IndHLI)
	set[0x3A] = load8(RegA, IndHLD)

	for i, r := range registers8 {
		col := uint8(i) << 3
		set[0x04+col] = unary8(OpINC, r)
		set[0x05+col] = unary8(OpDEC, r)
		set[0x06+col] = load8(r, Imm8)
	}

	set[0x07] = nullary(OpRLCA)
	set[0x0F] = nullary(OpRRCA)
	set[0x17] = nullary(OpRLA)
	set[0x1F] = nullary(OpRRA)
	set[0x27] = nullary(OpDAA)
	set[0x2F] = nullary(OpCPL)
	set[0x37] = nullary(OpSCF)
	set[0x3F] = nullary(OpCCF)

	// 0x40 - 0x7F LD r,r
	for i, dst := range registers8 {
		for j, src := range registers8 {
			set[0x40+uint8(i)<<3+uint8(j)] = load8(dst, src)
		}
	}
	set[0x76] = nullary(OpHALT)

	// 0x80 - 0xBF ALU A,r and 0xC6 - 0xFE ALU A,d8
	for i, op := range []Operation{OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP} {
		for j, src := range registers8 {
			set[0x80+uint8(i)<<3+uint8(j)] = alu(op, src)
		}
		set[0xC6+uint8(i)<<3] = alu(op, Imm8)
	}

	for i, cond := range conditions {
		col := uint8(i) << 3
		set[0xC0+col] = branch(OpRET, cond)
		set[0xC2+col] = branch(OpJP, cond)
		set[0xC4+col] = branch(OpCALL, cond)
	}
	set[0xC9] = branch(OpRET, CondAlways)
	set[0xD9] = nullary(OpRETI)
	set[0xC3] = branch(OpJP, CondAlways)
	set[0xCD] = branch(OpCALL, CondAlways)
	set[0xE9] = nullary(OpJPHL)

	for i, r := range registers16Stack {
		row := uint8(i) << 4
		set[0xC1+row] = unary16(OpPOP, r)
		set[0xC5+row] = unary16(OpPUSH, r)
	}

	for i := uint8(0); i < 8; i++ {
		rst := nullary(OpRST)
		rst.Vector = uint16(i) << 3
		set[0xC7+i<<3] = rst
	}

	set[0xCB] = nullary(OpPrefix)

	set[0xE0] = load8(HighImm8, RegA)
	set[0xF0] = load8(RegA, HighImm8)
	set[0xE2] = load8(HighC, RegA)
	set[0xF2] = load8(RegA, HighC)
	set[0xEA] = load8(IndImm16, RegA)
	set[0xFA] = load8(RegA, IndImm16)

	set[0xE8] = nullary(OpADDSP)
	set[0xF8] = nullary(OpLDHLSP)
	set[0xF9] = load16(RegSP, RegHL)

	set[0xF3] = nullary(OpDI)
	set[0xFB] = nullary(OpEI)
}

func generateInstructionsCB() {
	set := &InstructionSetCB

	for i, op := range []Operation{OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL} {
		for j, r := range registers8 {
			set[uint8(i)<<3+uint8(j)] = unary8(op, r)
		}
	}

	for b := uint8(0); b < 8; b++ {
		for j, r := range registers8 {
			col := b<<3 + uint8(j)
			set[0x40+col] = bitwise(OpBIT, b, r)
			set[0x80+col] = bitwise(OpRES, b, r)
			set[0xC0+col] = bitwise(OpSET, b, r)
		}
	}
}
