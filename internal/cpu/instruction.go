package cpu

import "fmt"

// Operation is the kind of an Instruction. Each Operation has a
// fixed semantics, parameterised by the operand selectors of the
// Instruction that carries it.
type Operation uint8

const (
	OpUndefined Operation = iota
	OpNOP
	OpLD     // LD r8,r8
	OpLD16   // LD r16,d16 | LD (a16),SP | LD SP,HL
	OpLDHLSP // LD HL,SP+e8
	OpPUSH
	OpPOP
	OpADD
	OpADC
	OpSUB
	OpSBC
	OpAND
	OpXOR
	OpOR
	OpCP
	OpINC
	OpDEC
	OpDAA
	OpCPL
	OpADDHL
	OpINC16
	OpDEC16
	OpADDSP
	OpRLCA
	OpRLA
	OpRRCA
	OpRRA
	OpCCF
	OpSCF
	OpHALT
	OpSTOP
	OpDI
	OpEI
	OpJP
	OpJPHL
	OpJR
	OpCALL
	OpRET
	OpRETI
	OpRST
	OpPrefix
	OpRLC
	OpRRC
	OpRL
	OpRR
	OpSLA
	OpSRA
	OpSWAP
	OpSRL
	OpBIT
	OpRES
	OpSET
)

var operationNames = [...]string{
	OpUndefined: "UNDEFINED",
	OpNOP:       "NOP",
	OpLD:        "LD",
	OpLD16:      "LD",
	OpLDHLSP:    "LD",
	OpPUSH:      "PUSH",
	OpPOP:       "POP",
	OpADD:       "ADD",
	OpADC:       "ADC",
	OpSUB:       "SUB",
	OpSBC:       "SBC",
	OpAND:       "AND",
	OpXOR:       "XOR",
	OpOR:        "OR",
	OpCP:        "CP",
	OpINC:       "INC",
	OpDEC:       "DEC",
	OpDAA:       "DAA",
	OpCPL:       "CPL",
	OpADDHL:     "ADD",
	OpINC16:     "INC",
	OpDEC16:     "DEC",
	OpADDSP:     "ADD",
	OpRLCA:      "RLCA",
	OpRLA:       "RLA",
	OpRRCA:      "RRCA",
	OpRRA:       "RRA",
	OpCCF:       "CCF",
	OpSCF:       "SCF",
	OpHALT:      "HALT",
	OpSTOP:      "STOP",
	OpDI:        "DI",
	OpEI:        "EI",
	OpJP:        "JP",
	OpJPHL:      "JP",
	OpJR:        "JR",
	OpCALL:      "CALL",
	OpRET:       "RET",
	OpRETI:      "RETI",
	OpRST:       "RST",
	OpPrefix:    "PREFIX CB",
	OpRLC:       "RLC",
	OpRRC:       "RRC",
	OpRL:        "RL",
	OpRR:        "RR",
	OpSLA:       "SLA",
	OpSRA:       "SRA",
	OpSWAP:      "SWAP",
	OpSRL:       "SRL",
	OpBIT:       "BIT",
	OpRES:       "RES",
	OpSET:       "SET",
}

func (o Operation) String() string {
	if int(o) < len(operationNames) {
		return operationNames[o]
	}
	return fmt.Sprintf("Operation(%d)", uint8(o))
}

// Operand8 selects an 8-bit operand. The first 8 values follow
// the 3-bit register encoding of the opcode space, so that an
// opcode's register field can be used directly as an Operand8.
type Operand8 uint8

const (
	RegB Operand8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	IndHL // (HL)
	RegA
	Imm8     // d8
	IndBC    // (BC)
	IndDE    // (DE)
	IndHLI   // (HL+)
	IndHLD   // (HL-)
	IndImm16 // (a16)
	HighImm8 // ($FF00+a8)
	HighC    // ($FF00+C)
	None8
)

var operand8Names = [...]string{
	RegB:     "B",
	RegC:     "C",
	RegD:     "D",
	RegE:     "E",
	RegH:     "H",
	RegL:     "L",
	IndHL:    "(HL)",
	RegA:     "A",
	Imm8:     "d8",
	IndBC:    "(BC)",
	IndDE:    "(DE)",
	IndHLI:   "(HL+)",
	IndHLD:   "(HL-)",
	IndImm16: "(a16)",
	HighImm8: "($FF00+a8)",
	HighC:    "($FF00+C)",
	None8:    "",
}

func (o Operand8) String() string {
	if int(o) < len(operand8Names) {
		return operand8Names[o]
	}
	return fmt.Sprintf("Operand8(%d)", uint8(o))
}

// Operand16 selects a 16-bit operand.
type Operand16 uint8

const (
	RegBC Operand16 = iota
	RegDE
	RegHL
	RegSP
	RegAF
	Imm16    // d16
	Ind16Imm // (a16), used by LD (a16),SP
	None16
)

var operand16Names = [...]string{
	RegBC:    "BC",
	RegDE:    "DE",
	RegHL:    "HL",
	RegSP:    "SP",
	RegAF:    "AF",
	Imm16:    "d16",
	Ind16Imm: "(a16)",
	None16:   "",
}

func (o Operand16) String() string {
	if int(o) < len(operand16Names) {
		return operand16Names[o]
	}
	return fmt.Sprintf("Operand16(%d)", uint8(o))
}

// Condition is the branch condition of a JP, JR, CALL or RET.
type Condition uint8

const (
	CondAlways Condition = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	}
	return ""
}

// Instruction is a decoded opcode. Only the fields relevant
// to Op are meaningful, the rest hold None8/None16.
type Instruction struct {
	Op     Operation
	Dst    Operand8
	Src    Operand8
	Dst16  Operand16
	Src16  Operand16
	Cond   Condition
	Bit    uint8  // BIT, RES and SET
	Vector uint16 // RST
}

// Length returns the number of bytes the instruction occupies,
// including the opcode (and the 0xCB prefix for prefixed ones).
func (i Instruction) Length() uint16 {
	switch i.Op {
	case OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL, OpBIT, OpRES, OpSET:
		return 2
	case OpJR, OpADDSP, OpLDHLSP:
		return 2
	case OpJP, OpCALL:
		return 3
	case OpLD16:
		if i.Src16 == Imm16 || i.Dst16 == Ind16Imm {
			return 3
		}
		return 1
	case OpLD, OpADD, OpADC, OpSUB, OpSBC, OpAND, OpXOR, OpOR, OpCP:
		return 1 + i.Dst.immediateLength() + i.Src.immediateLength()
	}
	return 1
}

func (o Operand8) immediateLength() uint16 {
	switch o {
	case Imm8, HighImm8:
		return 1
	case IndImm16:
		return 2
	}
	return 0
}

// String returns the mnemonic of the instruction, e.g. "LD A,(HL+)".
// Immediates are written as d8, a8, d16, a16 and e8.
func (i Instruction) String() string {
	name := i.Op.String()
	switch i.Op {
	case OpLD:
		return fmt.Sprintf("%s %s,%s", name, i.Dst, i.Src)
	case OpLD16:
		return fmt.Sprintf("%s %s,%s", name, i.Dst16, i.Src16)
	case OpLDHLSP:
		return "LD HL,SP+e8"
	case OpPUSH, OpPOP, OpINC16, OpDEC16:
		return fmt.Sprintf("%s %s", name, i.Src16)
	case OpADD, OpADC, OpSBC:
		return fmt.Sprintf("%s A,%s", name, i.Src)
	case OpSUB, OpAND, OpXOR, OpOR, OpCP:
		return fmt.Sprintf("%s %s", name, i.Src)
	case OpINC, OpDEC, OpRLC, OpRRC, OpRL, OpRR, OpSLA, OpSRA, OpSWAP, OpSRL:
		return fmt.Sprintf("%s %s", name, i.Dst)
	case OpADDHL:
		return fmt.Sprintf("ADD HL,%s", i.Src16)
	case OpADDSP:
		return "ADD SP,e8"
	case OpJP, OpCALL:
		if i.Cond != CondAlways {
			return fmt.Sprintf("%s %s,a16", name, i.Cond)
		}
		return name + " a16"
	case OpJPHL:
		return "JP HL"
	case OpJR:
		if i.Cond != CondAlways {
			return fmt.Sprintf("%s %s,e8", name, i.Cond)
		}
		return name + " e8"
	case OpRET:
		if i.Cond != CondAlways {
			return fmt.Sprintf("%s %s", name, i.Cond)
		}
	case OpRST:
		return fmt.Sprintf("%s $%02X", name, i.Vector)
	case OpBIT, OpRES, OpSET:
		return fmt.Sprintf("%s %d,%s", name, i.Bit, i.Dst)
	}
	return name
}
