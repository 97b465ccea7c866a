package cpu

import (
	"bytes"
	"strings"
	"testing"
)

func TestInstructionSet_Undefined(t *testing.T) {
	undefined := map[uint8]bool{
		0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true,
		0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
	}
	for i, ins := range InstructionSet {
		if (ins.Op == OpUndefined) != undefined[uint8(i)] {
			t.Errorf("%02x: expecting undefined=%v, was %s", i, undefined[uint8(i)], ins)
		}
	}
	for i, ins := range InstructionSetCB {
		if ins.Op == OpUndefined || ins.Op == OpPrefix {
			t.Errorf("CB %02x: expecting a defined instruction, was %s", i, ins)
		}
	}
}

func TestInstructionSet_Mnemonics(t *testing.T) {
	tests := []struct {
		opcode   uint8
		prefixed bool
		want     string
		length   uint16
	}{
		{0x00, false, "NOP", 1},
		{0x01, false, "LD BC,d16", 3},
		{0x08, false, "LD (a16),SP", 3},
		{0x10, false, "STOP", 1},
		{0x20, false, "JR NZ,e8", 2},
		{0x2A, false, "LD A,(HL+)", 1},
		{0x32, false, "LD (HL-),A", 1},
		{0x36, false, "LD (HL),d8", 2},
		{0x39, false, "ADD HL,SP", 1},
		{0x40, false, "LD B,B", 1},
		{0x76, false, "HALT", 1},
		{0x7E, false, "LD A,(HL)", 1},
		{0x86, false, "ADD A,(HL)", 1},
		{0x99, false, "SBC A,C", 1},
		{0xBF, false, "CP A", 1},
		{0xC0, false, "RET NZ", 1},
		{0xC3, false, "JP a16", 3},
		{0xC5, false, "PUSH BC", 1},
		{0xCB, false, "PREFIX CB", 1},
		{0xCC, false, "CALL Z,a16", 3},
		{0xD9, false, "RETI", 1},
		{0xE0, false, "LD ($FF00+a8),A", 2},
		{0xE2, false, "LD ($FF00+C),A", 1},
		{0xE6, false, "AND d8", 2},
		{0xE8, false, "ADD SP,e8", 2},
		{0xE9, false, "JP HL", 1},
		{0xEA, false, "LD (a16),A", 3},
		{0xF1, false, "POP AF", 1},
		{0xF5, false, "PUSH AF", 1},
		{0xF8, false, "LD HL,SP+e8", 2},
		{0xF9, false, "LD SP,HL", 1},
		{0xFF, false, "RST $38", 1},
		{0xD3, false, "UNDEFINED", 1},
		{0x00, true, "RLC B", 2},
		{0x1E, true, "RR (HL)", 2},
		{0x37, true, "SWAP A", 2},
		{0x5E, true, "BIT 3,(HL)", 2},
		{0x87, true, "RES 0,A", 2},
		{0xFF, true, "SET 7,A", 2},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ins := InstructionSet[tt.opcode]
			if tt.prefixed {
				ins = InstructionSetCB[tt.opcode]
			}
			if ins.String() != tt.want {
				t.Errorf("expecting %q, was %q", tt.want, ins.String())
			}
			if ins.Length() != tt.length {
				t.Errorf("length expecting %d, was %d", tt.length, ins.Length())
			}
		})
	}
}

func TestInstructionSet_Stack(t *testing.T) {
	for i, want := range []Operand16{RegBC, RegDE, RegHL, RegAF} {
		push := InstructionSet[0xC5+uint8(i)<<4]
		pop := InstructionSet[0xC1+uint8(i)<<4]
		if push.Op != OpPUSH || push.Src16 != want {
			t.Errorf("expecting PUSH %s, was %s", want, push)
		}
		if pop.Op != OpPOP || pop.Dst16 != want {
			t.Errorf("expecting POP %s, was %s", want, pop)
		}
	}
}

func TestDisassemble(t *testing.T) {
	tests := []struct {
		program []uint8
		want    string
		length  uint16
	}{
		{[]uint8{0x3E, 0x05}, "LD A,$05", 2},
		{[]uint8{0xC3, 0x50, 0x01}, "JP $0150", 3},
		{[]uint8{0x21, 0x00, 0xC0}, "LD HL,$C000", 3},
		{[]uint8{0x18, 0xFE}, "JR $0100", 2},
		{[]uint8{0xE0, 0x0F}, "LD ($FF00+$0F),A", 2},
		{[]uint8{0xE8, 0xFF}, "ADD SP,-1", 2},
		{[]uint8{0xCB, 0x7C}, "BIT 7,H", 2},
		{[]uint8{0xDD}, "DB $DD", 1},
	}
	for _, tt := range tests {
		read := func(addr uint16) uint8 {
			if i := int(addr) - 0x0100; i >= 0 && i < len(tt.program) {
				return tt.program[i]
			}
			return 0
		}
		text, length := Disassemble(read, 0x0100)
		if text != tt.want || length != tt.length {
			t.Errorf("expecting (%q, %d), was (%q, %d)", tt.want, tt.length, text, length)
		}
	}
}

func TestDumpTables(t *testing.T) {
	var b bytes.Buffer
	if err := DumpTables(&b); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 512 {
		t.Fatalf("expecting 512 lines, was %d", len(lines))
	}
	if lines[0x76] != "76    HALT" {
		t.Errorf("expecting %q, was %q", "76    HALT", lines[0x76])
	}
	if lines[0x100+0x7C] != "CB 7C BIT 7,H" {
		t.Errorf("expecting %q, was %q", "CB 7C BIT 7,H", lines[0x100+0x7C])
	}
}
