package cpu

import (
	"fmt"
	"io"
	"strings"
)

// Disassemble decodes the instruction at pc, using read to fetch
// its bytes, and returns its mnemonic with the immediates filled
// in, along with its length in bytes. read must not have side
// effects, as the bytes are read outside of the tick stream.
func Disassemble(read func(addr uint16) uint8, pc uint16) (string, uint16) {
	opcode := read(pc)
	ins := InstructionSet[opcode]
	if ins.Op == OpPrefix {
		ins = InstructionSetCB[read(pc+1)]
	}
	if ins.Op == OpUndefined {
		return fmt.Sprintf("DB $%02X", opcode), 1
	}

	length := ins.Length()
	text := ins.String()
	switch {
	case ins.Op == OpJR:
		target := uint16(int32(pc+2) + int32(int8(read(pc+1))))
		text = strings.Replace(text, "e8", fmt.Sprintf("$%04X", target), 1)
	case strings.Contains(text, "e8"):
		text = strings.Replace(text, "e8", fmt.Sprintf("%d", int8(read(pc+1))), 1)
	case strings.Contains(text, "a16"), strings.Contains(text, "d16"):
		value := uint16(read(pc+2))<<8 | uint16(read(pc+1))
		text = strings.NewReplacer("a16", fmt.Sprintf("$%04X", value), "d16", fmt.Sprintf("$%04X", value)).Replace(text)
	case strings.Contains(text, "a8"):
		text = strings.Replace(text, "a8", fmt.Sprintf("$%02X", read(pc+1)), 1)
	case strings.Contains(text, "d8"):
		text = strings.Replace(text, "d8", fmt.Sprintf("$%02X", read(pc+1)), 1)
	}

	return text, length
}

// DumpTables writes both instruction tables to w, one opcode per line.
func DumpTables(w io.Writer) error {
	for i, ins := range InstructionSet {
		if _, err := fmt.Fprintf(w, "%02X    %s\n", i, ins); err != nil {
			return err
		}
	}
	for i, ins := range InstructionSetCB {
		if _, err := fmt.Fprintf(w, "CB %02X %s\n", i, ins); err != nil {
			return err
		}
	}
	return nil
}
