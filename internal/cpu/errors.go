package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrStopped is returned by Step once the CPU has stopped on a
// fatal error. The CPU stays stopped until it is Reset.
var ErrStopped = errors.New("cpu: stopped")

// UndefinedOpcodeError is returned when the CPU decodes an opcode
// that has no defined instruction.
type UndefinedOpcodeError struct {
	Opcode   uint8
	Prefixed bool   // the opcode followed a 0xCB prefix
	PC       uint16 // address of the opcode
}

func (e *UndefinedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: undefined opcode 0xCB 0x%02X at 0x%04X", e.Opcode, e.PC)
	}
	return fmt.Sprintf("cpu: undefined opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}
