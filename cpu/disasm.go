package cpu

import (
	"fmt"
	"strings"

	"github.com/ezrec/ls8/memory"
)

// Disassemble returns the assembly text of the instruction at address, and
// its size in bytes. Bytes that are not valid opcodes disassemble as DB.
func Disassemble(mem memory.Memory, address int) (text string, size int) {
	code := Opcode(mem.Read(address))
	if !code.Valid() {
		return fmt.Sprintf("DB 0x%02x", uint8(code)), 1
	}

	size = code.Size()

	var args []string
	for n := range code.Operands() {
		value := mem.Read(address + 1 + n)
		if code == OP_LDI && n == 1 {
			args = append(args, fmt.Sprintf("0x%02x", value))
		} else {
			args = append(args, fmt.Sprintf("R%d", value&(REGISTER_COUNT-1)))
		}
	}

	text = code.String()
	if len(args) > 0 {
		text += " " + strings.Join(args, ",")
	}

	return
}
