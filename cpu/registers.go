package cpu

import (
	"fmt"
	"strings"
)

// Flags is the FL register, laid out as 00000LGE.
type Flags uint8

const (
	FLAG_EQUAL   = Flags(0b001) // Last comparison was equal.
	FLAG_GREATER = Flags(0b010) // Last comparison was greater than.
	FLAG_LESS    = Flags(0b100) // Last comparison was less than.
	FLAG_MASK    = Flags(0b111) // Mask of the defined flag bits.
)

// Equal returns true if the E flag is set.
func (fl Flags) Equal() bool {
	return fl&FLAG_EQUAL != 0
}

// Greater returns true if the G flag is set.
func (fl Flags) Greater() bool {
	return fl&FLAG_GREATER != 0
}

// Less returns true if the L flag is set.
func (fl Flags) Less() bool {
	return fl&FLAG_LESS != 0
}

// String returns the flags as "LGE", with '-' for clear bits.
func (fl Flags) String() string {
	out := []byte("---")
	for n, bit := range []Flags{FLAG_LESS, FLAG_GREATER, FLAG_EQUAL} {
		if fl&bit != 0 {
			out[n] = "LGE"[n]
		}
	}
	return string(out)
}

// REGISTER_COUNT is the number of general purpose registers.
const REGISTER_COUNT = 8

// Registers is the LS-8 register file.
//
// The special registers are named fields, never aliases into R.
type Registers struct {
	R  [REGISTER_COUNT]uint8 // General purpose registers R0-R7.
	PC int                   // Address of the next instruction.
	IR Opcode                // Last fetched instruction.
	FL Flags                 // Comparison flags.
	SP uint8                 // Stack pointer.
}

// Reg returns a pointer to the general purpose register selected by the
// low three bits of n.
func (reg *Registers) Reg(n uint8) *uint8 {
	return &reg.R[n&(REGISTER_COUNT-1)]
}

// String returns the register file state as a string.
func (reg *Registers) String() string {
	var text strings.Builder

	fmt.Fprintf(&text, "%5s: %02X\n", "pc", reg.PC)
	fmt.Fprintf(&text, "%5s: %08b %v\n", "ir", uint8(reg.IR), reg.IR)
	fmt.Fprintf(&text, "%5s: %v\n", "fl", reg.FL)
	fmt.Fprintf(&text, "%5s: %02X\n", "sp", reg.SP)
	for n, val := range reg.R {
		fmt.Fprintf(&text, "%5s: %02X\n", fmt.Sprintf("r%d", n), val)
	}

	return text.String()
}
