package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("---", Flags(0).String())
	assert.Equal("--E", FLAG_EQUAL.String())
	assert.Equal("-G-", FLAG_GREATER.String())
	assert.Equal("L--", FLAG_LESS.String())
	assert.Equal("LGE", FLAG_MASK.String())

	fl := FLAG_LESS | FLAG_EQUAL
	assert.True(fl.Less())
	assert.True(fl.Equal())
	assert.False(fl.Greater())
}

func TestRegisters_Reg(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{}
	*reg.Reg(3) = 0x42
	assert.Equal(uint8(0x42), reg.R[3])

	// Only the low three bits select the register.
	assert.Equal(reg.Reg(3), reg.Reg(0x0b))
	assert.Equal(uint8(0x42), *reg.Reg(0xfb))

	// SP is never part of R.
	reg.SP = 0xf4
	*reg.Reg(7) = 0
	assert.Equal(uint8(0xf4), reg.SP)
}

func TestRegisters_String(t *testing.T) {
	assert := assert.New(t)

	reg := &Registers{PC: 3, IR: OP_LDI, SP: 0xf4}
	reg.R[1] = 0x11

	text := reg.String()
	assert.Contains(text, "   pc: 03\n")
	assert.Contains(text, "   ir: 10000010 LDI\n")
	assert.Contains(text, "   sp: F4\n")
	assert.Contains(text, "   r1: 11\n")
}
