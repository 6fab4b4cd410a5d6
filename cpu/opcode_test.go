package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := map[Opcode](struct {
		operands int
		alu      bool
		setsPc   bool
		id       uint8
	}){
		OP_NOP:  {0, false, false, 0x0},
		OP_HLT:  {0, false, false, 0x1},
		OP_RET:  {0, false, true, 0x1},
		OP_PUSH: {1, false, false, 0x5},
		OP_POP:  {1, false, false, 0x6},
		OP_PRN:  {1, false, false, 0x7},
		OP_CALL: {1, false, true, 0x0},
		OP_JMP:  {1, false, true, 0x4},
		OP_JEQ:  {1, false, true, 0x5},
		OP_JNE:  {1, false, true, 0x6},
		OP_LDI:  {2, false, false, 0x2},
		OP_LD:   {2, false, false, 0x3},
		OP_ST:   {2, false, false, 0x4},
		OP_ADD:  {2, true, false, 0x0},
		OP_SUB:  {2, true, false, 0x1},
		OP_MUL:  {2, true, false, 0x2},
		OP_CMP:  {2, true, false, 0x7},
		OP_AND:  {2, true, false, 0x8},
		OP_OR:   {2, true, false, 0xa},
		OP_XOR:  {2, true, false, 0xb},
	}

	count := 0
	for op := range Opcodes() {
		count++
		entry, ok := table[op]
		if !assert.True(ok, op.String()) {
			continue
		}
		assert.Equal(entry.operands, op.Operands(), op.String())
		assert.Equal(entry.operands+1, op.Size(), op.String())
		assert.Equal(entry.alu, op.Alu(), op.String())
		assert.Equal(entry.setsPc, op.SetsPc(), op.String())
		assert.Equal(entry.id, op.Id(), op.String())
		assert.True(op.Valid(), op.String())
		if op.Alu() {
			assert.Equal(op.Id(), uint8(AluOp(op.Id())), op.String())
		}
	}
	assert.Equal(len(table), count)
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDI", OP_LDI.String())
	assert.Equal("HLT", OP_HLT.String())
	assert.Equal("XOR", OP_XOR.String())
	assert.Equal("Opcode(255)", Opcode(0xff).String())

	assert.Equal("cmp", ALU_OP_CMP.String())
}

func TestOpcode_Valid(t *testing.T) {
	assert := assert.New(t)

	valid := 0
	for n := range 256 {
		if Opcode(n).Valid() {
			valid++
		}
	}
	assert.Equal(len(opcodes), valid)
	assert.False(Opcode(0xff).Valid())
	assert.False(Opcode(0x02).Valid())
}
