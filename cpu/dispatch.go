package cpu

import (
	"iter"
	"slices"
)

// opcodes lists every dispatchable opcode, in encoding order.
var opcodes = []Opcode{
	OP_NOP, OP_HLT, OP_RET,
	OP_PUSH, OP_POP, OP_PRN,
	OP_CALL, OP_JMP, OP_JEQ, OP_JNE,
	OP_LDI, OP_LD, OP_ST,
	OP_ADD, OP_SUB, OP_MUL, OP_CMP, OP_AND, OP_OR, OP_XOR,
}

// Opcodes returns an iterator over all dispatchable opcodes.
func Opcodes() iter.Seq[Opcode] {
	return slices.Values(opcodes)
}

// lookup returns the handler for an opcode.
// ok is false if the opcode is not a known instruction.
func lookup(op Opcode) (h handler, ok bool) {
	ok = true

	switch op {
	case OP_NOP:
		h = opNop
	case OP_HLT:
		h = opHlt
	case OP_RET:
		h = opRet
	case OP_PUSH:
		h = opPush
	case OP_POP:
		h = opPop
	case OP_PRN:
		h = opPrn
	case OP_CALL:
		h = opCall
	case OP_JMP:
		h = opJmp
	case OP_JEQ:
		h = opJeq
	case OP_JNE:
		h = opJne
	case OP_LDI:
		h = opLdi
	case OP_LD:
		h = opLd
	case OP_ST:
		h = opSt
	case OP_ADD, OP_SUB, OP_MUL, OP_CMP, OP_AND, OP_OR, OP_XOR:
		h = opAlu
	default:
		ok = false
	}

	return
}

// Valid returns true if the opcode can be dispatched.
func (op Opcode) Valid() bool {
	_, ok := lookup(op)
	return ok
}
