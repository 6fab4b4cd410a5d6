package cpu

// Opcode is a raw LS-8 instruction byte, laid out as AABCDDDD:
//
//	AA   - number of operand bytes that follow (0-2)
//	B    - instruction is executed by the ALU
//	C    - instruction sets the PC itself
//	DDDD - instruction identifier
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP  = Opcode(0b0000_0000) // NOP
	OP_HLT  = Opcode(0b0000_0001) // HLT
	OP_RET  = Opcode(0b0001_0001) // RET
	OP_PUSH = Opcode(0b0100_0101) // PUSH
	OP_POP  = Opcode(0b0100_0110) // POP
	OP_PRN  = Opcode(0b0100_0111) // PRN
	OP_CALL = Opcode(0b0101_0000) // CALL
	OP_JMP  = Opcode(0b0101_0100) // JMP
	OP_JEQ  = Opcode(0b0101_0101) // JEQ
	OP_JNE  = Opcode(0b0101_0110) // JNE
	OP_LDI  = Opcode(0b1000_0010) // LDI
	OP_LD   = Opcode(0b1000_0011) // LD
	OP_ST   = Opcode(0b1000_0100) // ST
	OP_ADD  = Opcode(0b1010_0000) // ADD
	OP_SUB  = Opcode(0b1010_0001) // SUB
	OP_MUL  = Opcode(0b1010_0010) // MUL
	OP_CMP  = Opcode(0b1010_0111) // CMP
	OP_AND  = Opcode(0b1010_1000) // AND
	OP_OR   = Opcode(0b1010_1010) // OR
	OP_XOR  = Opcode(0b1010_1011) // XOR
)

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int((op >> 6) & 0b11)
}

// Alu returns true if the instruction is an ALU operation.
func (op Opcode) Alu() bool {
	return (op>>5)&0b1 == 1
}

// SetsPc returns true if the instruction determines the next PC itself,
// instead of the CPU advancing past the instruction and its operands.
func (op Opcode) SetsPc() bool {
	return (op>>4)&0b1 == 1
}

// Id returns the instruction identifier bits.
func (op Opcode) Id() uint8 {
	return uint8(op & 0xf)
}

// Size returns the number of bytes occupied by the instruction.
func (op Opcode) Size() int {
	return op.Operands() + 1
}
