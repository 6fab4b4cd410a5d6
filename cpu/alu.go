package cpu

// AluOp is an ALU operation type. Its value is the DDDD identifier of the
// ALU instruction that requests it.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0x0) // add
	ALU_OP_SUB = AluOp(0x1) // sub
	ALU_OP_MUL = AluOp(0x2) // mul
	ALU_OP_CMP = AluOp(0x7) // cmp
	ALU_OP_AND = AluOp(0x8) // and
	ALU_OP_OR  = AluOp(0xa) // or
	ALU_OP_XOR = AluOp(0xb) // xor
)

// Writes returns true if the operation result replaces the first operand.
func (op AluOp) Writes() bool {
	return op != ALU_OP_CMP
}

// Compares returns true if the operation replaces the flags register.
func (op AluOp) Compares() bool {
	return op == ALU_OP_CMP
}

// Alu performs the requested ALU operation on two cells.
//
// All arithmetic wraps modulo 256. Only ALU_OP_CMP produces flags; the
// returned flags are zero for every other operation.
func Alu(op AluOp, a, b uint8) (value uint8, flags Flags) {
	switch op {
	case ALU_OP_ADD:
		value = a + b
	case ALU_OP_SUB:
		value = a - b
	case ALU_OP_MUL:
		value = a * b
	case ALU_OP_AND:
		value = a & b
	case ALU_OP_OR:
		value = a | b
	case ALU_OP_XOR:
		value = a ^ b
	case ALU_OP_CMP:
		switch {
		case a < b:
			flags = FLAG_LESS
		case a > b:
			flags = FLAG_GREATER
		default:
			flags = FLAG_EQUAL
		}
	default:
		panic("unknown alu op")
	}

	return
}
