package cpu

import (
	"github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/memory"
)

// Frame is the machine state an instruction handler operates on.
type Frame struct {
	Reg    *Registers
	Memory memory.Memory
	Output io.Channel
}

// stack returns the memory stack addressed by the frame's SP.
func (fr *Frame) stack() Stack {
	return Stack{Memory: fr.Memory, SP: &fr.Reg.SP}
}

// handler executes one instruction given its raw operand bytes.
//
// next is only used for instructions whose opcode sets the PC; all others
// are advanced by the Cpu.
type handler func(fr *Frame, a, b uint8) (next int, err error)

func opNop(fr *Frame, a, b uint8) (next int, err error) {
	return
}

func opHlt(fr *Frame, a, b uint8) (next int, err error) {
	err = errHalt
	return
}

// opLdi loads an immediate; the operand cell is already masked to 8 bits.
func opLdi(fr *Frame, a, b uint8) (next int, err error) {
	*fr.Reg.Reg(a) = b
	return
}

func opLd(fr *Frame, a, b uint8) (next int, err error) {
	*fr.Reg.Reg(a) = fr.Memory.Read(int(*fr.Reg.Reg(b)))
	return
}

func opSt(fr *Frame, a, b uint8) (next int, err error) {
	fr.Memory.Write(int(*fr.Reg.Reg(a)), *fr.Reg.Reg(b))
	return
}

// opAlu runs every ALU instruction; the operation is the IR identifier.
func opAlu(fr *Frame, a, b uint8) (next int, err error) {
	op := AluOp(fr.Reg.IR.Id())
	dst := fr.Reg.Reg(a)

	value, flags := Alu(op, *dst, *fr.Reg.Reg(b))
	if op.Writes() {
		*dst = value
	}
	if op.Compares() {
		fr.Reg.FL = flags
	}

	return
}

func opPrn(fr *Frame, a, b uint8) (next int, err error) {
	if fr.Output == nil {
		return
	}
	err = fr.Output.Print(*fr.Reg.Reg(a))
	return
}

func opPush(fr *Frame, a, b uint8) (next int, err error) {
	fr.stack().Push(*fr.Reg.Reg(a))
	return
}

func opPop(fr *Frame, a, b uint8) (next int, err error) {
	*fr.Reg.Reg(a) = fr.stack().Pop()
	return
}

// opCall pushes the address following the 2-byte CALL, and jumps.
func opCall(fr *Frame, a, b uint8) (next int, err error) {
	fr.stack().Push(uint8(fr.Reg.PC + 2))
	next = int(*fr.Reg.Reg(a))
	return
}

func opRet(fr *Frame, a, b uint8) (next int, err error) {
	next = int(fr.stack().Pop())
	return
}

func opJmp(fr *Frame, a, b uint8) (next int, err error) {
	next = int(*fr.Reg.Reg(a))
	return
}

func opJeq(fr *Frame, a, b uint8) (next int, err error) {
	if !fr.Reg.FL.Equal() {
		next = fr.Reg.PC + 2
		return
	}
	return opJmp(fr, a, b)
}

func opJne(fr *Frame, a, b uint8) (next int, err error) {
	if fr.Reg.FL.Equal() {
		next = fr.Reg.PC + 2
		return
	}
	return opJmp(fr, a, b)
}
