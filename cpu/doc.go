// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The LS-8 is an 8-bit machine with eight general purpose registers
// (R0-R7), a program counter, an instruction register, a stack pointer and
// a comparison flags register (FL). Every instruction byte carries its own
// decoding: the operand count, whether the ALU executes it, and whether it
// sets the PC itself.
//
// Programs are either loaded from .ls8 binary listings (ParseBinary) or
// assembled from source (Assembler), which supports labels, equates, macros
// and compile-time $(...) expressions.
package cpu
