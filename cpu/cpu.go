package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/memory"
)

const (
	ADDR_PROGRAM = 0x00 // Programs load here, and the PC starts here.
	SP_INIT      = 0xF4 // Initial stack pointer; the stack grows down from here.
)

var _cpu_defines = map[string]string{
	"ADDR_PROGRAM": fmt.Sprintf("0x%02x", ADDR_PROGRAM),
	"SP_INIT":      fmt.Sprintf("0x%02x", SP_INIT),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory memory.Memory // Memory the program executes from.
	Output io.Channel    // Destination of PRN.

	Reg       Registers // Register file.
	StackInit uint8     // SP value after Reset.
	Halted    bool      // Set once HLT or an invalid opcode has executed.

	Ticks int // Instructions executed since Reset.
}

// NewCpu creates a new, reset CPU attached to mem.
func NewCpu(mem memory.Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Memory:    mem,
		StackInit: SP_INIT,
	}

	cpu.Reset()

	return
}

// Defines for the cpu: the memory map, and OP_<mnemonic> for every opcode.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	defines := maps.Clone(_cpu_defines)
	for op := range Opcodes() {
		defines["OP_"+op.String()] = fmt.Sprintf("0x%02x", uint8(op))
	}
	return maps.All(defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	state := "running"
	if cpu.Halted {
		state = "halted"
	}
	text = fmt.Sprintf("%5s: %v\n", "state", state)
	text += cpu.Reg.String()
	return
}

// Reset the CPU state.
// - Clears the registers and flags.
// - Sets PC to ADDR_PROGRAM and SP to StackInit.
// - Zeros the tick counter.
// - Rewinds the output channel.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Reg = Registers{
		PC: ADDR_PROGRAM,
		SP: cpu.StackInit,
	}
	cpu.Halted = false
	cpu.Ticks = 0

	if cpu.Output != nil {
		cpu.Output.Rewind()
	}
}

// Fetch loads IR from the PC, and reads the operands the opcode requires.
func (cpu *Cpu) Fetch() (code Opcode, operand [2]uint8) {
	pc := cpu.Reg.PC

	code = Opcode(cpu.Memory.Read(pc))
	cpu.Reg.IR = code

	for n := range min(code.Operands(), len(operand)) {
		operand[n] = cpu.Memory.Read(pc + 1 + n)
	}

	return
}

// Tick executes a single fetch-decode-execute cycle.
//
// An opcode with no handler halts the CPU and returns ErrInvalidOpcode.
// Ticking a halted CPU returns ErrHalted.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	code, operand := cpu.Fetch()

	err = cpu.Execute(code, operand)

	return
}

// Execute executes a single instruction located at the PC, setting IR to code.
func (cpu *Cpu) Execute(code Opcode, operand [2]uint8) (err error) {
	pc := cpu.Reg.PC
	cpu.Reg.IR = code

	handle, ok := lookup(code)
	if !ok {
		cpu.Halted = true
		err = ErrInvalidOpcode{Pc: pc, Opcode: code}
		log.Printf("cpu: %v", err)
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: %02x: %08b %v", pc, uint8(code), code)
	}

	frame := &Frame{
		Reg:    &cpu.Reg,
		Memory: cpu.Memory,
		Output: cpu.Output,
	}

	next, err := handle(frame, operand[0], operand[1])
	halt := errors.Is(err, errHalt)
	if halt {
		err = nil
	}
	if err != nil {
		err = errors.Join(ErrOpcodeIo, err)
		return
	}

	if !code.SetsPc() {
		next = pc + code.Size()
	}

	cpu.Reg.PC = next & (cpu.Memory.Capacity() - 1)
	cpu.Ticks++

	if halt {
		cpu.Halted = true
		if cpu.Verbose {
			log.Printf("cpu: halted at %02x", pc)
		}
	}

	return
}
