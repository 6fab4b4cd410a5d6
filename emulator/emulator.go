// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator assembles an LS-8 machine from memory, CPU and output
// tape, and drives its fetch-decode-execute loop.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"time"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
	"github.com/ezrec/ls8/io"
	"github.com/ezrec/ls8/memory"
)

const (
	RAM_SIZE = memory.CAPACITY_DEFAULT // Memory of a stock LS-8.
)

var _emulator_defines = map[string]string{
	"REGISTER_COUNT": fmt.Sprintf("%v", cpu.REGISTER_COUNT),
}

// Tracer observes every successfully executed instruction.
type Tracer interface {
	Step(mem memory.Memory, before, after cpu.Registers)
}

// Emulator state. CPU + RAM + output tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Ram      *memory.Ram  // Memory the program is loaded into.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape  io.Tape // PRN output channel.
	Trace Tracer  // If set, receives each executed instruction.
}

// NewEmulator creates a new emulator with the given memory capacity.
func NewEmulator(capacity int) (emu *Emulator, err error) {
	ram, err := memory.NewRam(capacity)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:     cpu.NewCpu(ram),
		Ram:     ram,
		Program: &cpu.Program{},
	}

	emu.Cpu.Output = &emu.Tape

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Ram.Defines(),
	)
}

// Reset the machine: zero memory, load the program at ADDR_PROGRAM, and
// reset the CPU.
func (emu *Emulator) Reset() (err error) {
	if emu.Program.Size() > emu.Ram.Capacity() {
		err = errors.Join(ErrProgramSize, fmt.Errorf("%d > %d", emu.Program.Size(), emu.Ram.Capacity()))
		return
	}

	emu.Ram.Reset()
	emu.Ram.Load(cpu.ADDR_PROGRAM, emu.Program.Binary())

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()

	if emu.Verbose {
		log.Printf("emu: loaded %d bytes", emu.Program.Size())
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Reg.PC
}

// LineNo returns the source line number of the instruction at the PC,
// or 0 if the PC is outside of the program.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Reg.PC)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Reg.PC
	defer func() {
		done = emu.Cpu.Halted
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	before := emu.Cpu.Reg

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	if emu.Trace != nil {
		emu.Trace.Step(emu.Ram, before, emu.Cpu.Reg)
	}

	return
}

// Run ticks the emulator until it halts, fails, or ctx is done.
//
// If clock is not nil, each tick waits for a value from it; see Clock.
func (emu *Emulator) Run(ctx context.Context, clock <-chan time.Time) (err error) {
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		if clock != nil {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			case <-clock:
			}
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}

// Clock returns a channel pacing Run at hz ticks per second, and a function
// to release it. A non-positive or unrepresentably fast hz returns a nil
// channel (unpaced).
func Clock(hz int) (clock <-chan time.Time, stop func()) {
	period := time.Duration(0)
	if hz > 0 {
		period = time.Second / time.Duration(hz)
	}
	if period <= 0 {
		return nil, func() {}
	}

	ticker := time.NewTicker(period)

	return ticker.C, ticker.Stop
}
