// Package trace writes a per-cycle diagnostic line for an LS-8 emulator:
// the PC, the raw instruction, its disassembly, and the registers it changed.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/memory"
)

var chOld = ansi.ColorCode("default:default")
var chNew = ansi.ColorCode("default+bu:default")
var chPc = ansi.ColorCode("yellow:default")

// Change is a single register that differed across an instruction.
type Change struct {
	Name     string
	Old, New uint8
}

// Changes returns the registers, SP and FL that differ between before and after.
// The PC and IR are not reported.
func Changes(before, after cpu.Registers) (changes []Change) {
	for n := range before.R {
		if before.R[n] != after.R[n] {
			changes = append(changes, Change{
				Name: fmt.Sprintf("r%d", n),
				Old:  before.R[n],
				New:  after.R[n],
			})
		}
	}
	if before.SP != after.SP {
		changes = append(changes, Change{Name: "sp", Old: before.SP, New: after.SP})
	}
	if before.FL != after.FL {
		changes = append(changes, Change{Name: "fl", Old: uint8(before.FL), New: uint8(after.FL)})
	}

	return
}

// Trace writes one line per executed instruction to Output.
type Trace struct {
	Output io.Writer
	Color  bool // Highlight with ANSI escapes.
}

func (tr *Trace) paint(s, color string) string {
	if !tr.Color {
		return s
	}
	return color + s + ansi.Reset
}

// Step formats the instruction at before.PC and the changes it made.
func (tr *Trace) Step(mem memory.Memory, before, after cpu.Registers) {
	text, _ := cpu.Disassemble(mem, before.PC)

	line := fmt.Sprintf("%s: %08b %-12s", tr.paint(fmt.Sprintf("%02X", before.PC), chPc), uint8(after.IR), text)

	var diffs []string
	for _, change := range Changes(before, after) {
		diffs = append(diffs, fmt.Sprintf("%s %s->%s",
			change.Name,
			tr.paint(fmt.Sprintf("%02X", change.Old), chOld),
			tr.paint(fmt.Sprintf("%02X", change.New), chNew)))
	}
	if len(diffs) > 0 {
		line += " | " + strings.Join(diffs, " ")
	}

	fmt.Fprintln(tr.Output, line)
}
