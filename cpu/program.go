package cpu

import (
	"iter"
)

// Link is a reference to a label, patched into a line's bytes once all
// labels are known.
type Link struct {
	Index int    // Index into Line.Bytes.
	Label string // Label whose address is written.
}

// Line is a line of assembled or loaded source with its generated bytes.
type Line struct {
	LineNo  int
	Address int
	Words   []string
	Bytes   []uint8
	Links   []Link
}

// Program is a sequence of lines, in address order.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int
}

// Debug returns the line that generated the byte at address.
// The returned Line is nil if no line covers the address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: address - line.Address,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes spanned by the program image.
func (prog *Program) Size() (size int) {
	for _, line := range prog.Lines {
		size = max(size, line.Address+len(line.Bytes))
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []uint8) {
	bins = make([]uint8, prog.Size())
	for address, value := range prog.Bytes() {
		bins[address] = value
	}

	return
}

// Bytes iterates over every generated byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(address int, value uint8) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(line.Address+n, value) {
					return
				}
			}
		}
	}
}
