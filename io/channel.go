// Package io provides the output channels for the LS-8 PRN instruction.
//
// A channel receives one cell per PRN. Tape renders values to an io.Writer,
// Capture keeps them in memory.
package io

// Channel defines the interface for LS-8 output channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Print emits a single cell.
	Print(value uint8) error
}
