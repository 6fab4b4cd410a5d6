// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory provides the flat, wrapping byte store the LS-8 executes from.
package memory

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// ErrCapacity is returned for a capacity that is not a power of two >= 256.
	ErrCapacity = errors.New(f("memory capacity must be a power of two of at least 256"))
)

const (
	CAPACITY_MIN     = 256 // Smallest capacity covering the 8-bit address range.
	CAPACITY_DEFAULT = 256 // Capacity of a stock LS-8.
)

// Memory is the addressable store consumed by the CPU.
//
// Addresses are never out of range: implementations reduce every address
// modulo Capacity().
type Memory interface {
	// Read returns the cell at address.
	Read(address int) uint8
	// Write stores value at address.
	Write(address int, value uint8)
	// Capacity returns the number of cells.
	Capacity() int
}

// Ram is a fixed-size array of cells addressed with wraparound.
type Ram struct {
	Data []uint8

	mask int
}

var _ Memory = (*Ram)(nil)

// NewRam creates a zeroed Ram of the given capacity.
func NewRam(capacity int) (ram *Ram, err error) {
	if capacity < CAPACITY_MIN || capacity&(capacity-1) != 0 {
		err = errors.Join(ErrCapacity, fmt.Errorf("%d", capacity))
		return
	}

	ram = &Ram{
		Data: make([]uint8, capacity),
		mask: capacity - 1,
	}

	return
}

// Capacity returns the number of cells in the Ram.
func (ram *Ram) Capacity() int {
	return len(ram.Data)
}

// Read returns the cell at address & (capacity-1).
func (ram *Ram) Read(address int) uint8 {
	return ram.Data[address&ram.mask]
}

// Write stores value at address & (capacity-1).
func (ram *Ram) Write(address int, value uint8) {
	ram.Data[address&ram.mask] = value
}

// Load writes data into consecutive cells starting at address.
// Loads that run past the end wrap to the start of memory.
func (ram *Ram) Load(address int, data []uint8) {
	for n, value := range data {
		ram.Write(address+n, value)
	}
}

// Reset zeros all cells.
func (ram *Ram) Reset() {
	clear(ram.Data)
}

// Defines returns the assembler symbols describing this Ram.
func (ram *Ram) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"RAM_SIZE": fmt.Sprintf("%d", ram.Capacity()),
	})
}
