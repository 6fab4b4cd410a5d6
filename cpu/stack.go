package cpu

import (
	"github.com/ezrec/ls8/memory"
)

// Stack is the downward growing stack held in memory and addressed by SP.
//
// Push pre-decrements SP, Pop post-increments it; SP wraps modulo 256 like
// any other cell.
type Stack struct {
	Memory memory.Memory
	SP     *uint8
}

// Push decrements SP and stores value at the new SP.
func (s Stack) Push(value uint8) {
	*s.SP--
	s.Memory.Write(int(*s.SP), value)
}

// Pop returns the value at SP and increments SP.
func (s Stack) Pop() (value uint8) {
	value = s.Peek()
	*s.SP++
	return
}

// Peek returns the value at SP without moving it.
func (s Stack) Peek() uint8 {
	return s.Memory.Read(int(*s.SP))
}

// Depth returns the number of cells pushed below base.
func (s Stack) Depth(base uint8) int {
	return int(base - *s.SP)
}
