package io

import (
	"fmt"
	"io"
)

// Tape writes each printed cell as a decimal line to an io.Writer.
type Tape struct {
	Output io.Writer

	count int
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the counter is reset.
func (tc *Tape) Rewind() {
	tc.count = 0
}

// Count returns the number of cells printed since the last Rewind.
func (tc *Tape) Count() int {
	return tc.count
}

// Print writes value followed by a newline.
func (tc *Tape) Print(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.count++

	return
}
