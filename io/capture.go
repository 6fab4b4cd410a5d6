package io

// Capture records every printed cell.
type Capture struct {
	Values []uint8
}

var _ Channel = (*Capture)(nil)

// Rewind discards the captured values.
func (cc *Capture) Rewind() {
	cc.Values = nil
}

// Print appends value to Values.
func (cc *Capture) Print(value uint8) error {
	cc.Values = append(cc.Values, value)
	return nil
}
