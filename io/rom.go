package io

import (
	"iter"
)

// Rom is a read-only port that yields its data once per rewind.
type Rom struct {
	Data []byte

	index int
}

var _ Port = (*Rom)(nil)

// Rewind restarts the data from the beginning.
func (rc *Rom) Rewind() {
	rc.index = 0
}

// Receive yields the data not yet read since the last rewind.
func (rc *Rom) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for rc.index < len(rc.Data) {
			value := rc.Data[rc.index]
			rc.index++
			if !yield(value) {
				return
			}
		}
	}
}

// Send always fails with ErrPortReadOnly.
func (rc *Rom) Send(value byte) error {
	return ErrPortReadOnly
}
