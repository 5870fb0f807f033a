package io

import (
	"io"
	"iter"
)

// Tape provides sequential I/O operations for reading and writing byte streams.
// It wraps an io.Reader for input and an io.Writer for output.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Port = (*Tape)(nil)

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive returns an iterator that yields bytes from the input stream,
// reading each byte as it is requested.
func (tc *Tape) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		if tc.Input == nil {
			return
		}
		for {
			var one [1]byte
			_, err := io.ReadFull(tc.Input, one[:])
			if err != nil {
				return
			}
			if !yield(one[0]) {
				return
			}
		}
	}
}

// Send writes a byte to the output stream. Output is discarded if the tape
// has no output stream.
func (tc *Tape) Send(value byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{value})
	return
}
