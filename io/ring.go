package io

import (
	"io"
	"iter"
)

const (
	// RING_DEFAULT_CAPACITY is the default capacity in bytes for a new ring.
	RING_DEFAULT_CAPACITY = 65536
)

// Ring represents a persistent storage device with separate read and write
// positions. Its contents can be marshaled to and from a file.
type Ring struct {
	Capacity int

	WriteIndex int
	ReadIndex  int
	Data       []byte
}

var _ Port = (*Ring)(nil)

// Rewind resets the ring's read position to the start and write position to the end
// of existing data. Initializes the data buffer if not already allocated.
func (ring *Ring) Rewind() {
	if ring.Capacity == 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}
	if ring.Data == nil {
		ring.Data = make([]byte, 0, ring.Capacity)
	}

	ring.ReadIndex = 0
	ring.WriteIndex = len(ring.Data)
}

// Unmarshal loads ring data from a reader, replacing any existing data.
func (ring *Ring) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	ring.Data = data
	ring.ReadIndex = 0
	ring.WriteIndex = len(ring.Data)

	return
}

// Marshal writes the ring's data to a writer up to the current write position.
func (ring *Ring) Marshal(file io.Writer) (err error) {
	_, err = file.Write(ring.Data[:ring.WriteIndex])

	return
}

// Receive returns an iterator that yields bytes from the ring starting at the
// current read position up to the write position.
func (ring *Ring) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {
		for ring.ReadIndex < ring.WriteIndex {
			value := ring.Data[ring.ReadIndex]
			ring.ReadIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send writes a byte to the ring at the current write position.
// Returns ErrPortFull if the ring has reached capacity.
func (ring *Ring) Send(value byte) (err error) {
	if ring.Capacity == 0 {
		ring.Capacity = RING_DEFAULT_CAPACITY
	}

	if ring.WriteIndex >= ring.Capacity {
		err = ErrPortFull
		return
	}

	if ring.WriteIndex < len(ring.Data) {
		ring.Data[ring.WriteIndex] = value
	} else {
		ring.Data = append(ring.Data, value)
	}
	ring.WriteIndex++

	return
}
