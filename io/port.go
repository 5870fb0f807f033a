// Package io provides the memory image and I/O port devices for the 8080
// emulator. It includes a 64KiB memory (Memory), sequential byte streams
// (Tape), a FIFO loopback (Temporary), a persistent byte store (Ring),
// and read-only data (Rom).
package io

import (
	"iter"
)

// Port defines the interface for all devices attached to an 8080 I/O port.
// Ports operate at the byte level and support sequential reading and writing.
type Port interface {
	// Rewind resets the port to its initial state.
	Rewind()
	// Receive returns an iterator that yields bytes from the port.
	Receive() iter.Seq[byte]
	// Send writes a single byte to the port.
	Send(value byte) error
}

// ReceiveOne reads a single byte from the port.
func ReceiveOne(port Port) (value byte, ok bool) {
	for value = range port.Receive() {
		return value, true
	}
	return
}
