package io

import (
	"iter"
)

// MEMORY_SIZE is the size of the 8080 address space.
const MEMORY_SIZE = 1 << 16

// Memory is a flat 64KiB memory image with 256 I/O ports. Addresses wrap
// at the top of memory.
type Memory struct {
	Data  [MEMORY_SIZE]byte
	Ports [256]Port

	// Fault is the first error returned by a port transfer.
	Fault error
}

// Reset clears the memory image and any fault, and rewinds all ports.
func (mem *Memory) Reset() {
	mem.Data = [MEMORY_SIZE]byte{}
	mem.Fault = nil
	mem.Rewind()
}

// Rewind rewinds all attached ports.
func (mem *Memory) Rewind() {
	for _, port := range mem.Attached() {
		port.Rewind()
	}
}

// Attached returns an iterator over the attached ports.
func (mem *Memory) Attached() iter.Seq2[byte, Port] {
	return func(yield func(index byte, port Port) bool) {
		for n, port := range mem.Ports {
			if port == nil {
				continue
			}
			if !yield(byte(n), port) {
				return
			}
		}
	}
}

// LoadImage copies an image into memory at the origin.
func (mem *Memory) LoadImage(origin uint16, image []byte) (err error) {
	if int(origin)+len(image) > MEMORY_SIZE {
		err = ErrImageOverflow
		return
	}

	copy(mem.Data[origin:], image)
	return
}

// Load reads a byte.
func (mem *Memory) Load(addr uint16) byte {
	return mem.Data[addr]
}

// LoadWord reads a little endian word, wrapping at the top of memory.
func (mem *Memory) LoadWord(addr uint16) uint16 {
	return uint16(mem.Data[addr+1])<<8 | uint16(mem.Data[addr])
}

// Store writes a byte.
func (mem *Memory) Store(addr uint16, value byte) {
	mem.Data[addr] = value
}

// StoreWord writes a little endian word, wrapping at the top of memory.
func (mem *Memory) StoreWord(addr uint16, value uint16) {
	mem.Data[addr] = byte(value)
	mem.Data[addr+1] = byte(value >> 8)
}

// In reads a byte from a port. Unattached or empty ports read as 0xff.
func (mem *Memory) In(port byte) byte {
	dev := mem.Ports[port]
	if dev == nil {
		return 0xff
	}

	value, ok := ReceiveOne(dev)
	if !ok {
		return 0xff
	}
	return value
}

// Out writes a byte to a port. Writes to unattached ports are discarded.
func (mem *Memory) Out(port byte, value byte) {
	dev := mem.Ports[port]
	if dev == nil {
		return
	}

	err := dev.Send(value)
	if err != nil && mem.Fault == nil {
		mem.Fault = ErrPort{Port: port, Err: err}
	}
}

// Rewinder is a write-only port that rewinds the port whose number is
// written to it.
type Rewinder struct {
	Memory *Memory
}

var _ Port = (*Rewinder)(nil)

// Rewind does nothing; the rewinder has no state.
func (rw *Rewinder) Rewind() {}

// Receive yields nothing.
func (rw *Rewinder) Receive() iter.Seq[byte] {
	return func(yield func(value byte) bool) {}
}

// Send rewinds the port numbered by the value, other than the rewinder itself.
func (rw *Rewinder) Send(value byte) (err error) {
	port := rw.Memory.Ports[value]
	if port != nil && port != Port(rw) {
		port.Rewind()
	}
	return
}
