package cpu

import (
	"iter"
)

// Opcode represents a single assembled instruction with its source location.
type Opcode struct {
	LineNo    int      // Source line of the mnemonic.
	Addr      uint16   // Address of the instruction.
	Words     []string // Source words of the instruction.
	Code      Code     // Assembled instruction.
	LinkLabel string   // Label the address operand refers to, if any.
}

// Program is the output of the assembler.
type Program struct {
	Opcodes []Opcode
	Labels  map[string]uint16
}

// Debug returns the opcode covering the address.
func (prog *Program) Debug(addr uint16) (op *Opcode, ok bool) {
	for n := range prog.Opcodes {
		op = &prog.Opcodes[n]
		width := uint16(op.Code.Raw().Width())
		if addr >= op.Addr && addr-op.Addr < width {
			return op, true
		}
	}

	return nil, false
}

// Codes returns an iterator over the address and Code of each opcode.
func (prog *Program) Codes() iter.Seq2[uint16, Code] {
	return func(yield func(addr uint16, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Addr, op.Code) {
				return
			}
		}
	}
}

// Binary returns the encoded program.
func (prog *Program) Binary() []byte {
	var bin []byte
	for _, code := range prog.Codes() {
		bin = code.AppendTo(bin)
	}

	return bin
}
