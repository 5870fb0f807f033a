package cpu

import (
	"fmt"
)

// width returns the decode width of the opcode byte at bin[pc], failing if
// the instruction extends past the end of bin, or pc is outside of bin.
func width(bin []byte, pc int) (n int, err error) {
	if pc < 0 || pc >= len(bin) {
		err = ErrInsufficientBytes{Offset: pc, Missing: 1}
		return
	}

	n = RawFrom(bin[pc]).Width()
	if pc+n > len(bin) {
		err = ErrInsufficientBytes{Offset: pc, Missing: pc + n - len(bin)}
	}
	return
}

// Decode decodes the instruction at bin[pc], returning the Code and the
// offset of the following instruction.
func Decode(bin []byte, pc int) (code Code, next int, err error) {
	n, err := width(bin, pc)
	if err != nil {
		return
	}

	code = makeCode(RawFrom(bin[pc]), bin[pc+1:pc+n])
	next = pc + n
	return
}

// DisassembleRaw decodes a binary into opcode tags, skipping over operand
// bytes. Decoding stops at the first truncated instruction.
func DisassembleRaw(bin []byte) (raws []Raw, err error) {
	for pc := 0; pc < len(bin); {
		var n int
		n, err = width(bin, pc)
		if err != nil {
			raws = nil
			return
		}
		raws = append(raws, RawFrom(bin[pc]))
		pc += n
	}

	return
}

// Disassemble decodes a binary into Codes. Decoding stops at the first
// truncated instruction.
func Disassemble(bin []byte) (codes []Code, err error) {
	for pc := 0; pc < len(bin); {
		var code Code
		code, pc, err = Decode(bin, pc)
		if err != nil {
			codes = nil
			return
		}
		codes = append(codes, code)
	}

	return
}

// Line is a single entry of a disassembly listing.
type Line struct {
	Addr  uint16 // Load address of the instruction.
	Bytes []byte // Instruction bytes.
	Code  Code   // Decoded instruction.
}

// Listing disassembles a binary loaded at origin into an address annotated
// listing.
func Listing(bin []byte, origin uint16) (lines []Line, err error) {
	for pc := 0; pc < len(bin); {
		var code Code
		var next int
		code, next, err = Decode(bin, pc)
		if err != nil {
			lines = nil
			return
		}
		lines = append(lines, Line{
			Addr:  origin + uint16(pc),
			Bytes: bin[pc:next],
			Code:  code,
		})
		pc = next
	}

	return
}

// String formats the line as "addr: bytes mnemonic".
func (line Line) String() string {
	return fmt.Sprintf("%04x: %-9s %v", line.Addr, fmt.Sprintf("% x", line.Bytes), line.Code)
}
