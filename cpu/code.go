package cpu

import (
	"fmt"
)

// Code is the operand-carrying form of an opcode: the tag plus the immediate
// or address bytes that follow it in the instruction stream.
//
// A Code is exactly one of Implied, Data8 or Data16, as selected by the width
// of its tag.
type Code interface {
	// Raw returns the opcode tag.
	Raw() Raw
	// Operands returns the operand bytes, in instruction stream order.
	Operands() []byte
	// AppendTo appends the instruction bytes to b. It panics if the tag
	// width does not match the variant, ie a bare Data8{Data: 5}.
	AppendTo(b []byte) []byte
	// String returns the assembly language representation.
	String() string

	code()
}

// Implied is an opcode with no operand bytes.
type Implied struct {
	raw Raw
}

// Data8 is an opcode followed by a single immediate byte.
type Data8 struct {
	raw  Raw
	Data byte // Immediate data or port number.
}

// Data16 is an opcode followed by a 16-bit immediate or address, stored as
// the literal (low, high) byte pair.
type Data16 struct {
	raw Raw
	Lo  byte // Low byte, first in the instruction stream.
	Hi  byte // High byte.
}

var (
	_ Code = Implied{}
	_ Code = Data8{}
	_ Code = Data16{}
)

func mustWidth(raw Raw, width int) {
	if raw.Width() != width {
		panic(fmt.Sprintf("%v is %d bytes wide, not %d", raw, raw.Width(), width))
	}
}

// MakeImplied creates a Code for a single byte opcode.
func MakeImplied(raw Raw) Implied {
	mustWidth(raw, 1)
	return Implied{raw: raw}
}

// MakeData8 creates a Code for a two byte opcode.
func MakeData8(raw Raw, data byte) Data8 {
	mustWidth(raw, 2)
	return Data8{raw: raw, Data: data}
}

// MakeData16 creates a Code for a three byte opcode from its operand bytes.
func MakeData16(raw Raw, lo, hi byte) Data16 {
	mustWidth(raw, 3)
	return Data16{raw: raw, Lo: lo, Hi: hi}
}

// MakeAddress creates a Code for a three byte opcode from a 16-bit value.
func MakeAddress(raw Raw, addr uint16) Data16 {
	return MakeData16(raw, byte(addr), byte(addr>>8))
}

// makeCode creates the Code for raw from the operand bytes. The caller is
// responsible for supplying exactly raw.Operands() bytes.
func makeCode(raw Raw, operands []byte) Code {
	switch raw.Width() {
	case 2:
		return Data8{raw: raw, Data: operands[0]}
	case 3:
		return Data16{raw: raw, Lo: operands[0], Hi: operands[1]}
	default:
		return Implied{raw: raw}
	}
}

func (code Implied) Raw() Raw { return code.raw }
func (code Data8) Raw() Raw   { return code.raw }
func (code Data16) Raw() Raw  { return code.raw }

func (code Implied) Operands() []byte { return nil }
func (code Data8) Operands() []byte   { return []byte{code.Data} }
func (code Data16) Operands() []byte  { return []byte{code.Lo, code.Hi} }

func (code Implied) AppendTo(b []byte) []byte {
	mustWidth(code.raw, 1)
	return append(b, byte(code.raw))
}

func (code Data8) AppendTo(b []byte) []byte {
	mustWidth(code.raw, 2)
	return append(b, byte(code.raw), code.Data)
}

func (code Data16) AppendTo(b []byte) []byte {
	mustWidth(code.raw, 3)
	return append(b, byte(code.raw), code.Lo, code.Hi)
}

func (Implied) code() {}
func (Data8) code()   {}
func (Data16) code()  {}

// Word returns the 16-bit value of the operand bytes.
func (code Data16) Word() uint16 {
	return uint16(code.Hi)<<8 | uint16(code.Lo)
}

func (code Implied) String() string {
	return code.raw.Mnemonic()
}

func (code Data8) String() string {
	return fmt.Sprintf("%v 0x%02x", code.raw.Mnemonic(), code.Data)
}

func (code Data16) String() string {
	return fmt.Sprintf("%v 0x%04x", code.raw.Mnemonic(), code.Word())
}

// Codegen encodes a sequence of Codes into binary.
func Codegen(codes []Code) (bin []byte) {
	for _, code := range codes {
		bin = code.AppendTo(bin)
	}

	return
}
