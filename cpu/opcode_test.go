package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var reservedBytes = []byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xcb, 0xd9, 0xdd, 0xed, 0xfd}

func TestRawFrom(t *testing.T) {
	assert := assert.New(t)

	reserved := 0
	for n := range 256 {
		b := byte(n)
		raw := RawFrom(b)
		if Reserved(b) {
			reserved++
			assert.Equal(NOP, raw, "0x%02x", b)
			assert.False(Raw(b).Valid())
		} else {
			assert.Equal(b, raw.Byte(), "0x%02x", b)
			assert.True(raw.Valid())
		}
	}

	assert.Equal(len(reservedBytes), reserved)
	for _, b := range reservedBytes {
		assert.True(Reserved(b), "0x%02x", b)
		assert.Equal(1, Raw(b).Width())
	}
}

func TestRaw_Width(t *testing.T) {
	table := [...]struct {
		raw      Raw
		width    int
		operands int
		cycles   int
	}{
		{NOP, 1, 0, 4},
		{LXI_B, 3, 2, 10},
		{LXI_SP, 3, 2, 10},
		{MVI_A, 2, 1, 7},
		{MOV_A_M, 1, 0, 7},
		{HLT, 1, 0, 7},
		{ADI, 2, 1, 7},
		{CPI, 2, 1, 7},
		{IN, 2, 1, 10},
		{OUT, 2, 1, 10},
		{STA, 3, 2, 13},
		{SHLD, 3, 2, 16},
		{JMP, 3, 2, 10},
		{CNZ, 3, 2, 11},
		{CALL, 3, 2, 17},
		{RNZ, 1, 0, 5},
		{RET, 1, 0, 10},
		{RST_7, 1, 0, 11},
		{XTHL, 1, 0, 18},
	}

	for _, entry := range table {
		assert := assert.New(t)
		assert.Equal(entry.width, entry.raw.Width(), entry.raw.String())
		assert.Equal(entry.operands, entry.raw.Operands(), entry.raw.String())
		assert.Equal(entry.cycles, entry.raw.Cycles(), entry.raw.String())
	}
}

func TestRaw_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("mov a m", MOV_A_M.Mnemonic())
	assert.Equal("push psw", PUSH_PSW.Mnemonic())
	assert.Equal("lxi sp", LXI_SP.Mnemonic())
	assert.Equal("rst 7", RST_7.Mnemonic())
	assert.Equal("nop", Raw(0x08).Mnemonic())

	assert.Equal("MOV_A_M", MOV_A_M.String())
	assert.Equal("RST_7", RST_7.String())
	assert.Equal("Raw(203)", Raw(0xcb).String())

	// Every documented tag has a name, and no reserved byte does.
	for n := range 256 {
		raw := Raw(n)
		assert.Equal(raw.Valid(), !strings.HasPrefix(raw.String(), "Raw("), "0x%02x", n)
	}
}

func TestCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("mov a c", MakeImplied(MOV_A_C).String())
	assert.Equal("mvi b 0x05", MakeData8(MVI_B, 5).String())
	assert.Equal("jmp 0x1234", MakeAddress(JMP, 0x1234).String())

	code := MakeAddress(LXI_H, 0x1234)
	assert.Equal(byte(0x34), code.Lo)
	assert.Equal(byte(0x12), code.Hi)
	assert.Equal(uint16(0x1234), code.Word())
	assert.Equal([]byte{0x34, 0x12}, code.Operands())
	assert.Equal([]byte{0x21, 0x34, 0x12}, code.AppendTo(nil))
	assert.Equal(code, MakeData16(LXI_H, 0x34, 0x12))

	assert.Nil(MakeImplied(NOP).Operands())
	assert.Equal([]byte{0xdb, 0x10}, MakeData8(IN, 0x10).AppendTo(nil))

	assert.Panics(func() { MakeImplied(JMP) })
	assert.Panics(func() { MakeData8(NOP, 0) })
	assert.Panics(func() { MakeData16(MVI_A, 0, 0) })

	// Variants built without their Make function do not encode.
	assert.Panics(func() { Codegen([]Code{Data8{Data: 5}}) })
	assert.Panics(func() { Codegen([]Code{Data16{Lo: 1, Hi: 2}}) })
	assert.Equal([]byte{0x00}, Codegen([]Code{Implied{}}))
}
