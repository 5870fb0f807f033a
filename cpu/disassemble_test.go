package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// multBinary multiplies C by D, leaving the product in B:C.
var multBinary = []byte{
	0x06, 0x00,       // mvi b 0
	0x1e, 0x09,       // mvi e 9
	0x79,             // mult0: mov a c
	0x1f,             // rar
	0x4f,             // mov c a
	0x1d,             // dcr e
	0xca, 0x15, 0x00, // jz done
	0x78,             // mov a b
	0xd2, 0x10, 0x00, // jnc mult1
	0x82,             // add d
	0x1f,             // mult1: rar
	0x47,             // mov b a
	0xc3, 0x04, 0x00, // jmp mult0
	0xc9,             // done: ret
}

var multCodes = []Code{
	MakeData8(MVI_B, 0),
	MakeData8(MVI_E, 9),
	MakeImplied(MOV_A_C),
	MakeImplied(RAR),
	MakeImplied(MOV_C_A),
	MakeImplied(DCR_E),
	MakeAddress(JZ, 21),
	MakeImplied(MOV_A_B),
	MakeAddress(JNC, 16),
	MakeImplied(ADD_D),
	MakeImplied(RAR),
	MakeImplied(MOV_B_A),
	MakeAddress(JMP, 4),
	MakeImplied(RET),
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	codes, err := Disassemble(multBinary)
	assert.NoError(err)
	assert.Equal(multCodes, codes)

	raws, err := DisassembleRaw(multBinary)
	assert.NoError(err)
	assert.Equal([]Raw{
		MVI_B, MVI_E, MOV_A_C, RAR, MOV_C_A, DCR_E, JZ,
		MOV_A_B, JNC, ADD_D, RAR, MOV_B_A, JMP, RET,
	}, raws)

	assert.Equal(multBinary, Codegen(codes))
}

func TestDisassemble_Empty(t *testing.T) {
	assert := assert.New(t)

	codes, err := Disassemble(nil)
	assert.NoError(err)
	assert.Empty(codes)

	raws, err := DisassembleRaw(nil)
	assert.NoError(err)
	assert.Empty(raws)

	assert.Empty(Codegen(nil))
}

func TestDisassemble_Truncated(t *testing.T) {
	for n := range 256 {
		raw := Raw(n)
		width := raw.Width()
		if width == 1 {
			continue
		}

		assert := assert.New(t)

		for have := 1; have < width; have++ {
			bin := make([]byte, have)
			bin[0] = byte(n)

			raws, err := DisassembleRaw(bin)
			assert.ErrorIs(err, ErrTruncated, raw.String())
			assert.Nil(raws)

			codes, err := Disassemble(bin)
			assert.ErrorIs(err, ErrTruncated, raw.String())
			assert.Nil(codes)

			var ierr ErrInsufficientBytes
			if assert.True(errors.As(err, &ierr)) {
				assert.Equal(0, ierr.Offset)
				assert.Equal(width-have, ierr.Missing)
			}
		}

		bin := make([]byte, width)
		bin[0] = byte(n)

		raws, err := DisassembleRaw(bin)
		assert.NoError(err)
		assert.Equal([]Raw{raw}, raws)

		codes, err := Disassemble(bin)
		assert.NoError(err, raw.String())
		assert.Len(codes, 1)
	}
}

func TestDisassemble_TruncatedLater(t *testing.T) {
	assert := assert.New(t)

	bin := []byte{byte(NOP), byte(MVI_A), 0x01, byte(LXI_B), 0x00}

	_, err := Disassemble(bin)
	var ierr ErrInsufficientBytes
	if assert.True(errors.As(err, &ierr)) {
		assert.Equal(3, ierr.Offset)
		assert.Equal(1, ierr.Missing)
	}

	_, err = DisassembleRaw(bin)
	assert.ErrorIs(err, ErrTruncated)

	_, err = Disassemble([]byte{byte(NOP), byte(CPI)})
	assert.ErrorIs(err, ErrTruncated)
}

func TestDecode_OutOfRange(t *testing.T) {
	table := [...]struct {
		bin []byte
		pc  int
	}{
		{nil, 0},
		{[]byte{}, 0},
		{[]byte{byte(MVI_A), 1}, 2},
		{[]byte{byte(NOP)}, 5},
		{[]byte{byte(NOP)}, -1},
	}

	for _, entry := range table {
		assert := assert.New(t)

		code, next, err := Decode(entry.bin, entry.pc)
		assert.Nil(code)
		assert.Equal(0, next)
		assert.ErrorIs(err, ErrTruncated)
		assert.Equal(ErrInsufficientBytes{Offset: entry.pc, Missing: 1}, err)
	}

	// The cursor returned for the last instruction is at the end of input.
	bin := []byte{byte(MVI_A), 1}
	_, next, err := Decode(bin, 0)
	assert.NoError(t, err)
	_, _, err = Decode(bin, next)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDisassemble_Reserved(t *testing.T) {
	assert := assert.New(t)

	codes, err := Disassemble(reservedBytes)
	assert.NoError(err)
	assert.Len(codes, len(reservedBytes))
	for _, code := range codes {
		assert.Equal(MakeImplied(NOP), code)
	}

	// Reserved bytes are lossy.
	assert.Equal(make([]byte, len(reservedBytes)), Codegen(codes))
}

func TestDisassemble_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	var bin []byte
	for n := range 256 {
		if Reserved(byte(n)) {
			continue
		}
		bin = append(bin, byte(n))
		for m := range Raw(n).Operands() {
			bin = append(bin, byte(n+m+1))
		}
	}

	codes, err := Disassemble(bin)
	assert.NoError(err)
	assert.Len(codes, 256-len(reservedBytes))
	assert.Equal(bin, Codegen(codes))

	again, err := Disassemble(Codegen(codes))
	assert.NoError(err)
	assert.Equal(codes, again)
}

func TestListing(t *testing.T) {
	assert := assert.New(t)

	lines, err := Listing(multBinary, 0x100)
	assert.NoError(err)
	assert.Len(lines, len(multCodes))

	assert.Equal("0100: 06 00     mvi b 0x00", lines[0].String())
	assert.Equal("0104: 79        mov a c", lines[2].String())
	assert.Equal("0108: ca 15 00  jz 0x0015", lines[6].String())
	assert.Equal(uint16(0x115), lines[13].Addr)
	assert.Equal([]byte{0xc9}, lines[13].Bytes)

	_, err = Listing([]byte{byte(JMP)}, 0)
	assert.ErrorIs(err, ErrTruncated)
}

func FuzzDisassemble(f *testing.F) {
	f.Add(multBinary)
	f.Add([]byte{})
	f.Add(reservedBytes)
	f.Add([]byte{byte(LXI_SP), 0xff})

	f.Fuzz(func(t *testing.T, bin []byte) {
		assert := assert.New(t)

		raws, rawErr := DisassembleRaw(bin)
		codes, err := Disassemble(bin)
		assert.Equal(rawErr, err)
		if err != nil {
			assert.ErrorIs(err, ErrTruncated)
			return
		}

		assert.Equal(len(raws), len(codes))
		for n, code := range codes {
			assert.Equal(raws[n], code.Raw())
		}

		// Only the reserved opcode bytes are lossy.
		expect := make([]byte, 0, len(bin))
		for pc := 0; pc < len(bin); {
			width := Raw(bin[pc]).Width()
			expect = append(expect, RawFrom(bin[pc]).Byte())
			expect = append(expect, bin[pc+1:pc+width]...)
			pc += width
		}
		assert.Equal(expect, Codegen(codes))
	})
}

func FuzzCodeRoundTrip(f *testing.F) {
	f.Add(byte(NOP), byte(0), byte(0))
	f.Add(byte(MVI_B), byte(0x12), byte(0))
	f.Add(byte(JMP), byte(0x34), byte(0x12))

	f.Fuzz(func(t *testing.T, op byte, lo byte, hi byte) {
		assert := assert.New(t)

		raw := RawFrom(op)
		code := makeCode(raw, []byte{lo, hi}[:raw.Operands()])
		bin := code.AppendTo(nil)
		assert.Len(bin, raw.Width())

		decoded, next, err := Decode(bin, 0)
		assert.NoError(err)
		assert.Equal(len(bin), next)
		assert.Equal(code, decoded)
	})
}
