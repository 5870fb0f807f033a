package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(multSource, "\n")))
	require.NoError(t, err)

	table := [...]struct {
		addr   uint16
		lineno int
	}{
		{0, 2},
		{1, 2},
		{4, 4},
		{8, 8},
		{10, 8},
		{11, 9},
		{21, 15},
	}

	for _, entry := range table {
		op, ok := prog.Debug(entry.addr)
		if assert.True(ok, "addr %v", entry.addr) {
			assert.Equal(entry.lineno, op.LineNo, "addr %v", entry.addr)
		}
	}

	_, ok := prog.Debug(22)
	assert.False(ok)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(multSource, "\n")))
	require.NoError(t, err)

	var addrs []uint16
	var codes []Code
	for addr, code := range prog.Codes() {
		addrs = append(addrs, addr)
		codes = append(codes, code)
	}

	assert.Equal([]uint16{0, 2, 4, 5, 6, 7, 8, 11, 12, 15, 16, 17, 18, 21}, addrs)
	assert.Equal(multCodes, codes)

	// Early stop
	count := 0
	for range prog.Codes() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(3, count)
}
