package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/i8080/io"
)

func isBranch(op byte) bool {
	switch op & 0xc7 {
	case 0xc0, 0xc2, 0xc4, 0xc7:
		return true
	}

	switch op {
	case 0xc3, 0xc9, 0xcd, 0xe9, 0xcb, 0xd9, 0xdd, 0xed, 0xfd:
		return true
	}

	return false
}

func FuzzExecute(f *testing.F) {
	f.Add(byte(NOP), byte(0), byte(0), byte(0), byte(0))
	f.Add(byte(DAA), byte(0), byte(0), byte(0x9b), byte(0))
	f.Add(byte(CALL), byte(0x34), byte(0x12), byte(0), byte(0xff))
	f.Add(byte(0xdd), byte(0x34), byte(0x12), byte(0), byte(0))
	f.Add(byte(POP_PSW), byte(0), byte(0), byte(0), byte(0))

	f.Fuzz(func(t *testing.T, op, lo, hi, a, flags byte) {
		assert := assert.New(t)

		mem := &io.Memory{}
		mem.Store(0x100, op)
		mem.Store(0x101, lo)
		mem.Store(0x102, hi)
		mem.StoreWord(0x2000, uint16(hi)<<8|uint16(lo))

		cpu := NewCpu(mem)
		cpu.Pc = 0x100
		cpu.Sp = 0x2000
		cpu.A = a
		cpu.SetFlags(flags)

		cpu.Step()

		assert.NotZero(cpu.Flags()&FLAG_ONE)
		assert.Zero(cpu.Flags() & 0x28)
		assert.GreaterOrEqual(cpu.Cycles, Raw(op).Cycles())
		assert.Equal(Raw(op) == HLT, cpu.Halted)

		if !isBranch(op) {
			assert.Equal(uint16(0x100+Raw(op).Width()), cpu.Pc, "%v", Raw(op))
		}
	})
}
