package emulator

import (
	"bytes"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/io"
	"github.com/ezrec/i8080/preproc"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.Equal(&emu.Tape, emu.Memory.Ports[PORT_TAPE])
	assert.Equal(TEMP_SIZE, emu.Temporary.Capacity)

	defines := maps.Collect(emu.Defines())
	assert.Equal("1", defines["PORT_TAPE"])
	assert.Equal("0x0008", defines["RST_1"])
}

func assemble(t *testing.T, program []string) (prog *cpu.Program) {
	asm := &cpu.Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	require.NoError(t, err)
	return
}

func doRun(emu *Emulator, program []string, input []byte, t *testing.T) (output []byte) {
	assert := assert.New(t)

	emu.Load(assemble(t, program))

	err := emu.Reset()
	assert.NoError(err)

	emu.Tape.Input = bytes.NewReader(input)
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	err = emu.RunFor(100000)
	assert.NoError(err)
	assert.True(emu.Cpu.Halted)

	output = tape_output.Bytes()
	return
}

func TestEmulator_Programs(t *testing.T) {
	table := [...]struct {
		name    string
		program []string
		rom     []byte
		input   string
		output  []byte
	}{
		{
			name: "hello",
			program: []string{
				"mvi a 72",
				"out 1",
				"mvi a 105",
				"out 1",
				"hlt",
			},
			output: []byte("Hi"),
		},
		{
			name: "echo",
			program: []string{
				"loop: in 1",
				"  cpi 0xff",
				"  jz done",
				"  out 1",
				"  jmp loop",
				"done: hlt",
			},
			input:  "echo",
			output: []byte("echo"),
		},
		{
			name: "temporary",
			program: []string{
				"mvi a 5",
				"out 2",
				"mvi a 6",
				"out 2",
				"in 2",
				"mov b a",
				"in 2",
				"add b",
				"out 1",
				"hlt",
			},
			output: []byte{11},
		},
		{
			name: "rom rewind",
			program: []string{
				"in 4",
				"mov b a",
				"mvi a 4",
				"out 5",
				"in 4",
				"add b",
				"out 1",
				"in 4",
				"out 1",
				"hlt",
			},
			rom:    []byte{7},
			output: []byte{14, 0xff},
		},
		{
			name: "subroutine",
			program: []string{
				"  lxi sp 0x2000",
				"  mvi c 6",
				"  mvi d 7",
				"  call mult",
				"  mov a c",
				"  out 1",
				"  hlt",
				"mult: mvi b 0",
				"  mvi e 9",
				"mult0: mov a c",
				"  rar",
				"  mov c a",
				"  dcr e",
				"  jz done",
				"  mov a b",
				"  jnc mult1",
				"  add d",
				"mult1: rar",
				"  mov b a",
				"  jmp mult0",
				"done: ret",
			},
			output: []byte{42},
		},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			emu := NewEmulator()
			emu.Rom.Data = entry.rom
			output := doRun(emu, entry.program, []byte(entry.input), t)
			assert.Equal(entry.output, output)
		})
	}
}

func TestEmulator_Ring(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Ring.Unmarshal(strings.NewReader("ab"))
	assert.NoError(err)

	doRun(emu, []string{
		"in 3",
		"mov b a",
		"in 3",
		"add b",
		"out 3",
		"hlt",
	}, nil, t)

	var out bytes.Buffer
	err = emu.Ring.Marshal(&out)
	assert.NoError(err)
	assert.Equal([]byte{'a', 'b', 'a' + 'b'}, out.Bytes())
}

func TestEmulator_LineNo(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; comment",
		"start: mvi a 1",
		"",
		"  inr a",
		"  hlt",
	}

	emu := NewEmulator()
	emu.Load(assemble(t, program))
	assert.NoError(emu.Reset())

	for _, lineno := range []int{2, 4, 5} {
		assert.Equal(lineno, emu.LineNo())
		done, err := emu.Tick()
		assert.NoError(err)
		assert.Equal(lineno == 5, done)
	}

	assert.Equal(byte(2), emu.Cpu.A)
	assert.Equal(7+5+7, emu.Ticks())

	// Binaries have no listing.
	emu.LoadBinary([]byte{byte(cpu.HLT)}, 0x100)
	assert.NoError(emu.Reset())
	assert.Equal(0, emu.LineNo())
	assert.Equal(uint16(0x100), emu.Cpu.Pc)
	assert.Equal(cpu.MakeImplied(cpu.HLT), emu.Code())
}

func TestEmulator_Code(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load(assemble(t, []string{"jmp 0x1234"}))
	assert.NoError(emu.Reset())

	assert.Equal(cpu.MakeAddress(cpu.JMP, 0x1234), emu.Code())
}

func TestEmulator_Errors(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	// Image overflow
	emu.LoadBinary([]byte{0, 0, 0}, 0xfffe)
	err := emu.Reset()
	assert.ErrorIs(err, io.ErrImageOverflow)

	// Port fault
	emu.Load(assemble(t, []string{"nop", "out 4", "hlt"}))
	assert.NoError(emu.Reset())
	err = emu.RunFor(0)
	assert.ErrorIs(err, io.ErrPortReadOnly)
	var rerr *ErrRuntime
	if assert.ErrorAs(err, &rerr) {
		assert.Equal(2, rerr.LineNo)
		assert.Equal(uint16(1), rerr.Pc)
	}

	// Cycle limit
	emu.Load(assemble(t, []string{"loop: jmp loop"}))
	assert.NoError(emu.Reset())
	err = emu.RunFor(100)
	assert.ErrorIs(err, ErrCycleLimit)
	assert.GreaterOrEqual(emu.Ticks(), 100)
	assert.False(emu.Cpu.Halted)
}

func TestEmulator_Interrupt(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Load(assemble(t, []string{
		"  jmp start",
		"  org 8",
		"  mvi a 0x55",
		"  out 1",
		"  hlt",
		"start: lxi sp 0x1000",
		"  ei",
		"wait: jmp wait",
	}))
	assert.NoError(emu.Reset())

	output := &bytes.Buffer{}
	emu.Tape.Output = output

	for range 3 {
		_, err := emu.Tick()
		assert.NoError(err)
	}
	assert.True(emu.Cpu.InterruptEnable)

	emu.Interrupt(byte(cpu.RST_1))
	assert.NoError(emu.RunFor(1000))

	assert.Equal([]byte{0x55}, output.Bytes())
	assert.False(emu.Cpu.InterruptEnable)
	assert.Equal(uint16(0x0ffe), emu.Cpu.Sp)
	assert.Equal(emu.Program.Labels["wait"], emu.Cpu.Peek())
}

func TestEmulator_Preprocess(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	pp := &preproc.Preprocessor{}
	pp.PredefineAll(emu.Defines())
	text, err := pp.Process(strings.NewReader(strings.Join([]string{
		".macro putc c",
		"  mvi a c",
		"  out PORT_TAPE",
		".endm",
		"putc 'o'",
		"putc 'k'",
		"hlt",
	}, "\n")))
	require.NoError(t, err)

	output := doRun(emu, strings.Split(text, "\n"), nil, t)
	assert.Equal("ok", string(output))
}
