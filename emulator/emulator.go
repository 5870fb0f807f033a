// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/internal"
	"github.com/ezrec/i8080/io"
)

// I/O port assignments.
const (
	PORT_TAPE   = 0x01 // Tape (console) input and output.
	PORT_TEMP   = 0x02 // Temporary FIFO.
	PORT_RING   = 0x03 // Ring storage.
	PORT_ROM    = 0x04 // Read-only data.
	PORT_REWIND = 0x05 // Rewinds the port written to it.

	TEMP_SIZE = 4096 // Temporary FIFO capacity.
)

var _emulator_defines = map[string]string{
	"PORT_TAPE":   fmt.Sprintf("%v", PORT_TAPE),
	"PORT_TEMP":   fmt.Sprintf("%v", PORT_TEMP),
	"PORT_RING":   fmt.Sprintf("%v", PORT_RING),
	"PORT_ROM":    fmt.Sprintf("%v", PORT_ROM),
	"PORT_REWIND": fmt.Sprintf("%v", PORT_REWIND),
	"TEMP_SIZE":   fmt.Sprintf("%v", TEMP_SIZE),
}

// Emulator state. CPU + memory + IO ports.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Image  []byte // Binary image loaded on reset.
	Origin uint16 // Load and start address of the image.

	Memory io.Memory // Memory image and port map.

	Temporary io.Temporary // Temporary FIFO port.
	Tape      io.Tape      // Tape port.
	Ring      io.Ring      // Ring storage port.
	Rom       io.Rom       // ROM port.
	Rewinder  io.Rewinder  // Port rewind control.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{}
	emu.Cpu = cpu.NewCpu(&emu.Memory)

	emu.Temporary.Capacity = TEMP_SIZE
	emu.Rewinder.Memory = &emu.Memory

	emu.Memory.Ports[PORT_TAPE] = &emu.Tape
	emu.Memory.Ports[PORT_TEMP] = &emu.Temporary
	emu.Memory.Ports[PORT_RING] = &emu.Ring
	emu.Memory.Ports[PORT_ROM] = &emu.Rom
	emu.Memory.Ports[PORT_REWIND] = &emu.Rewinder

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Load sets an assembled program as the image to run.
func (emu *Emulator) Load(prog *cpu.Program) {
	emu.Program = prog
	emu.Image = prog.Binary()
	emu.Origin = 0
}

// LoadBinary sets a binary as the image to run, loaded and started at the
// origin.
func (emu *Emulator) LoadBinary(bin []byte, origin uint16) {
	emu.Program = nil
	emu.Image = bin
	emu.Origin = origin
}

// Reset the emulator state: clears the memory and CPU, rewinds the ports,
// and loads the image.
func (emu *Emulator) Reset() (err error) {
	emu.Memory.Reset()
	emu.Cpu.Reset()

	err = emu.Memory.LoadImage(emu.Origin, emu.Image)
	if err != nil {
		err = &ErrRuntime{Pc: emu.Origin, Err: err}
		return
	}

	emu.Cpu.Pc = emu.Origin

	return
}

// Ticks returns the total clock cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Cycles
}

// Code returns the instruction code at the program counter.
func (emu *Emulator) Code() cpu.Code {
	pc := emu.Cpu.Pc
	bin := []byte{
		emu.Memory.Load(pc),
		emu.Memory.Load(pc + 1),
		emu.Memory.Load(pc + 2),
	}

	code, _, _ := cpu.Decode(bin, 0)
	return code
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	op, ok := emu.Program.Debug(emu.Cpu.Pc)
	if !ok {
		return 0
	}

	return op.LineNo
}

// Tick executes a single instruction, or services an interrupt.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc

	emu.Cpu.Step()

	if emu.Memory.Fault != nil {
		err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: emu.Memory.Fault}
		emu.Memory.Fault = nil
		return
	}

	done = emu.Cpu.Halted
	return
}

// RunFor ticks the emulator until it halts. If maxCycles is positive and
// the CPU has run for at least that many cycles without halting,
// ErrCycleLimit is returned.
func (emu *Emulator) RunFor(maxCycles int) (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}

		if maxCycles > 0 && emu.Cpu.Cycles >= maxCycles {
			err = &ErrRuntime{LineNo: emu.LineNo(), Pc: emu.Cpu.Pc, Err: ErrCycleLimit}
			return
		}
	}
}
