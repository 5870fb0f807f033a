// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/ezrec/i8080/cpu"
	"github.com/ezrec/i8080/emulator"
	"github.com/ezrec/i8080/internal"
	"github.com/ezrec/i8080/preproc"
)

// sourceOptions are the flags shared by commands that read assembly.
type sourceOptions struct {
	preprocess bool
	defines    []string
	verbose    bool
}

func (opts *sourceOptions) addFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&opts.preprocess, "preprocess", "p", false, "Run the macro preprocessor first")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "Predefine NAME=VALUE for the preprocessor")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
}

// assemble reads, optionally preprocesses, and assembles a source file.
func (opts *sourceOptions) assemble(path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: opts.verbose}

	if !opts.preprocess {
		prog, err = asm.Parse(inf)
		return
	}

	pp := &preproc.Preprocessor{Verbose: opts.verbose}
	pp.PredefineAll(emulator.NewEmulator().Defines())
	for _, define := range opts.defines {
		name, value, _ := strings.Cut(define, "=")
		if len(value) == 0 {
			value = "1"
		}
		pp.Predefine(name, value)
	}

	text, err := pp.Process(inf)
	if err != nil {
		return
	}

	prog, err = asm.Parse(strings.NewReader(text))
	return
}

// errReported marks an error already logged by report.
var errReported = errors.New("reported")

// report logs every error collected by the assembler, or the error itself.
func report(path string, err error) error {
	var aerr *cpu.ErrAssembly
	if errors.As(err, &aerr) {
		for _, each := range aerr.Errs {
			log.Printf("%v: %v", path, each)
		}
	} else {
		log.Printf("%v: %v", path, err)
	}

	return errReported
}

// crlfWriter expands newlines for a terminal in raw mode.
type crlfWriter struct {
	w *os.File
}

func (cw crlfWriter) Write(data []byte) (n int, err error) {
	_, err = cw.w.Write(bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n")))
	if err == nil {
		n = len(data)
	}
	return
}

func asmCommand() *cobra.Command {
	var opts sourceOptions
	var output string
	var listing bool

	cmd := &cobra.Command{
		Use:   "asm [source.s]",
		Short: "Assemble 8080 source to a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			prog, err := opts.assemble(args[0])
			if err != nil {
				err = report(args[0], err)
				return
			}

			bin := prog.Binary()
			err = os.WriteFile(output, bin, 0o644)
			if err != nil {
				return
			}

			if listing {
				lines, _ := cpu.Listing(bin, 0)
				for _, line := range lines {
					fmt.Println(line)
				}
			}

			return
		},
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "out.bin", "Binary output file")
	cmd.Flags().BoolVarP(&listing, "listing", "l", false, "Print a listing of the binary")

	return cmd
}

func disCommand() *cobra.Command {
	var raw bool
	var origin uint16

	cmd := &cobra.Command{
		Use:   "dis [image.bin]",
		Short: "Disassemble a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			bin, err := os.ReadFile(args[0])
			if err != nil {
				return
			}

			if raw {
				var raws []cpu.Raw
				raws, err = cpu.DisassembleRaw(bin)
				for _, each := range raws {
					fmt.Println(each)
				}
				return
			}

			lines, err := cpu.Listing(bin, origin)
			for _, line := range lines {
				fmt.Println(line)
			}
			return
		},
	}

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Print raw opcode tags only")
	cmd.Flags().Uint16Var(&origin, "origin", 0, "Load address of the image")

	return cmd
}

func runCommand() *cobra.Command {
	var opts sourceOptions
	var binary bool
	var origin uint16
	var maxCycles int
	var ring string
	var rom string

	cmd := &cobra.Command{
		Use:   "run [source.s|image.bin]",
		Short: "Execute a program with the tape on stdin and stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			emu := emulator.NewEmulator()
			emu.Verbose = opts.verbose

			if binary {
				var bin []byte
				bin, err = os.ReadFile(args[0])
				if err != nil {
					return
				}
				emu.LoadBinary(bin, origin)
			} else {
				var prog *cpu.Program
				prog, err = opts.assemble(args[0])
				if err != nil {
					err = report(args[0], err)
					return
				}
				emu.Load(prog)
			}

			if len(rom) != 0 {
				emu.Rom.Data, err = os.ReadFile(rom)
				if err != nil {
					return
				}
			}

			err = emu.Reset()
			if err != nil {
				return
			}

			if len(ring) != 0 {
				var inf *os.File
				inf, err = os.Open(ring)
				if err == nil {
					err = emu.Ring.Unmarshal(inf)
					inf.Close()
				}
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					return
				}
			}

			emu.Tape.Input = os.Stdin
			emu.Tape.Output = os.Stdout

			fd := int(os.Stdin.Fd())
			if term.IsTerminal(fd) {
				var state *term.State
				state, err = term.MakeRaw(fd)
				if err != nil {
					return
				}
				defer term.Restore(fd, state)
				emu.Tape.Output = crlfWriter{w: os.Stdout}
			}

			err = emu.RunFor(maxCycles)
			if err != nil {
				return
			}

			if len(ring) != 0 {
				var ouf *os.File
				ouf, err = os.Create(ring)
				if err != nil {
					return
				}
				defer ouf.Close()
				err = emu.Ring.Marshal(ouf)
			}

			return
		},
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "Input is a binary image")
	cmd.Flags().Uint16Var(&origin, "origin", 0, "Load address of a binary image")
	cmd.Flags().IntVar(&maxCycles, "max-cycles", 0, "Stop after this many cycles (0 = unlimited)")
	cmd.Flags().StringVar(&ring, "ring", "", "Ring port backing file")
	cmd.Flags().StringVar(&rom, "rom", "", "ROM port contents")

	return cmd
}

func definesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "defines",
		Short: "List the symbols predefined for the preprocessor",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for name, value := range internal.IterSeq2Sorted(emulator.NewEmulator().Defines()) {
				fmt.Printf("%-12s %v\n", name, value)
			}
		},
	}
}

func main() {
	log.SetFlags(0)

	rootCmd := &cobra.Command{
		Use:           "i8080",
		Short:         "Intel 8080 assembler, disassembler and emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(asmCommand(), disCommand(), runCommand(), definesCommand())

	err := rootCmd.Execute()
	if err != nil {
		if !errors.Is(err, errReported) {
			log.Printf("%v: %v", rootCmd.Name(), err)
		}
		os.Exit(1)
	}
}
