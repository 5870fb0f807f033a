package cpu

import (
	"errors"
	"strings"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrLabelRedefined          = errors.New(f("label redefined"))
	ErrLabelEmpty              = errors.New(f("label empty"))
	ErrLabelUnresolved         = errors.New(f("label unresolved"))
	ErrMnemonicUnknown         = errors.New(f("mnemonic unknown"))
	ErrOperandUnknown          = errors.New(f("operand unknown"))
	ErrOperandMissing          = errors.New(f("operand missing"))
	ErrLiteralMalformed        = errors.New(f("literal malformed"))
	ErrProgramCounterUnderflow = errors.New(f("program counter underflow"))
	ErrProgramCounterOverflow  = errors.New(f("program counter overflow"))

	// Decoder errors
	ErrTruncated = errors.New(f("instruction truncated"))
)

// ErrInsufficientBytes indicates an instruction that extends past the end of
// the binary.
type ErrInsufficientBytes struct {
	Offset  int // Offset of the truncated instruction.
	Missing int // Number of missing trailing bytes.
}

func (err ErrInsufficientBytes) Error() string {
	return f("offset %v: expected %v more bytes", err.Offset, err.Missing)
}

func (err ErrInsufficientBytes) Is(target error) bool {
	return target == ErrTruncated
}

// ErrLabel names the label involved in a label error.
type ErrLabel struct {
	Label string
	Err   error
}

func (err ErrLabel) Error() string {
	return f("label '%v' %v", err.Label, err.Err)
}

func (err ErrLabel) Unwrap() error {
	return err.Err
}

// ErrParseNumber indicates a word that is not a number of the required size.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrParseNumber) Unwrap() error {
	return ErrLiteralMalformed
}

// ErrSyntax locates an assembler error in the source text.
type ErrSyntax struct {
	LineNo int
	Word   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Word, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrAssembly collects every error found during an assembly pass.
type ErrAssembly struct {
	Errs []error
}

func (err *ErrAssembly) Error() string {
	text := make([]string, len(err.Errs))
	for n, e := range err.Errs {
		text[n] = e.Error()
	}
	return strings.Join(text, "\n")
}

func (err *ErrAssembly) Unwrap() []error {
	return err.Errs
}
