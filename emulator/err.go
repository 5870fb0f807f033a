package emulator

import (
	"errors"
	"fmt"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	ErrCycleLimit = errors.New(f("cycle limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint16
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc %v: %v", err.LineNo, fmt.Sprintf("%04x", err.Pc), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
