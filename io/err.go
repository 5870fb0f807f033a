package io

import (
	"errors"

	"github.com/ezrec/i8080/translate"
)

var f = translate.From

var (
	// Port errors
	ErrPortFull     = errors.New(f("port full"))
	ErrPortReadOnly = errors.New(f("port read only"))

	// Memory errors
	ErrImageOverflow = errors.New(f("image overflows memory"))
)

// ErrPort indicates a failed transfer on an I/O port.
type ErrPort struct {
	Port byte
	Err  error
}

func (err ErrPort) Error() string {
	return f("port 0x%02x: %v", err.Port, err.Err)
}

func (err ErrPort) Unwrap() error {
	return err.Err
}
