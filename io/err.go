package io

import (
	"errors"

	"github.com/ezrec/lispobj/translate"
)

var f = translate.From

var (
	// Line reader errors
	ErrInputMissing = errors.New(f("input missing"))
)

// ErrLine indicates the line where reading failed.
type ErrLine struct {
	LineNo int
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
