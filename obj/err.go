package obj

import (
	"errors"

	"github.com/ezrec/lispobj/translate"
)

var f = translate.From

var (
	// Value contract violations
	ErrKindMismatch    = errors.New(f("kind mismatch"))
	ErrKindUnsupported = errors.New(f("kind unsupported"))
	ErrExtendWidth     = errors.New(f("extension width invalid"))
	ErrRegRange        = errors.New(f("value exceeds register width"))
	ErrWordSize        = errors.New(f("word size invalid"))

	// List contract violations
	ErrNotList      = errors.New(f("not a list"))
	ErrNotCons      = errors.New(f("not a cons"))
	ErrTailOccupied = errors.New(f("last pair tail occupied"))
	ErrIndexRange   = errors.New(f("index out of range"))
)

// ErrContract is the panic value of a contract violation.
type ErrContract struct {
	Op   string // Operation that detected the violation.
	Kind Kind   // Kind of the offending value.
	Err  error
}

func (err *ErrContract) Error() string {
	return f("%v: %v: %v", err.Op, err.Kind, err.Err)
}

func (err *ErrContract) Unwrap() error {
	return err.Err
}

// violation halts the caller with a contract violation.
func violation(op string, kind Kind, err error) {
	panic(&ErrContract{Op: op, Kind: kind, Err: err})
}

// kindOf is nil-safe; the terminator reports KIND_NONE.
func kindOf(v *Value) Kind {
	if v == nil {
		return KIND_NONE
	}
	return v.kind
}
