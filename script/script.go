// Package script evaluates Starlark expressions against values, so list
// elements can be selected from the command line.
package script

import (
	"errors"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/lispobj/obj"
	"github.com/ezrec/lispobj/translate"
)

var f = translate.From

var (
	ErrNotBool = errors.New(f("expression result is not a bool"))
)

// ErrExpression reports an expression that failed to parse or evaluate.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("$(%v) %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}

// Filter is a boolean Starlark expression over a list element, bound to
// the name `v`.
type Filter struct {
	Expr string

	// Err is the first evaluation error. Once set, Match returns false.
	Err error

	Evaluated int // Number of successful evaluations.
}

// NewFilter parses a Starlark expression.
func NewFilter(expr string) (filter *Filter, err error) {
	opts := syntax.FileOptions{}
	_, err = opts.Parse("expr", "rc="+expr+"\n", 0)
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	filter = &Filter{Expr: expr}
	return
}

// Eval evaluates the expression with `v` bound to a value.
func (filter *Filter) Eval(v *obj.Value) (rc starlark.Value, err error) {
	thread := starlark.Thread{Name: "filter"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"v": ToStarlark(v),
	}

	prog := "rc=" + filter.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrExpression{Expr: filter.Expr, Err: err}
		return
	}

	rc = dict["rc"]
	return
}

// Match is an obj.Predicate.
func (filter *Filter) Match(v *obj.Value) bool {
	if filter.Err != nil {
		return false
	}

	rc, err := filter.Eval(v)
	if err != nil {
		filter.Err = err
		return false
	}

	truth, ok := rc.(starlark.Bool)
	if !ok {
		filter.Err = &ErrExpression{Expr: filter.Expr, Err: ErrNotBool}
		return false
	}

	filter.Evaluated++
	return bool(truth)
}

// ToStarlark converts a value tree into Starlark values.
//
// Integers become int, Double float, Xmm bytes and CString string. Proper
// lists become a list, other pairs a (head, tail) tuple. Opaque values are
// their textual rendering. The terminator and KIND_NONE are None.
func ToStarlark(v *obj.Value) starlark.Value {
	switch v.Kind() {
	case obj.KIND_NONE:
		return starlark.None
	case obj.KIND_BYTE, obj.KIND_WYDE, obj.KIND_TETRA, obj.KIND_OCTA:
		return starlark.MakeUint64(obj.ZeroExtendToOcta(v))
	case obj.KIND_DOUBLE:
		return starlark.Float(v.Double())
	case obj.KIND_XMM:
		xmm := v.Xmm()
		return starlark.Bytes(xmm[:])
	case obj.KIND_CSTRING:
		return starlark.String(v.CString())
	case obj.KIND_CONS:
		if obj.Listp(v) {
			var elems []starlark.Value
			for elem := range obj.All(v) {
				elems = append(elems, ToStarlark(elem))
			}
			return starlark.NewList(elems)
		}
		return starlark.Tuple{ToStarlark(obj.Car(v)), ToStarlark(obj.Cdr(v))}
	case obj.KIND_OPAQUE:
		return starlark.String(v.String())
	}
	return starlark.None
}
