package obj

import (
	"fmt"
	"io"
	"reflect"

	"github.com/ezrec/lispobj/strbuf"
)

// Sink is the growable text buffer values are rendered into.
type Sink interface {
	AddStr(s string)
	AddF(format string, args ...any)
}

// textSink is a Sink over a writer.
type textSink struct {
	w io.Writer
}

func (ts textSink) AddStr(s string) {
	io.WriteString(ts.w, s)
}

func (ts textSink) AddF(format string, args ...any) {
	fmt.Fprintf(ts.w, format, args...)
}

// Dump renders a value tree into sb.
//
// Proper lists render as (a b c), other pairs as (head tail). Integers are
// hexadecimal, Doubles fixed point, Xmm a 0x-prefixed dump of its 16 bytes,
// and CStrings are quoted. The nil terminator renders as NULL.
func Dump(sb Sink, v *Value) {
	if v == nil {
		sb.AddStr("NULL")
		return
	}

	if Listp(v) {
		sb.AddStr("(")
		for cell := v; cell != nil; cell = cell.c.Tail {
			Dump(sb, cell.c.Head)
			if cell.c.Tail != nil {
				sb.AddStr(" ")
			}
		}
		sb.AddStr(")")
		return
	}

	switch v.kind {
	case KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA:
		sb.AddF("0x%x", v.u)
	case KIND_DOUBLE:
		sb.AddF("%f", v.d)
	case KIND_XMM:
		sb.AddF("0x%X", v.xmm[:])
	case KIND_CSTRING:
		sb.AddF("\"%s\"", v.s)
	case KIND_CONS:
		sb.AddStr("(")
		Dump(sb, v.c.Head)
		sb.AddStr(" ")
		Dump(sb, v.c.Tail)
		sb.AddStr(")")
	case KIND_OPAQUE:
		switch {
		case v.o.Dump != nil:
			v.o.Dump(sb, v.o.Ptr)
		case pointerLike(v.o.Ptr):
			sb.AddF("opaque_%p", v.o.Ptr)
		default:
			sb.AddF("opaque_<%T>", v.o.Ptr)
		}
	default:
		violation("dump", v.kind, ErrKindUnsupported)
	}
}

// Print renders a value tree to w.
func Print(w io.Writer, v *Value) {
	Dump(textSink{w: w}, v)
}

// PrintStrings writes each CString of a list on its own line.
func PrintStrings(w io.Writer, list *Value) {
	for elem := range All(list) {
		fmt.Fprintln(w, elem.CString())
	}
}

// String renders the value tree.
func (v *Value) String() string {
	var sb strbuf.Buffer
	Dump(&sb, v)
	return sb.String()
}

// pointerLike reports whether ptr can be formatted with %p.
func pointerLike(ptr any) bool {
	switch reflect.ValueOf(ptr).Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return true
	}
	return false
}
