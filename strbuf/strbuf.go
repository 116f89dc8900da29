// Package strbuf implements a growable string buffer, used as an output
// sink while constructing text.
package strbuf

import (
	"fmt"
	"io"
	"strings"
)

// Buffer is a growable string buffer. The zero Buffer is empty and ready
// to use.
type Buffer struct {
	sb strings.Builder
}

// Init empties the buffer and reserves room for size bytes.
func (buf *Buffer) Init(size int) {
	buf.sb.Reset()
	buf.sb.Grow(size)
}

// Deinit releases the buffer storage.
func (buf *Buffer) Deinit() {
	buf.sb.Reset()
}

// Grow reserves room for size more bytes.
func (buf *Buffer) Grow(size int) {
	buf.sb.Grow(size)
}

// AddStr appends a string.
func (buf *Buffer) AddStr(s string) {
	buf.sb.WriteString(s)
}

// AddC appends a single byte.
func (buf *Buffer) AddC(c byte) {
	buf.sb.WriteByte(c)
}

// AddF appends Sprintf() formatted text.
func (buf *Buffer) AddF(format string, args ...any) {
	fmt.Fprintf(&buf.sb, format, args...)
}

// Len is the length of the buffered text.
func (buf *Buffer) Len() int {
	return buf.sb.Len()
}

// String returns the buffered text.
func (buf *Buffer) String() string {
	return buf.sb.String()
}

// Puts writes the buffered text and a newline to w.
func (buf *Buffer) Puts(w io.Writer) (err error) {
	_, err = io.WriteString(w, buf.sb.String()+"\n")
	return
}
