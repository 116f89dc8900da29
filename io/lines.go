// Package io provides the text input used to build value lists: a line
// reader over an io.Reader, and newline trimming.
package io

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log"
	"strings"
)

// Lines reads an io.Reader as a sequence of text lines.
type Lines struct {
	Input        io.Reader // Source of the text.
	TrimNewlines bool      // If set, trailing CR and LF are removed.
	Verbose      bool      // If set, logs each line read.

	// Err is the first read error, other than io.EOF, seen by Receive.
	Err error

	lineNo int
	reader *bufio.Reader
}

// LineNo is the number of lines read so far.
func (ln *Lines) LineNo() int {
	return ln.lineNo
}

// Receive returns an iterator that yields the lines of the input in order.
// A final line without a newline is yielded as-is.
func (ln *Lines) Receive() iter.Seq[string] {
	return func(yield func(line string) bool) {
		if ln.Input == nil {
			ln.Err = ErrInputMissing
			return
		}
		if ln.reader == nil {
			ln.reader = bufio.NewReader(ln.Input)
		}

		for {
			line, err := ln.reader.ReadString('\n')
			if len(line) == 0 && err != nil {
				if !errors.Is(err, io.EOF) {
					ln.Err = &ErrLine{LineNo: ln.lineNo + 1, Err: err}
				}
				return
			}

			ln.lineNo++
			if ln.TrimNewlines {
				line = TrimNewlines(line)
			}
			if ln.Verbose {
				log.Printf("lines: %d: %q", ln.lineNo, line)
			}
			if !yield(line) {
				return
			}
		}
	}
}

// TrimNewlines removes all trailing CR and LF characters.
func TrimNewlines(line string) string {
	return strings.TrimRight(line, "\r\n")
}
