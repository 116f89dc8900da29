package internal

import (
	"iter"
)

// IterSeqConcat yields every element of each sequence in turn.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqCount wraps a sequence, counting the elements consumed into n.
func IterSeqCount[T any](seq iter.Seq[T], n *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range seq {
			*n++
			if !yield(val) {
				return
			}
		}
	}
}
