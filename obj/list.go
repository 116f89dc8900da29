package obj

import (
	"iter"
)

// Predicate selects list elements.
type Predicate func(elem *Value) bool

// Nth returns element n of a proper list, starting at 0.
func Nth(list *Value, n uint) *Value {
	if n >= Length(list) {
		violation("nth", kindOf(list), ErrIndexRange)
	}

	cell := list
	for range n {
		cell = cell.c.Tail
	}
	return cell.c.Head
}

// PickRandom returns a uniformly chosen element of a non-empty list.
func PickRandom(list *Value, rnd Random) *Value {
	length := Length(list)
	if length == 0 {
		violation("pick_random", KIND_NONE, ErrIndexRange)
	}
	return Nth(list, rnd.Range(0, length-1))
}

// SplitIf destructively splits a list after each element matching pred.
// Matching elements are freed and appear in no sublist. The run before the
// first match is always the first sublist; empty runs are nil. A match at
// the end of the list does not produce a trailing empty sublist.
func SplitIf(list *Value, pred Predicate) (sublists []*Value) {
	expectList("split_if", list)

	start := list
	var prev *Value
	for cell := list; cell != nil; {
		next := cell.c.Tail
		if !pred(cell.c.Head) {
			prev = cell
			cell = next
			continue
		}

		if prev == nil {
			sublists = append(sublists, nil)
		} else {
			prev.c.Tail = nil
			sublists = append(sublists, start)
		}

		cell.c.Tail = nil
		cell.Free()

		start = next
		prev = nil
		cell = next
	}

	if start != nil || len(sublists) == 0 {
		sublists = append(sublists, start)
	}

	return
}

// DeleteIf destructively removes the elements matching pred, freeing the
// removed cells with their elements. It returns the new head of the list,
// which is nil if every element was removed.
func DeleteIf(list *Value, pred Predicate) *Value {
	expectList("delete_if", list)

	head := list
	var prev *Value
	for cell := list; cell != nil; {
		next := cell.c.Tail
		if pred(cell.c.Head) {
			if prev == nil {
				head = next
			} else {
				prev.c.Tail = next
			}
			cell.c.Tail = nil
			cell.Free()
		} else {
			prev = cell
		}
		cell = next
	}

	return head
}

// ListToBytes collects a proper list of Byte values.
func ListToBytes(list *Value) (array []uint8) {
	array = make([]uint8, 0, Length(list))
	for elem := range All(list) {
		array = append(array, elem.Byte())
	}
	return
}

// ListToWydes collects a proper list of Wyde values.
func ListToWydes(list *Value) (array []uint16) {
	array = make([]uint16, 0, Length(list))
	for elem := range All(list) {
		array = append(array, elem.Wyde())
	}
	return
}

// FromLines builds a list of CString values, one per non-empty line.
func FromLines(lines iter.Seq[string]) *Value {
	return ListOf(func(yield func(*Value) bool) {
		for line := range lines {
			if len(line) == 0 {
				continue
			}
			if !yield(NewCString(line)) {
				return
			}
		}
	})
}
