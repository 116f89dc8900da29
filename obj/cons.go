package obj

import (
	"iter"
)

// Cons creates a pair value owning head and tail.
func Cons(head, tail *Value) (v *Value) {
	v = &Value{
		kind: KIND_CONS,
		c:    &Pair{Head: head, Tail: tail},
	}
	return
}

// Consp is true for a Cons value.
func Consp(v *Value) bool {
	return kindOf(v) == KIND_CONS
}

// Car returns the head of a Cons value. The head is shared, not copied.
func Car(v *Value) *Value {
	v.expect("car", KIND_CONS)
	return v.c.Head
}

// Cdr returns the tail of a Cons value. The tail is shared, not copied.
func Cdr(v *Value) *Value {
	v.expect("cdr", KIND_CONS)
	return v.c.Tail
}

// SetCdr replaces the tail of a Cons value, returning the cell.
// The old tail is neither freed nor returned.
func SetCdr(cell *Value, tail *Value) *Value {
	cell.expect("setcdr", KIND_CONS)
	cell.c.Tail = tail
	return cell
}

// Listp is true for a proper list: nil, or a chain of Cons values ending
// in nil. Atoms and dotted pairs are not lists.
func Listp(v *Value) bool {
	for cell := v; cell != nil; cell = cell.c.Tail {
		if cell.kind != KIND_CONS {
			return false
		}
	}
	return true
}

// expectList panics unless v is a proper list.
func expectList(op string, v *Value) {
	if !Listp(v) {
		violation(op, kindOf(v), ErrNotList)
	}
}

// All returns an iterator over the elements of a proper list.
func All(list *Value) iter.Seq[*Value] {
	expectList("all", list)
	return func(yield func(elem *Value) bool) {
		for cell := list; cell != nil; cell = cell.c.Tail {
			if !yield(cell.c.Head) {
				return
			}
		}
	}
}

// Length counts the elements of a proper list.
func Length(list *Value) (n uint) {
	expectList("length", list)
	for cell := list; cell != nil; cell = cell.c.Tail {
		n++
	}
	return
}

// Last returns the final pair of a list.
func Last(list *Value) *Value {
	list.expect("last", KIND_CONS)
	cell := list
	for Consp(cell.c.Tail) {
		cell = cell.c.Tail
	}
	return cell
}

// Nconc destructively appends l2 to l1 by rewriting the tail of the last
// pair of l1. l1 may be nil, in which case l2 is returned. l2 must be a
// proper list.
func Nconc(l1, l2 *Value) *Value {
	expectList("nconc", l2)

	if l1 == nil {
		return l2
	}

	last := Last(l1)
	if last.c.Tail != nil {
		violation("nconc", kindOf(last.c.Tail), ErrTailOccupied)
	}
	SetCdr(last, l2)
	return l1
}

// List1 creates a one element list.
func List1(elem *Value) *Value {
	return Cons(elem, nil)
}

// AddToList appends one element to a list, returning the list.
func AddToList(list *Value, elem *Value) *Value {
	if list == nil {
		return List1(elem)
	}
	expectList("add_to_list", list)
	return Nconc(list, List1(elem))
}

// List builds a proper list of the given elements, in order.
func List(elems ...*Value) *Value {
	var head, tail *Value
	for _, elem := range elems {
		head, tail = appendCell(head, tail, elem)
	}
	return head
}

// ListOf builds a proper list from an element sequence.
func ListOf(elems iter.Seq[*Value]) *Value {
	var head, tail *Value
	for elem := range elems {
		head, tail = appendCell(head, tail, elem)
	}
	return head
}

// appendCell links a new cell after tail, tracking the list head.
func appendCell(head, tail, elem *Value) (*Value, *Value) {
	cell := List1(elem)
	if head == nil {
		return cell, cell
	}
	tail.c.Tail = cell
	return head, cell
}

// NTimes builds a list of n copies of an atom.
func NTimes(v *Value, n int) *Value {
	var head, tail *Value
	for range n {
		head, tail = appendCell(head, tail, v.Dup())
	}
	return head
}

// WydeNTimes builds a list of n Wyde values.
func WydeNTimes(value uint16, n int) *Value {
	return NTimes(NewWyde(value), n)
}

// TetraNTimes builds a list of n Tetra values.
func TetraNTimes(value uint32, n int) *Value {
	return NTimes(NewTetra(value), n)
}
