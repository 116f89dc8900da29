package obj

// Free releases everything the value owns: the pairs and elements of a Cons,
// and the foreign pointer of an Opaque through its release hook. The value
// is left as KIND_NONE. Freeing nil or a KIND_NONE value does nothing.
func (v *Value) Free() {
	if v == nil {
		return
	}

	switch v.kind {
	case KIND_CONS:
		// Iterate along the spine so long lists do not recurse per element.
		for cell := v; cell != nil; {
			pair := cell.c
			cell.reset()
			cell.kind = KIND_NONE
			pair.Head.Free()
			next := pair.Tail
			if kindOf(next) != KIND_CONS {
				next.Free()
				break
			}
			cell = next
		}
	case KIND_OPAQUE:
		o := v.o
		v.reset()
		v.kind = KIND_NONE
		o.release()
	case KIND_NONE, KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA,
		KIND_DOUBLE, KIND_XMM, KIND_CSTRING:
		v.reset()
		v.kind = KIND_NONE
	default:
		violation("free", v.kind, ErrKindUnsupported)
	}
}

// FreeSpine releases only the pairs of a proper list. The elements are left
// untouched, for when they are owned elsewhere.
func FreeSpine(list *Value) {
	if !Listp(list) {
		violation("free_spine", kindOf(list), ErrNotList)
	}

	for cell := list; cell != nil; {
		next := cell.c.Tail
		cell.reset()
		cell.kind = KIND_NONE
		cell = next
	}
}
