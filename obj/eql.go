package obj

// EQL compares two values by kind and payload. Cons values are equal only
// when they share the same head and tail values; two separately built lists
// with the same contents are not EQL. Opaque values cannot be compared.
func EQL(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA:
		return a.u == b.u
	case KIND_DOUBLE:
		return a.d == b.d
	case KIND_XMM:
		return a.xmm == b.xmm
	case KIND_CSTRING:
		return a.s == b.s
	case KIND_CONS:
		return a.c.Head == b.c.Head && a.c.Tail == b.c.Tail
	case KIND_NONE, KIND_OPAQUE:
		violation("eql", a.kind, ErrKindUnsupported)
	default:
		violation("eql", a.kind, ErrKindUnsupported)
	}
	return false
}
