package obj

// Kind is the payload selector of a Value.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_NONE    = Kind(0) // none
	KIND_BYTE    = Kind(1) // byte
	KIND_WYDE    = Kind(2) // wyde
	KIND_TETRA   = Kind(3) // tetra
	KIND_OCTA    = Kind(4) // octa
	KIND_DOUBLE  = Kind(5) // double
	KIND_XMM     = Kind(6) // xmm
	KIND_CSTRING = Kind(7) // cstring
	KIND_CONS    = Kind(8) // cons
	KIND_OPAQUE  = Kind(9) // opaque
)

// Integer returns true for the fixed width integer kinds.
func (k Kind) Integer() bool {
	switch k {
	case KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA:
		return true
	}
	return false
}

// Numeric returns true for the integer kinds and KIND_DOUBLE.
func (k Kind) Numeric() bool {
	return k.Integer() || k == KIND_DOUBLE
}

// bits returns the width of an integer kind, or 0.
func (k Kind) bits() uint {
	switch k {
	case KIND_BYTE:
		return 8
	case KIND_WYDE:
		return 16
	case KIND_TETRA:
		return 32
	case KIND_OCTA:
		return 64
	}
	return 0
}

// mask returns the all-ones value of an integer kind.
func (k Kind) mask() uint64 {
	switch k {
	case KIND_BYTE:
		return 0xff
	case KIND_WYDE:
		return 0xffff
	case KIND_TETRA:
		return 0xffffffff
	case KIND_OCTA:
		return 0xffffffffffffffff
	}
	return 0
}
