package obj

// Pair is the head/tail cell of a Cons value.
type Pair struct {
	Head *Value // AKA car
	Tail *Value // AKA cdr
}

// Value is a tagged value object. The zero Value is KIND_NONE.
type Value struct {
	kind Kind

	u   uint64   // KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA
	d   float64  // KIND_DOUBLE
	xmm [16]byte // KIND_XMM
	s   string   // KIND_CSTRING
	c   *Pair    // KIND_CONS
	o   *Opaque  // KIND_OPAQUE
}

// Kind returns the kind of the value. The nil terminator is KIND_NONE.
func (v *Value) Kind() Kind {
	return kindOf(v)
}

// reset drops any payload, leaving the kind untouched.
func (v *Value) reset() {
	v.u = 0
	v.d = 0
	v.xmm = [16]byte{}
	v.s = ""
	v.c = nil
	v.o = nil
}

func (v *Value) setInteger(kind Kind, value uint64) {
	v.reset()
	v.kind = kind
	v.u = value & kind.mask()
}

// SetByte overwrites the value with a Byte.
func (v *Value) SetByte(value uint8) {
	v.setInteger(KIND_BYTE, uint64(value))
}

// SetWyde overwrites the value with a Wyde.
func (v *Value) SetWyde(value uint16) {
	v.setInteger(KIND_WYDE, uint64(value))
}

// SetTetra overwrites the value with a Tetra.
func (v *Value) SetTetra(value uint32) {
	v.setInteger(KIND_TETRA, uint64(value))
}

// SetOcta overwrites the value with an Octa.
func (v *Value) SetOcta(value uint64) {
	v.setInteger(KIND_OCTA, value)
}

// SetDouble overwrites the value with a Double.
func (v *Value) SetDouble(value float64) {
	v.reset()
	v.kind = KIND_DOUBLE
	v.d = value
}

// SetXmm overwrites the value with a copy of a 16 byte vector.
func (v *Value) SetXmm(value [16]byte) {
	v.reset()
	v.kind = KIND_XMM
	v.xmm = value
}

// SetCString overwrites the value with a CString.
func (v *Value) SetCString(value string) {
	v.reset()
	v.kind = KIND_CSTRING
	v.s = value
}

// SetTyped writes an integer or double into the value, selecting the
// payload by kind. Integers are truncated to the width of the kind.
func (v *Value) SetTyped(kind Kind, value uint64, double float64) {
	switch kind {
	case KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA:
		v.setInteger(kind, value)
	case KIND_DOUBLE:
		v.SetDouble(double)
	case KIND_NONE, KIND_XMM, KIND_CSTRING, KIND_CONS, KIND_OPAQUE:
		violation("set", kind, ErrKindUnsupported)
	default:
		violation("set", kind, ErrKindUnsupported)
	}
}

// NewByte creates a Byte value.
func NewByte(value uint8) (v *Value) {
	v = &Value{}
	v.SetByte(value)
	return
}

// NewWyde creates a Wyde value.
func NewWyde(value uint16) (v *Value) {
	v = &Value{}
	v.SetWyde(value)
	return
}

// NewTetra creates a Tetra value.
func NewTetra(value uint32) (v *Value) {
	v = &Value{}
	v.SetTetra(value)
	return
}

// NewOcta creates an Octa value.
func NewOcta(value uint64) (v *Value) {
	v = &Value{}
	v.SetOcta(value)
	return
}

// NewDouble creates a Double value.
func NewDouble(value float64) (v *Value) {
	v = &Value{}
	v.SetDouble(value)
	return
}

// NewXmm creates an Xmm value.
func NewXmm(value [16]byte) (v *Value) {
	v = &Value{}
	v.SetXmm(value)
	return
}

// NewCString creates a CString value.
func NewCString(value string) (v *Value) {
	v = &Value{}
	v.SetCString(value)
	return
}

// expect panics unless the value is of the given kind.
func (v *Value) expect(op string, kind Kind) {
	if kindOf(v) != kind {
		violation(op, kindOf(v), ErrKindMismatch)
	}
}

// Byte returns the payload of a Byte value.
func (v *Value) Byte() uint8 {
	v.expect("byte", KIND_BYTE)
	return uint8(v.u)
}

// Wyde returns the payload of a Wyde value.
func (v *Value) Wyde() uint16 {
	v.expect("wyde", KIND_WYDE)
	return uint16(v.u)
}

// Tetra returns the payload of a Tetra value.
func (v *Value) Tetra() uint32 {
	v.expect("tetra", KIND_TETRA)
	return uint32(v.u)
}

// Octa returns the payload of an Octa value.
func (v *Value) Octa() uint64 {
	v.expect("octa", KIND_OCTA)
	return v.u
}

// Double returns the payload of a Double value.
func (v *Value) Double() float64 {
	v.expect("double", KIND_DOUBLE)
	return v.d
}

// Xmm returns a copy of the payload of an Xmm value.
func (v *Value) Xmm() [16]byte {
	v.expect("xmm", KIND_XMM)
	return v.xmm
}

// CString returns the payload of a CString value.
func (v *Value) CString() string {
	v.expect("cstring", KIND_CSTRING)
	return v.s
}

// integer returns the payload of any integer kind.
func (v *Value) integer(op string) uint64 {
	if !kindOf(v).Integer() {
		violation(op, kindOf(v), ErrKindUnsupported)
	}
	return v.u
}

// IsZero is true if an integer value is zero.
func (v *Value) IsZero() bool {
	return v.integer("is_zero") == 0
}

// Width returns the width of the value in bits.
func (v *Value) Width() uint {
	switch kind := kindOf(v); kind {
	case KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA:
		return kind.bits()
	case KIND_XMM:
		return 16 * 8
	case KIND_NONE, KIND_DOUBLE, KIND_CSTRING, KIND_CONS, KIND_OPAQUE:
		violation("width", kind, ErrKindUnsupported)
	default:
		violation("width", kind, ErrKindUnsupported)
	}
	return 0
}

// Copy overwrites the value with a shallow copy of src.
// Cons and Opaque values cannot be copied.
func (v *Value) Copy(src *Value) {
	switch kind := kindOf(src); kind {
	case KIND_NONE:
		v.reset()
		v.kind = KIND_NONE
	case KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA:
		v.setInteger(kind, src.u)
	case KIND_DOUBLE:
		v.SetDouble(src.d)
	case KIND_XMM:
		v.SetXmm(src.xmm)
	case KIND_CSTRING:
		v.SetCString(src.s)
	case KIND_CONS, KIND_OPAQUE:
		violation("copy", kind, ErrKindUnsupported)
	default:
		violation("copy", kind, ErrKindUnsupported)
	}
}

// Dup allocates a shallow copy of the value.
func (v *Value) Dup() (dup *Value) {
	dup = &Value{}
	dup.Copy(v)
	return
}
