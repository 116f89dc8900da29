package obj

// ZeroExtendToOcta returns any integer value widened to 64 bits.
func ZeroExtendToOcta(v *Value) uint64 {
	return v.integer("zero_extend_to_octa")
}

// ZeroExtend writes in, padded with zeros, to out as the requested kind.
// The kind must be an integer kind at least as wide as in.
func ZeroExtend(in *Value, kind Kind, out *Value) {
	value := in.integer("zero_extend")
	if !kind.Integer() || kind.bits() < in.kind.bits() {
		violation("zero_extend", kind, ErrExtendWidth)
	}
	out.setInteger(kind, value)
}

// SignExtend writes in, with its sign bit propagated, to out as the
// requested kind. The kind must be an integer kind strictly wider than in.
func SignExtend(in *Value, kind Kind, out *Value) {
	value := in.integer("sign_extend")
	if !kind.Integer() || kind.bits() <= in.kind.bits() {
		violation("sign_extend", kind, ErrExtendWidth)
	}

	var signed int64
	switch in.kind {
	case KIND_BYTE:
		signed = int64(int8(value))
	case KIND_WYDE:
		signed = int64(int16(value))
	case KIND_TETRA:
		signed = int64(int32(value))
	}

	out.setInteger(kind, uint64(signed))
}

// Truncate writes the low bits of in to out as the requested kind.
// The kind must be an integer kind no wider than in.
func Truncate(in *Value, kind Kind, out *Value) {
	value := in.integer("truncate")
	if !kind.Integer() || kind.bits() > in.kind.bits() {
		violation("truncate", kind, ErrExtendWidth)
	}
	out.setInteger(kind, value)
}

// MostSignificantBit returns the top bit of an integer value.
func MostSignificantBit(v *Value) int {
	value := v.integer("msb")
	return int(value>>(v.kind.bits()-1)) & 1
}

// SecondMostSignificantBit returns the bit below the top bit of an
// integer value.
func SecondMostSignificantBit(v *Value) int {
	value := v.integer("msb2")
	return int(value>>(v.kind.bits()-2)) & 1
}

// LowestByte returns the low 8 bits of an integer value.
func LowestByte(v *Value) uint8 {
	return uint8(v.integer("lowest_byte"))
}

// FourthBit returns bit 4 of the low byte of an integer value.
func FourthBit(v *Value) bool {
	return (LowestByte(v)>>4)&1 != 0
}
