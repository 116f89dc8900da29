package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroExtend_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	wide := &Value{}
	back := &Value{}

	for n := range 0x100 {
		b := NewByte(uint8(n))
		for _, kind := range []Kind{KIND_BYTE, KIND_WYDE, KIND_TETRA, KIND_OCTA} {
			ZeroExtend(b, kind, wide)
			assert.Equal(kind, wide.Kind())
			assert.Equal(uint64(n), ZeroExtendToOcta(wide))
			Truncate(wide, KIND_BYTE, back)
			assert.Equal(uint8(n), back.Byte())
		}
	}

	for n := range 0x10000 {
		w := NewWyde(uint16(n))
		ZeroExtend(w, KIND_OCTA, wide)
		Truncate(wide, KIND_WYDE, back)
		assert.Equal(uint16(n), back.Wyde())
	}

	for _, tb := range []uint32{0, 1, 0x7fffffff, 0x80000000, 0xdeadbeef, 0xffffffff} {
		ZeroExtend(NewTetra(tb), KIND_OCTA, wide)
		assert.Equal(uint64(tb), wide.Octa())
		Truncate(wide, KIND_TETRA, back)
		assert.Equal(tb, back.Tetra())
	}
}

func TestSignExtend_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	wide := &Value{}
	back := &Value{}

	for n := range 0x100 {
		b := NewByte(uint8(n))
		for _, kind := range []Kind{KIND_WYDE, KIND_TETRA, KIND_OCTA} {
			SignExtend(b, kind, wide)
			assert.Equal(uint64(int64(int8(n)))&kind.mask(), ZeroExtendToOcta(wide))
			mask := &Value{}
			mask.SetTyped(kind, 0xff, 0)
			And(wide, mask, back)
			assert.Equal(uint64(n), ZeroExtendToOcta(back))
		}
	}

	for n := range 0x10000 {
		SignExtend(NewWyde(uint16(n)), KIND_TETRA, wide)
		assert.Equal(uint32(int32(int16(n))), wide.Tetra())
		Truncate(wide, KIND_WYDE, back)
		assert.Equal(uint16(n), back.Wyde())
	}

	for _, tb := range []uint32{0, 1, 0x7fffffff, 0x80000000, 0xffffffff} {
		SignExtend(NewTetra(tb), KIND_OCTA, wide)
		assert.Equal(uint64(int64(int32(tb))), wide.Octa())
		And(wide, NewOcta(0xffffffff), back)
		assert.Equal(uint64(tb), back.Octa())
	}
}

func TestExtend_Invalid(t *testing.T) {
	out := &Value{}

	assertViolation(t, ErrExtendWidth, func() { SignExtend(NewWyde(1), KIND_WYDE, out) })
	assertViolation(t, ErrExtendWidth, func() { SignExtend(NewTetra(1), KIND_BYTE, out) })
	assertViolation(t, ErrExtendWidth, func() { SignExtend(NewOcta(1), KIND_OCTA, out) })
	assertViolation(t, ErrExtendWidth, func() { SignExtend(NewByte(1), KIND_DOUBLE, out) })
	assertViolation(t, ErrExtendWidth, func() { ZeroExtend(NewTetra(1), KIND_WYDE, out) })
	assertViolation(t, ErrExtendWidth, func() { Truncate(NewByte(1), KIND_TETRA, out) })
	assertViolation(t, ErrKindUnsupported, func() { ZeroExtend(NewDouble(1), KIND_OCTA, out) })
	assertViolation(t, ErrKindUnsupported, func() { ZeroExtendToOcta(NewCString("1")) })
}

func TestSignificantBits(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		value *Value
		msb   int
		msb2  int
	}){
		{NewOcta(0x8000000000000000), 1, 0},
		{NewOcta(0x4000000000000000), 0, 1},
		{NewTetra(0xc0000000), 1, 1},
		{NewTetra(0x3fffffff), 0, 0},
		{NewWyde(0x8000), 1, 0},
		{NewWyde(0x4000), 0, 1},
		{NewByte(0x80), 1, 0},
		{NewByte(0x7f), 0, 1},
	}

	for _, entry := range table {
		assert.Equal(entry.msb, MostSignificantBit(entry.value), entry.value.String())
		assert.Equal(entry.msb2, SecondMostSignificantBit(entry.value), entry.value.String())
	}

	assertViolation(t, ErrKindUnsupported, func() { MostSignificantBit(NewDouble(-1)) })
}

func TestLowestByte(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0xef), LowestByte(NewOcta(0x1234567890abcdef)))
	assert.Equal(uint8(0x78), LowestByte(NewTetra(0x12345678)))
	assert.Equal(uint8(0x34), LowestByte(NewWyde(0x1234)))
	assert.Equal(uint8(0x12), LowestByte(NewByte(0x12)))

	assert.True(FourthBit(NewByte(0x10)))
	assert.False(FourthBit(NewByte(0x0f)))
	assert.True(FourthBit(NewOcta(0xff10)))
	assert.False(FourthBit(NewTetra(0x1000)))
}
