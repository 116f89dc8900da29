package obj

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEQL_Atoms(t *testing.T) {
	assert := assert.New(t)

	builders := []func() *Value{
		func() *Value { return NewByte(0x12) },
		func() *Value { return NewWyde(0x1234) },
		func() *Value { return NewTetra(0x12345678) },
		func() *Value { return NewOcta(0x123456789abcdef0) },
		func() *Value { return NewDouble(1.25) },
		func() *Value { return NewXmm([16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}) },
		func() *Value { return NewCString("same") },
	}

	for _, build := range builders {
		a := build()
		b := build()
		assert.True(EQL(a, a), a.String())
		assert.True(EQL(a, b), a.String())
	}

	assert.False(EQL(NewByte(1), NewByte(2)))
	assert.False(EQL(NewByte(1), NewWyde(1)))
	assert.False(EQL(NewTetra(1), NewOcta(1)))
	assert.False(EQL(NewCString("a"), NewCString("b")))
	assert.False(EQL(NewXmm([16]byte{1}), NewXmm([16]byte{2})))
	assert.False(EQL(NewDouble(math.NaN()), NewDouble(math.NaN())))

	assert.True(EQL(nil, nil))
	assert.False(EQL(nil, NewByte(0)))
	assert.False(EQL(NewByte(0), nil))
}

func TestEQL_Cons(t *testing.T) {
	assert := assert.New(t)

	a := List(NewTetra(1))
	b := List(NewTetra(1))

	assert.True(EQL(a, a))
	assert.False(EQL(a, b))

	// Pairs sharing head and tail are EQL.
	head := NewCString("shared")
	c := Cons(head, nil)
	d := Cons(head, nil)
	assert.True(EQL(c, d))
}

func TestEQL_Opaque(t *testing.T) {
	o := NewOpaque(&struct{}{}, nil, nil)

	assertViolation(t, ErrKindUnsupported, func() { EQL(o, o) })
	assertViolation(t, ErrKindUnsupported, func() { EQL(&Value{}, &Value{}) })
}
