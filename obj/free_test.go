package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type resource struct {
	released int
}

func (r *resource) release(ptr any) {
	ptr.(*resource).released++
}

func TestFree_Opaque(t *testing.T) {
	assert := assert.New(t)

	res := &resource{}
	o := NewOpaque(res, nil, res.release)
	assert.True(o.IsOpaque())
	assert.Same(res, o.Unpack())
	assert.Same(res, UnpackAs[*resource](o))

	o.Free()
	assert.Equal(1, res.released)
	assert.Equal(KIND_NONE, o.Kind())

	// A second free does not release again.
	o.Free()
	assert.Equal(1, res.released)
}

func TestFree_OpaqueNoRelease(t *testing.T) {
	assert := assert.New(t)

	o := NewOpaque(&resource{}, nil, nil)
	assert.NotPanics(func() { o.Free() })
	assert.False(o.IsOpaque())
}

func TestUnpackAs_Mismatch(t *testing.T) {
	o := NewOpaque("a string", nil, nil)
	assertViolation(t, ErrKindMismatch, func() { UnpackAs[*resource](o) })
}

func TestFree_List(t *testing.T) {
	assert := assert.New(t)

	res := []*resource{{}, {}, {}}
	inner := List(NewOpaque(res[1], nil, res[1].release))
	list := List(
		NewOpaque(res[0], nil, res[0].release),
		inner,
		NewCString("text"),
		NewOpaque(res[2], nil, res[2].release),
	)

	list.Free()
	for n, r := range res {
		assert.Equal(1, r.released, n)
	}
	assert.Equal(KIND_NONE, list.Kind())
	assert.Equal(KIND_NONE, inner.Kind())
}

func TestFree_Dotted(t *testing.T) {
	assert := assert.New(t)

	res := &resource{}
	pair := Cons(NewByte(1), NewOpaque(res, nil, res.release))
	pair.Free()
	assert.Equal(1, res.released)
}

func TestFree_Nil(t *testing.T) {
	assert := assert.New(t)

	var v *Value
	assert.NotPanics(func() { v.Free() })
}

func TestFreeSpine(t *testing.T) {
	assert := assert.New(t)

	res := &resource{}
	elems := []*Value{NewByte(1), NewOpaque(res, nil, res.release), NewCString("kept")}
	list := List(elems...)

	FreeSpine(list)
	assert.Equal(KIND_NONE, list.Kind())
	assert.Equal(0, res.released)
	assert.Equal(uint8(1), elems[0].Byte())
	assert.Equal("kept", elems[2].CString())

	// The elements are still owned by the caller.
	elems[1].Free()
	assert.Equal(1, res.released)

	assert.NotPanics(func() { FreeSpine(nil) })
	assertViolation(t, ErrNotList, func() { FreeSpine(NewByte(1)) })
}
