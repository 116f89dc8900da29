package obj

// Dumper renders the foreign pointer of an Opaque value.
type Dumper func(sb Sink, ptr any)

// Releaser releases the resources held by the foreign pointer of an Opaque
// value.
type Releaser func(ptr any)

// Opaque wraps a foreign pointer. A nil Release is only safe if Ptr holds no
// resources.
type Opaque struct {
	Ptr     any
	Dump    Dumper   // May be nil.
	Release Releaser // May be nil.
}

// NewOpaque wraps a foreign pointer in a Value.
func NewOpaque(ptr any, dump Dumper, release Releaser) (v *Value) {
	v = &Value{
		kind: KIND_OPAQUE,
		o: &Opaque{
			Ptr:     ptr,
			Dump:    dump,
			Release: release,
		},
	}
	return
}

// IsOpaque returns true for an Opaque value.
func (v *Value) IsOpaque() bool {
	return kindOf(v) == KIND_OPAQUE
}

// Unpack returns the foreign pointer of an Opaque value.
func (v *Value) Unpack() any {
	v.expect("unpack", KIND_OPAQUE)
	return v.o.Ptr
}

// UnpackAs returns the foreign pointer of an Opaque value as a T.
func UnpackAs[T any](v *Value) T {
	ptr, ok := v.Unpack().(T)
	if !ok {
		violation("unpack", KIND_OPAQUE, ErrKindMismatch)
	}
	return ptr
}

// release runs the release hook at most once.
func (o *Opaque) release() {
	if o.Release != nil {
		release := o.Release
		o.Release = nil
		release(o.Ptr)
	}
}
