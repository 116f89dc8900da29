package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// assertViolation checks that fn panics with a contract violation wrapping
// target.
func assertViolation(t *testing.T, target error, fn func(), msgs ...any) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		err, ok := r.(error)
		if !assert.True(t, ok, msgs...) {
			return
		}
		var contract *ErrContract
		assert.ErrorAs(t, err, &contract, msgs...)
		assert.ErrorIs(t, err, target, msgs...)
	}()

	fn()
}

// tetras builds a list of Tetra values.
func tetras(values ...uint32) *Value {
	elems := make([]*Value, len(values))
	for n, value := range values {
		elems[n] = NewTetra(value)
	}
	return List(elems...)
}
