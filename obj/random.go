package obj

import (
	"math"
	"math/rand"
)

// Random is a source of uniformly distributed integers.
type Random interface {
	// Range returns an integer in [lo, hi].
	Range(lo, hi uint) uint
}

type randomSource struct {
	rands *rand.Rand
}

// NewRandom creates a Random from a seed.
func NewRandom(seed int64) Random {
	return &randomSource{
		rands: rand.New(rand.NewSource(seed)),
	}
}

// Range panics with ErrIndexRange if hi < lo.
func (rs *randomSource) Range(lo, hi uint) uint {
	if hi < lo {
		violation("range", KIND_NONE, ErrIndexRange)
	}

	span := uint64(hi - lo)
	if span < math.MaxInt64 {
		return lo + uint(rs.rands.Int63n(int64(span)+1))
	}

	// At least half of all draws land in [0, span].
	for {
		value := rs.rands.Uint64()
		if value <= span {
			return lo + uint(value)
		}
	}
}
