package gen

import (
	"math/rand"
	"time"
)

// Source wraps a seeded random number generator so a run can be reproduced.
// The effective seed is kept so it can be reported alongside a failure.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a source for the given seed.
// If seed is 0, the current time is used instead.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the effective seed behind this source
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntRange returns a random int in [lo, hi]. Panics if lo > hi.
func (s *Source) IntRange(lo, hi int) int {
	if lo > hi {
		panic("gen: IntRange lo > hi")
	}
	if lo == hi {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Int64Range returns a random int64 in [lo, hi]. Panics if lo > hi.
func (s *Source) Int64Range(lo, hi int64) int64 {
	if lo > hi {
		panic("gen: Int64Range lo > hi")
	}
	if lo == hi {
		return lo
	}
	return lo + s.rng.Int63n(hi-lo+1)
}

// Float64 returns a random float64 in [0.0, 1.0)
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Float64Range returns a random float64 in [lo, hi)
func (s *Source) Float64Range(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Bool returns a random boolean with equal probability
func (s *Source) Bool() bool {
	return s.rng.Intn(2) == 1
}

// Byte returns a uniformly random byte
func (s *Source) Byte() byte {
	return byte(s.rng.Intn(256))
}
