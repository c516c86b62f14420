// Package rng provides the garden planner engine's deterministic random
// stream. When a seed is supplied every GA decision must draw from this
// single generator so that a fixed seed reproduces outputs exactly across
// language implementations.
package rng

import "math/rand"

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Source is the single random stream consumed by request normalization's
// randomized defaults and every genetic-algorithm decision. It wraps a linear congruential
// generator when seeded, and math/rand when not.
type Source struct {
	state   int64
	seeded  bool
	fallback *rand.Rand
}

// New returns a Source. When seed is non-nil, draws come from the
// contractual LCG (state = (state*9301 + 49297) mod 233280); otherwise
// draws come from an unseeded math/rand source for non-reproducible runs.
func New(seed *int64) *Source {
	if seed == nil {
		return &Source{fallback: rand.New(rand.NewSource(rand.Int63()))}
	}
	return &Source{state: *seed, seeded: true}
}

// Float64 returns the next value in [0, 1).
func (s *Source) Float64() float64 {
	if !s.seeded {
		return s.fallback.Float64()
	}
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	if s.state < 0 {
		s.state += lcgModulus
	}
	return float64(s.state) / float64(lcgModulus)
}

// Intn returns a uniform integer in [0, n). Panics if n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(s.Float64() * float64(n))
}

// Float64Range returns a uniform float in [min, max).
func (s *Source) Float64Range(min, max float64) float64 {
	return min + s.Float64()*(max-min)
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.Float64() < p
}

// Shuffle permutes the first n elements of the slice using swap(i, j),
// Fisher-Yates, drawing from this source.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.Intn(i + 1)
		swap(i, j)
	}
}
