package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeededSequenceIsDeterministic(t *testing.T) {
	seed := int64(42)
	a := New(&seed)
	b := New(&seed)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d should match across independently seeded sources", i)
	}
}

func TestFloat64_StaysInUnitInterval(t *testing.T) {
	seed := int64(7)
	s := New(&seed)
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestFloat64_MatchesContractualLCG(t *testing.T) {
	seed := int64(1)
	s := New(&seed)

	state := int64(1)
	for i := 0; i < 5; i++ {
		state = (state*9301 + 49297) % 233280
		want := float64(state) / float64(233280)
		assert.InDelta(t, want, s.Float64(), 1e-12)
	}
}

func TestIntn_BoundsAndPanics(t *testing.T) {
	seed := int64(99)
	s := New(&seed)
	for i := 0; i < 100; i++ {
		n := s.Intn(5)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 5)
	}

	assert.Panics(t, func() {
		s.Intn(0)
	})
}

func TestFloat64Range_Bounds(t *testing.T) {
	seed := int64(3)
	s := New(&seed)
	for i := 0; i < 50; i++ {
		v := s.Float64Range(10, 20)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 20.0)
	}
}

func TestShuffle_PermutesWithoutLoss(t *testing.T) {
	seed := int64(11)
	s := New(&seed)

	data := []int{1, 2, 3, 4, 5, 6, 7}
	original := append([]int(nil), data...)

	s.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

	assert.ElementsMatch(t, original, data)
}

func TestNew_UnseededDoesNotPanic(t *testing.T) {
	s := New(nil)
	for i := 0; i < 10; i++ {
		v := s.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
