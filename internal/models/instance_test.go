package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

func plantFixture(size float64) *Plant {
	return &Plant{ID: 1, Species: "tomato", Size: size}
}

func TestNewPlantInstance_DefaultsFromPlantSize(t *testing.T) {
	pi := NewPlantInstance(plantFixture(4), 2, 3)
	assert.Equal(t, 2.0, pi.Width)
	assert.Equal(t, 2.0, pi.Height)
	assert.Equal(t, constants.StatusPending, pi.Status)
}

func TestPlantInstance_Clone_DoesNotShareStateWithOriginal(t *testing.T) {
	original := NewPlantInstance(plantFixture(1), 0, 0)
	clone := original.Clone()
	clone.X = 99

	assert.NotEqual(t, original.X, clone.X)
	assert.Same(t, original.Plant, clone.Plant, "the catalogue plant pointer is shared, never deep-copied")
}

func TestPlantInstance_Overlaps(t *testing.T) {
	a := NewPlantInstance(plantFixture(4), 0, 0)
	b := NewPlantInstance(plantFixture(4), 1, 1)
	c := NewPlantInstance(plantFixture(4), 10, 10)

	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
}

func TestPlantInstance_WithinBounds(t *testing.T) {
	inside := NewPlantInstance(plantFixture(4), 1, 1)
	outside := NewPlantInstance(plantFixture(4), 9, 9)

	assert.True(t, inside.WithinBounds(10, 10))
	assert.False(t, outside.WithinBounds(10, 10))
}

func TestPlantInstance_Distance_IsSymmetric(t *testing.T) {
	a := NewPlantInstance(plantFixture(4), 0, 0)
	b := NewPlantInstance(plantFixture(4), 3, 4)

	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.InDelta(t, a.Distance(b), b.Distance(a), 1e-9)
}
