package compatibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

func TestBuild_NilEntriesIsCatalogueError(t *testing.T) {
	idx, err := Build(nil)
	require.Error(t, err)
	assert.Nil(t, idx)
	assert.True(t, errors.Is(err, constants.ErrCatalogue))
}

func TestBuild_EmptySliceIsValid(t *testing.T) {
	idx, err := Build([]models.CompatibilityEntry{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, idx.Lookup("tomato", "basil"))
}

func TestLookup_ChecksBothDirections(t *testing.T) {
	idx, err := Build([]models.CompatibilityEntry{
		{Species1: "tomato", Species2: "basil", Score: 0.8},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.8, idx.Lookup("tomato", "basil"))
	assert.Equal(t, 0.8, idx.Lookup("basil", "tomato"))
}

func TestLookup_UnknownPairDefaultsNeutral(t *testing.T) {
	idx, err := Build([]models.CompatibilityEntry{
		{Species1: "tomato", Species2: "basil", Score: 0.8},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, idx.Lookup("tomato", "fennel"))
}

func TestLookup_NilIndexNeverPanics(t *testing.T) {
	var idx *Index
	assert.Equal(t, 0.0, idx.Lookup("a", "b"))
}
