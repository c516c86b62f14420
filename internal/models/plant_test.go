package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

func validPlant() *Plant {
	return &Plant{
		ID: 1, Species: "tomato", Size: 1, HarvestDays: 60,
		Types: []constants.PlantType{constants.TypeVegetable},
	}
}

func TestPlant_Validate_AcceptsWellFormedPlant(t *testing.T) {
	require.NoError(t, validPlant().Validate())
}

func TestPlant_Validate_RejectsNonPositiveID(t *testing.T) {
	p := validPlant()
	p.ID = 0
	assert.Error(t, p.Validate())
}

func TestPlant_Validate_RejectsEmptySpecies(t *testing.T) {
	p := validPlant()
	p.Species = ""
	assert.Error(t, p.Validate())
}

func TestPlant_Validate_RejectsNoTypeTags(t *testing.T) {
	p := validPlant()
	p.Types = nil
	assert.Error(t, p.Validate())
}

func TestPlant_Validate_RejectsNonPositiveSize(t *testing.T) {
	p := validPlant()
	p.Size = 0
	assert.Error(t, p.Validate())
}

func TestPlant_Validate_RejectsHarvestDaysBelowOne(t *testing.T) {
	p := validPlant()
	p.HarvestDays = 0
	assert.Error(t, p.Validate())
}

func TestPlant_HasType(t *testing.T) {
	p := validPlant()
	assert.True(t, p.HasType(constants.TypeVegetable))
	assert.False(t, p.HasType(constants.TypeMedicinal))
}
