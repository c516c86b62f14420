package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() *GardenPlanRequest {
	return &GardenPlanRequest{
		UserID:         "user-1",
		UserExperience: 2,
	}
}

func TestValidate_AcceptsMinimalRequest(t *testing.T) {
	require.NoError(t, baseRequest().Validate())
}

func TestValidate_RejectsMissingUserID(t *testing.T) {
	r := baseRequest()
	r.UserID = ""
	assert.Error(t, r.Validate())
}

func TestValidate_RejectsInvalidExperienceLevel(t *testing.T) {
	r := baseRequest()
	r.UserExperience = 9
	assert.Error(t, r.Validate())
}

func TestValidate_RejectsInvalidMaxPlantSpecies(t *testing.T) {
	r := baseRequest()
	r.MaxPlantSpecies = 4
	assert.Error(t, r.Validate())
}

func TestValidate_RejectsCategoryDistributionNotSummingTo100(t *testing.T) {
	r := baseRequest()
	r.CategoryDistribution = &CategoryDistributionRequest{Vegetable: 50, Medicinal: 10}
	assert.Error(t, r.Validate())
}

func TestValidate_AcceptsCategoryDistributionSummingTo100(t *testing.T) {
	r := baseRequest()
	r.CategoryDistribution = &CategoryDistributionRequest{Vegetable: 70, Medicinal: 10, Aromatic: 10, Ornamental: 10}
	assert.NoError(t, r.Validate())
}
