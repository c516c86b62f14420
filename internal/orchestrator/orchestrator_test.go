package orchestrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/orchestrator"
	"github.com/urban-gardening-assistant/planner-engine/internal/store"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
	"github.com/urban-gardening-assistant/planner-engine/pkg/dto"
)

func fixturePlants() []*models.Plant {
	return []*models.Plant{
		{ID: 1, Species: "tomato", Size: 1, Types: []constants.PlantType{constants.TypeVegetable}, HarvestDays: 70, SoilType: "loam", WeeklyWatering: 2},
		{ID: 2, Species: "basil", Size: 0.5, Types: []constants.PlantType{constants.TypeAromatic}, HarvestDays: 30, SoilType: "sand", WeeklyWatering: 1},
		{ID: 3, Species: "marigold", Size: 0.3, Types: []constants.PlantType{constants.TypeOrnamental}, HarvestDays: 45, SoilType: "loam", WeeklyWatering: 1.5},
	}
}

func newTestOrchestrator(t *testing.T, notifications *store.MemoryNotificationSink) *orchestrator.Orchestrator {
	catalogue := &store.MemoryCatalogueStore{Plants: fixturePlants()}
	compat := &store.MemoryCompatibilityStore{Entries: []models.CompatibilityEntry{
		{Species1: "tomato", Species2: "basil", Score: 0.6},
	}}

	var sink orchestrator.NotificationSink
	if notifications != nil {
		sink = notifications
	}

	o := orchestrator.New(catalogue, compat, nil, sink, nil)
	require.NoError(t, o.Warm(context.Background()))
	return o
}

func TestOrchestrator_Plan_ReturnsRankedSolutions(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	seed := int64(7)
	req := &dto.GardenPlanRequest{
		UserID:         "user-1",
		UserExperience: 2,
		Dimensions:     &dto.DimensionsRequest{Width: 3, Height: 3},
		Seed:           &seed,
	}

	resp, err := o.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Solutions)
	assert.LessOrEqual(t, len(resp.Solutions), 3)

	for i := 1; i < len(resp.Solutions); i++ {
		assert.LessOrEqual(t, resp.Solutions[i-1].Rank, resp.Solutions[i].Rank)
	}
}

func TestOrchestrator_Plan_RejectsInvalidRequest(t *testing.T) {
	o := newTestOrchestrator(t, nil)

	req := &dto.GardenPlanRequest{UserExperience: 2} // missing required userId
	_, err := o.Plan(context.Background(), req)
	assert.Error(t, err)
}

func TestOrchestrator_Plan_IsDeterministicForFixedSeed(t *testing.T) {
	o := newTestOrchestrator(t, nil)
	seed := int64(99)

	req := func() *dto.GardenPlanRequest {
		return &dto.GardenPlanRequest{
			UserID:         "user-1",
			UserExperience: 1,
			Dimensions:     &dto.DimensionsRequest{Width: 3, Height: 3},
			Seed:           &seed,
		}
	}

	resp1, err := o.Plan(context.Background(), req())
	require.NoError(t, err)
	resp2, err := o.Plan(context.Background(), req())
	require.NoError(t, err)

	require.Equal(t, len(resp1.Solutions), len(resp2.Solutions))
	for i := range resp1.Solutions {
		assert.Equal(t, resp1.Solutions[i].Metrics, resp2.Solutions[i].Metrics)
	}
}

func TestOrchestrator_Plan_FiresNotificationOnSuccess(t *testing.T) {
	sink := &store.MemoryNotificationSink{}
	o := newTestOrchestrator(t, sink)

	seed := int64(3)
	req := &dto.GardenPlanRequest{
		UserID:         "user-42",
		UserExperience: 1,
		Dimensions:     &dto.DimensionsRequest{Width: 2, Height: 2},
		Seed:           &seed,
	}

	_, err := o.Plan(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, sink.Sent, 1)
	assert.Equal(t, "user-42", sink.Sent[0].UserID)
}
