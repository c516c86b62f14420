package genetic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/rng"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

func pastTime() time.Time {
	return time.Now().Add(-time.Hour)
}

func samplePool() []*models.Plant {
	return []*models.Plant{
		{ID: 1, Species: "tomato", Size: 1, Types: []constants.PlantType{constants.TypeVegetable}, HarvestDays: 70, SoilType: "loam", WeeklyWatering: 2},
		{ID: 2, Species: "basil", Size: 0.5, Types: []constants.PlantType{constants.TypeAromatic}, HarvestDays: 30, SoilType: "sand", WeeklyWatering: 1},
		{ID: 3, Species: "marigold", Size: 0.3, Types: []constants.PlantType{constants.TypeOrnamental}, HarvestDays: 45, SoilType: "loam", WeeklyWatering: 1.5},
		{ID: 4, Species: "mint", Size: 0.4, Types: []constants.PlantType{constants.TypeMedicinal}, HarvestDays: 40, SoilType: "clay", WeeklyWatering: 2.5},
	}
}

func sampleConstraints() models.Constraints {
	return models.Constraints{MaxArea: 20, MaxWaterWeekly: 50}
}

func newTestEngine(seed int64) *Engine {
	idx, _ := compatibility.Build([]models.CompatibilityEntry{})
	cfg := models.DefaultGAConfig()
	cfg.PopulationSize = 10
	cfg.MaxGenerations = 15
	cfg.MaxSpecies = 3
	s := seed
	cfg.Seed = &s
	return NewEngine(samplePool(), sampleConstraints(), cfg, constants.ObjectiveAlimenticio, idx, rng.New(&s))
}

func TestInitPopulation_ProducesFeasibleIndividuals(t *testing.T) {
	e := newTestEngine(1)
	population := e.InitPopulation()
	require.Len(t, population, e.Config.PopulationSize)

	for _, ind := range population {
		for i, p := range ind.Plants {
			assert.True(t, p.WithinBounds(ind.Dimensions.Width, ind.Dimensions.Height))
			for j, other := range ind.Plants {
				if i == j {
					continue
				}
				assert.False(t, p.Overlaps(other))
			}
		}
		assert.LessOrEqual(t, ind.UsedArea(), maxPlacementAreaFraction*e.Constraints.MaxArea+1e-6)
	}
}

func TestTournamentSelect_AlwaysPicksFromPopulation(t *testing.T) {
	e := newTestEngine(2)
	population := e.InitPopulation()
	for _, ind := range population {
		ind.Metrics = &models.Metrics{Fitness: e.RNG.Float64()}
	}

	selected := e.TournamentSelect(population)
	require.Len(t, selected, len(population))

	members := make(map[*models.Individual]bool)
	for _, ind := range population {
		members[ind] = true
	}
	for _, s := range selected {
		assert.True(t, members[s])
	}
}

func TestCrossover_PreservesOffspringCount(t *testing.T) {
	e := newTestEngine(3)
	population := e.InitPopulation()
	for _, ind := range population {
		ind.Metrics = &models.Metrics{Fitness: 0.5}
	}

	offspring := e.Crossover(population)
	assert.Len(t, offspring, len(population))
}

func TestMutateDelete_NeverDropsBelowMinimum(t *testing.T) {
	e := newTestEngine(4)
	ind := models.NewIndividual(models.NewDimensions(5, 5))
	ind.Plants = []*models.PlantInstance{
		models.NewPlantInstance(samplePool()[0], 0, 0),
		models.NewPlantInstance(samplePool()[1], 2, 2),
	}

	for i := 0; i < 100; i++ {
		e.mutateDelete(ind)
	}
	assert.GreaterOrEqual(t, len(ind.Plants), deleteMinInstances)
}

func TestMutateSwap_HasNoGeometricEffect(t *testing.T) {
	e := newTestEngine(5)
	a := models.NewPlantInstance(samplePool()[0], 0, 0)
	b := models.NewPlantInstance(samplePool()[1], 2, 2)
	ind := models.NewIndividual(models.NewDimensions(5, 5))
	ind.Plants = []*models.PlantInstance{a, b}

	positions := map[*models.PlantInstance][2]float64{a: {a.X, a.Y}, b: {b.X, b.Y}}

	for i := 0; i < 20; i++ {
		e.mutateSwap(ind)
	}

	for _, p := range ind.Plants {
		want := positions[p]
		assert.Equal(t, want[0], p.X)
		assert.Equal(t, want[1], p.Y)
	}
}

func TestEngine_Run_IsDeterministicForFixedSeed(t *testing.T) {
	e1 := newTestEngine(123)
	e2 := newTestEngine(123)

	r1, err := e1.Run()
	require.NoError(t, err)
	r2, err := e2.Run()
	require.NoError(t, err)

	require.Len(t, r1.TopSolutions, len(r2.TopSolutions))
	for i := range r1.TopSolutions {
		assert.InDelta(t, r1.TopSolutions[i].Fitness(), r2.TopSolutions[i].Fitness(), 1e-12)
	}
	assert.Equal(t, r1.StoppingReason, r2.StoppingReason)
	assert.Equal(t, r1.TotalGenerations, r2.TotalGenerations)
}

func TestEngine_Run_ReturnsAtMostTopThreeSortedByFitness(t *testing.T) {
	e := newTestEngine(42)
	result, err := e.Run()
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.TopSolutions), 3)
	for i := 1; i < len(result.TopSolutions); i++ {
		assert.GreaterOrEqual(t, result.TopSolutions[i-1].Fitness(), result.TopSolutions[i].Fitness())
	}
}

func TestCheckStopping_OrdersConditionsTimeoutFirst(t *testing.T) {
	e := newTestEngine(6)
	e.Config.TimeoutMs = 1
	population := e.InitPopulation()
	for _, ind := range population {
		ind.Metrics = &models.Metrics{Fitness: 0.5}
	}

	reason, stopped := e.checkStopping(pastTime(), 0, 0, population)
	assert.True(t, stopped)
	assert.Equal(t, constants.StoppingTimeout, reason)
}
