package orchestrator

import (
	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/genetic"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
	"github.com/urban-gardening-assistant/planner-engine/pkg/dto"
)

const (
	monthlyProductionPerSquareMeter = 2.0
	roundDecimals                   = 4
)

// assembleSolutions converts the GA's top individuals into ranked response
// solutions, computing derived estimates per spec §4.7.
func assembleSolutions(top []*models.Individual, catalogue map[int]*models.Plant, index *compatibility.Index, weights models.Weights, maintenanceMinutes int) []dto.Solution {
	solutions := make([]dto.Solution, len(top))
	for i, ind := range top {
		solutions[i] = assembleSolution(ind, i+1, catalogue, index, weights)
	}
	return solutions
}

func assembleSolution(ind *models.Individual, rank int, catalogue map[int]*models.Plant, index *compatibility.Index, weights models.Weights) dto.Solution {
	instances := make([]dto.InstanceView, len(ind.Plants))
	vegetableArea := 0.0
	minHarvest, maxHarvest := 0, 0
	for i, p := range ind.Plants {
		plant := p.Plant
		if plant == nil {
			plant = catalogue[p.PlantID]
		}
		var types []constants.PlantType
		if plant != nil {
			types = plant.Types
			if plant.HasType(constants.TypeVegetable) {
				vegetableArea += plant.Size
			}
			if i == 0 || plant.HarvestDays < minHarvest {
				minHarvest = plant.HarvestDays
			}
			if i == 0 || plant.HarvestDays > maxHarvest {
				maxHarvest = plant.HarvestDays
			}
		}

		name, scientificName := "", ""
		if plant != nil {
			name = plant.Species
			scientificName = plant.ScientificName
		}

		instances[i] = dto.InstanceView{
			ID:             p.PlantID,
			Name:           name,
			ScientificName: scientificName,
			Quantity:       1,
			Position:       dto.PositionView{X: p.X, Y: p.Y},
			Area:           p.Area(),
			Types:          types,
		}
	}

	metrics := dto.MetricsView{}
	if ind.Metrics != nil {
		metrics = dto.MetricsView{
			CEE:     round4(ind.Metrics.CEE),
			PSRNT:   round4(ind.Metrics.PSRNT),
			EH:      round4(ind.Metrics.EH),
			UE:      round4(ind.Metrics.UE),
			CS:      round4(ind.Metrics.CS),
			BSN:     round4(ind.Metrics.BSN),
			Fitness: round4(ind.Metrics.Fitness),
		}
	}

	return dto.Solution{
		Rank: rank,
		Layout: dto.LayoutView{
			Dimensions: dto.DimensionsView{
				Width:     ind.Dimensions.Width,
				Height:    ind.Dimensions.Height,
				TotalArea: ind.Dimensions.TotalArea,
			},
			Instances: instances,
		},
		Metrics: metrics,
		Estimations: dto.Estimations{
			MonthlyProductionKg:      vegetableArea * monthlyProductionPerSquareMeter,
			WeeklyWaterLiters:        ind.TotalWeeklyWater(),
			ImplementationCostMXN:    ind.TotalCost(),
			MaintenanceMinutesPerWeek: ind.TotalPlants() * constants.MinutesPerPlant,
		},
		Calendar: dto.CalendarSummary{
			EarliestHarvestDays: minHarvest,
			LatestHarvestDays:   maxHarvest,
		},
		Compatibilities: assembleCompatibilities(ind.Plants, index),
	}
}

func assembleCompatibilities(plants []*models.PlantInstance, index *compatibility.Index) []dto.CompatibilityPairView {
	var pairs []dto.CompatibilityPairView
	for i := 0; i < len(plants); i++ {
		for j := i + 1; j < len(plants); j++ {
			p, q := plants[i], plants[j]
			if p.Plant == nil || q.Plant == nil {
				continue
			}
			score := index.Lookup(p.Plant.Species, q.Plant.Species)
			pairs = append(pairs, dto.CompatibilityPairView{
				InstanceAID: p.PlantID,
				InstanceBID: q.PlantID,
				Score:       round4(score),
				Label:       constants.LabelForScore(score),
			})
		}
	}
	return pairs
}

func round4(v float64) float64 {
	scale := 1.0
	for i := 0; i < roundDecimals; i++ {
		scale *= 10
	}
	return float64(int64(v*scale+signOf(v)*0.5)) / scale
}

func signOf(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func weightsView(w models.Weights) dto.MetricsView {
	return dto.MetricsView{
		CEE: w.CEE, PSRNT: w.PSRNT, EH: w.EH, UE: w.UE, CS: w.CS, BSN: w.BSN,
	}
}

func selectedPlantsView(pool []*models.Plant) []dto.PlantSummary {
	out := make([]dto.PlantSummary, len(pool))
	for i, p := range pool {
		out[i] = dto.PlantSummary{ID: p.ID, Species: p.Species}
	}
	return out
}

func assembleMetadata(result *genetic.Result, executionTimeMs int64, populationSize int, weights models.Weights, pool []*models.Plant) dto.Metadata {
	return dto.Metadata{
		ExecutionTimeMs:       executionTimeMs,
		TotalGenerations:      result.TotalGenerations,
		ConvergenceGeneration: result.ConvergenceGeneration,
		PopulationSize:        populationSize,
		StoppingReason:        result.StoppingReason,
		Weights:               weightsView(weights),
		SelectedPlants:        selectedPlantsView(pool),
	}
}
