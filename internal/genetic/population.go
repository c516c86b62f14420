package genetic

import (
	"math"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/spacing"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

const (
	aspectRatioMin = 0.6
	aspectRatioMax = 1.4

	minNumSpeciesPerIndividual = 2

	instancesPerSpeciesMin = 1
	instancesPerSpeciesMax = 2

	initPlacementTries = 50
)

// InitPopulation builds cfg.PopulationSize individuals via heuristic
// initialization: random plot aspect ratio, a random species subset from
// the pool, and rejection-sampled placement for each instance (spec §4.5
// phase 1).
func (e *Engine) InitPopulation() []*models.Individual {
	population := make([]*models.Individual, e.Config.PopulationSize)
	for i := range population {
		population[i] = e.initIndividual()
	}
	return population
}

func (e *Engine) initIndividual() *models.Individual {
	r := e.RNG.Float64Range(aspectRatioMin, aspectRatioMax)
	w := math.Sqrt(e.Constraints.MaxArea * r)
	h := e.Constraints.MaxArea / w
	dims := models.NewDimensions(w, h)

	ind := models.NewIndividual(dims)

	maxSpecies := e.Config.MaxSpecies
	if maxSpecies > len(e.Pool) {
		maxSpecies = len(e.Pool)
	}
	if maxSpecies < minNumSpeciesPerIndividual {
		maxSpecies = len(e.Pool)
	}

	numSpecies := minNumSpeciesPerIndividual
	if maxSpecies > minNumSpeciesPerIndividual {
		numSpecies = minNumSpeciesPerIndividual + e.RNG.Intn(maxSpecies-minNumSpeciesPerIndividual+1)
	}

	shuffled := make([]*models.Plant, len(e.Pool))
	copy(shuffled, e.Pool)
	e.RNG.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	if numSpecies > len(shuffled) {
		numSpecies = len(shuffled)
	}
	chosen := shuffled[:numSpecies]

	for _, plant := range chosen {
		count := instancesPerSpeciesMin
		if instancesPerSpeciesMax > instancesPerSpeciesMin {
			count += e.RNG.Intn(instancesPerSpeciesMax - instancesPerSpeciesMin + 1)
		}
		for c := 0; c < count; c++ {
			e.tryPlace(ind, plant, initPlacementTries)
		}
	}

	return ind
}

// tryPlace attempts rejection-sampled placement of a new instance of plant
// into ind, up to maxTries attempts. Returns the placed instance, or nil
// if no feasible slot was found.
func (e *Engine) tryPlace(ind *models.Individual, plant *models.Plant, maxTries int) *models.PlantInstance {
	side := math.Sqrt(plant.Size)
	margin := side

	maxX := ind.Dimensions.Width - margin*2 - side
	maxY := ind.Dimensions.Height - margin*2 - side
	if maxX < 0 || maxY < 0 {
		// plot too small for the inset margin; fall back to the full plot.
		maxX = ind.Dimensions.Width - side
		maxY = ind.Dimensions.Height - side
		margin = 0
	}
	if maxX < 0 || maxY < 0 {
		return nil
	}

	for try := 0; try < maxTries; try++ {
		x := margin + e.RNG.Float64()*maxX
		y := margin + e.RNG.Float64()*maxY

		candidate := models.NewPlantInstance(plant, x, y)

		if !candidate.WithinBounds(ind.Dimensions.Width, ind.Dimensions.Height) {
			continue
		}
		if e.violatesSpacingOrOverlap(ind, candidate) {
			continue
		}
		if e.violatesResourceCaps(ind, plant) {
			continue
		}

		ind.Plants = append(ind.Plants, candidate)
		return candidate
	}
	return nil
}

func (e *Engine) violatesSpacingOrOverlap(ind *models.Individual, candidate *models.PlantInstance) bool {
	for _, existing := range ind.Plants {
		if candidate.Overlaps(existing) {
			return true
		}
		compat := 0.0
		if candidate.Plant != nil && existing.Plant != nil {
			compat = e.Index.Lookup(candidate.Plant.Species, existing.Plant.Species)
		}
		minDist := spacing.MinDistance(compat, candidate.Plant.Size, existing.Plant.Size)
		if candidate.Distance(existing) < minDist {
			return true
		}
	}
	return false
}

func (e *Engine) violatesResourceCaps(ind *models.Individual, newPlant *models.Plant) bool {
	projectedArea := ind.UsedArea() + newPlant.Size
	if projectedArea > maxPlacementAreaFraction*e.Constraints.MaxArea {
		return true
	}
	projectedWater := ind.TotalWeeklyWater() + newPlant.WeeklyWatering
	if projectedWater > e.Constraints.MaxWaterWeekly {
		return true
	}
	if e.Constraints.MaxBudget != nil {
		projectedCost := ind.TotalCost() + newPlant.Size*constants.CostPerSquareMeter
		if projectedCost > *e.Constraints.MaxBudget {
			return true
		}
	}
	return false
}
