package genetic

import (
	"sort"
	"time"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// stallImprovementThreshold is the minimum best-fitness improvement
// required to reset the stall counter (spec §4.5 step 6).
const stallImprovementThreshold = 0.001

// topSolutionsCount is how many individuals the engine returns on exit.
const topSolutionsCount = 3

// Result is the outcome of one evolution run.
type Result struct {
	TopSolutions          []*models.Individual
	TotalGenerations      int
	ConvergenceGeneration int
	StoppingReason        constants.StoppingReason
}

// Run drives the full genetic algorithm: heuristic initialization,
// evaluation, and the generation loop until a stopping condition fires,
// per spec §4.5.
func (e *Engine) Run() (*Result, error) {
	start := time.Now()

	population := e.InitPopulation()
	if err := e.evaluateAll(population); err != nil {
		return nil, err
	}

	var bestFitness float64
	var stall int
	convergenceGeneration := -1

	maxGenerations := e.Config.MaxGenerations
	generation := 0

	for ; generation < maxGenerations; generation++ {
		selected := e.TournamentSelect(population)
		offspring := e.Crossover(selected)
		for _, child := range offspring {
			e.Mutate(child)
		}
		if err := e.evaluateAll(offspring); err != nil {
			return nil, err
		}

		population = e.replaceWithElitism(population, offspring)

		currentBest := population[0].Fitness()
		improvement := currentBest - bestFitness
		if improvement > stallImprovementThreshold {
			stall = 0
		} else {
			stall++
		}
		bestFitness = currentBest

		reason, stopped := e.checkStopping(start, generation, stall, population)
		if stopped {
			if reason == constants.StoppingConvergence && convergenceGeneration == -1 {
				convergenceGeneration = generation
			}
			return e.finish(population, generation, convergenceGeneration, reason), nil
		}
	}

	return e.finish(population, generation, convergenceGeneration, constants.StoppingMaxGenerations), nil
}

func (e *Engine) evaluateAll(population []*models.Individual) error {
	for _, ind := range population {
		if _, err := e.Evaluator.Evaluate(ind, e.Constraints, e.Objective); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) replaceWithElitism(parents, offspring []*models.Individual) []*models.Individual {
	combined := make([]*models.Individual, 0, len(parents)+len(offspring))
	combined = append(combined, parents...)
	combined = append(combined, offspring...)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Fitness() > combined[j].Fitness()
	})

	if len(combined) > e.Config.PopulationSize {
		combined = combined[:e.Config.PopulationSize]
	}
	return combined
}

// checkStopping evaluates the stopping conditions in the order mandated by
// spec §4.5 step 7: timeout, patience, convergence, max generations.
func (e *Engine) checkStopping(start time.Time, generation, stall int, population []*models.Individual) (constants.StoppingReason, bool) {
	elapsedMs := time.Since(start).Milliseconds()
	if e.Config.TimeoutMs > 0 && elapsedMs > e.Config.TimeoutMs {
		return constants.StoppingTimeout, true
	}
	if stall >= e.Config.Patience {
		return constants.StoppingPatience, true
	}
	if fitnessVariance(population) < e.Config.ConvergenceThreshold {
		return constants.StoppingConvergence, true
	}
	if generation >= e.Config.MaxGenerations-1 {
		return constants.StoppingMaxGenerations, true
	}
	return "", false
}

func fitnessVariance(population []*models.Individual) float64 {
	if len(population) == 0 {
		return 0
	}
	var sum float64
	for _, ind := range population {
		sum += ind.Fitness()
	}
	mean := sum / float64(len(population))

	var variance float64
	for _, ind := range population {
		diff := ind.Fitness() - mean
		variance += diff * diff
	}
	return variance / float64(len(population))
}

func (e *Engine) finish(population []*models.Individual, generation, convergenceGeneration int, reason constants.StoppingReason) *Result {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].Fitness() > population[j].Fitness()
	})

	top := topSolutionsCount
	if top > len(population) {
		top = len(population)
	}

	return &Result{
		TopSolutions:          population[:top],
		TotalGenerations:      generation + 1,
		ConvergenceGeneration: convergenceGeneration,
		StoppingReason:        reason,
	}
}
