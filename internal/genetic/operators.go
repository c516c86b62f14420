package genetic

import "github.com/urban-gardening-assistant/planner-engine/internal/models"

// TournamentSelect runs cfg.PopulationSize independent tournaments of size
// tournamentK with replacement, each keeping the fittest competitor (ties
// broken by earlier index), per spec §4.5 step 1.
func (e *Engine) TournamentSelect(population []*models.Individual) []*models.Individual {
	selected := make([]*models.Individual, len(population))
	for i := range selected {
		selected[i] = e.tournamentOnce(population)
	}
	return selected
}

func (e *Engine) tournamentOnce(population []*models.Individual) *models.Individual {
	best := population[e.RNG.Intn(len(population))]
	for c := 1; c < e.Config.TournamentK; c++ {
		candidate := population[e.RNG.Intn(len(population))]
		if candidate.Fitness() > best.Fitness() {
			best = candidate
		}
	}
	return best
}

// Crossover pairs up selected parents and, with probability
// crossoverProbability, applies uniform crossover over instance lists;
// otherwise it clones both parents unchanged, per spec §4.5 step 2.
func (e *Engine) Crossover(selected []*models.Individual) []*models.Individual {
	offspring := make([]*models.Individual, 0, len(selected))
	for i := 0; i < len(selected); i += 2 {
		if i+1 >= len(selected) {
			offspring = append(offspring, selected[i].Clone())
			break
		}
		p1, p2 := selected[i], selected[i+1]
		if e.RNG.Bool(e.Config.CrossoverProbability) {
			c1, c2 := e.uniformCrossover(p1, p2)
			offspring = append(offspring, c1, c2)
		} else {
			offspring = append(offspring, p1.Clone(), p2.Clone())
		}
	}
	return offspring
}

func (e *Engine) uniformCrossover(p1, p2 *models.Individual) (*models.Individual, *models.Individual) {
	maxLen := len(p1.Plants)
	if len(p2.Plants) > maxLen {
		maxLen = len(p2.Plants)
	}

	child1 := models.NewIndividual(p1.Dimensions)
	child2 := models.NewIndividual(p1.Dimensions)

	for i := 0; i < maxLen; i++ {
		var gene1, gene2 *models.PlantInstance
		if i < len(p1.Plants) {
			gene1 = p1.Plants[i]
		}
		if i < len(p2.Plants) {
			gene2 = p2.Plants[i]
		}

		if e.RNG.Bool(0.5) {
			if gene1 != nil {
				child1.Plants = append(child1.Plants, gene1.Clone())
			}
			if gene2 != nil {
				child2.Plants = append(child2.Plants, gene2.Clone())
			}
		} else {
			if gene2 != nil {
				child1.Plants = append(child1.Plants, gene2.Clone())
			}
			if gene1 != nil {
				child2.Plants = append(child2.Plants, gene1.Clone())
			}
		}
	}

	return child1, child2
}

// Mutate applies the swap, insert, delete, and relocate operators to ind
// in place, in that order, per spec §4.5 step 3.
func (e *Engine) Mutate(ind *models.Individual) {
	e.mutateSwap(ind)
	e.mutateInsert(ind)
	e.mutateDelete(ind)
	e.mutateRelocate(ind)
}

// mutateSwap exchanges two random instances' list positions. This has no
// geometric effect since positions travel with the instance object; kept
// for genome-list diversity, per spec §9.
func (e *Engine) mutateSwap(ind *models.Individual) {
	if !e.RNG.Bool(e.Config.MutationRate) {
		return
	}
	if len(ind.Plants) < 2 {
		return
	}
	i := e.RNG.Intn(len(ind.Plants))
	j := e.RNG.Intn(len(ind.Plants))
	ind.Plants[i], ind.Plants[j] = ind.Plants[j], ind.Plants[i]
}

const insertMaxInstanceMultiplier = 3
const insertMaxTries = 30

func (e *Engine) mutateInsert(ind *models.Individual) {
	if !e.RNG.Bool(e.Config.InsertionRate) {
		return
	}
	if len(e.Pool) == 0 {
		return
	}
	if len(ind.Plants) >= insertMaxInstanceMultiplier*e.Config.MaxSpecies {
		return
	}
	plant := e.Pool[e.RNG.Intn(len(e.Pool))]
	e.tryPlace(ind, plant, insertMaxTries)
}

const deleteMinInstances = 2

func (e *Engine) mutateDelete(ind *models.Individual) {
	if !e.RNG.Bool(e.Config.DeletionRate) {
		return
	}
	if len(ind.Plants) <= deleteMinInstances {
		return
	}
	idx := e.RNG.Intn(len(ind.Plants))
	ind.Plants = append(ind.Plants[:idx], ind.Plants[idx+1:]...)
}

const relocateMaxTries = 20

func (e *Engine) mutateRelocate(ind *models.Individual) {
	relocateRate := 0.5 * e.Config.MutationRate
	if !e.RNG.Bool(relocateRate) {
		return
	}
	if len(ind.Plants) == 0 {
		return
	}
	idx := e.RNG.Intn(len(ind.Plants))
	target := ind.Plants[idx]
	plant := target.Plant

	rest := make([]*models.PlantInstance, 0, len(ind.Plants)-1)
	for i, p := range ind.Plants {
		if i != idx {
			rest = append(rest, p)
		}
	}

	trial := &models.Individual{Dimensions: ind.Dimensions, Plants: rest}
	placed := e.tryPlace(trial, plant, relocateMaxTries)
	if placed == nil {
		return
	}
	placed.Rotation = target.Rotation
	placed.Status = target.Status
	placed.PlantedAt = target.PlantedAt
	ind.Plants = trial.Plants
}
