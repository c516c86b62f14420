// Package genetic evolves a population of candidate layouts: heuristic
// initialization, tournament selection, uniform crossover, four mutation
// operators, and generational replacement with elitism, grounded on the
// planner engine's spatial feasibility and fitness-evaluation rules.
package genetic

import (
	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/fitness"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/rng"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// maxPlacementAreaFraction caps initializer/insert usedArea at this
// fraction of maxArea, per spec §4.5 phase 1.
const maxPlacementAreaFraction = 0.85

// Engine drives one evolution run: initialization, the generation loop,
// and final top-K selection.
type Engine struct {
	Pool        []*models.Plant
	Constraints models.Constraints
	Config      models.GAConfig
	Objective   constants.Objective
	Index       *compatibility.Index
	Evaluator   *fitness.Evaluator
	RNG         *rng.Source
}

// NewEngine builds an Engine ready to Run. source is the single random
// stream the engine draws every decision from; callers that also drew
// request-normalization defaults from the same seed should share one
// rng.Source so the whole request replays deterministically.
func NewEngine(pool []*models.Plant, constraints models.Constraints, cfg models.GAConfig, objective constants.Objective, index *compatibility.Index, source *rng.Source) *Engine {
	return &Engine{
		Pool:        pool,
		Constraints: constraints,
		Config:      cfg,
		Objective:   objective,
		Index:       index,
		Evaluator:   fitness.NewEvaluator(index),
		RNG:         source,
	}
}
