package models

import (
	"github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// Metrics holds the six fitness sub-scores and the aggregated fitness for
// one Individual, as produced by the fitness evaluator.
type Metrics struct {
	CEE     float64 `json:"cee"`
	PSRNT   float64 `json:"psrnt"`
	EH      float64 `json:"eh"`
	UE      float64 `json:"ue"`
	CS      float64 `json:"cs"`
	BSN     float64 `json:"bsn"`
	Fitness float64 `json:"fitness"`
}

// Validate checks that every sub-score and the aggregated fitness lie
// within [0, 1], returning an EvaluationError otherwise.
func (m *Metrics) Validate() error {
	checks := map[string]float64{
		"cee": m.CEE, "psrnt": m.PSRNT, "eh": m.EH,
		"ue": m.UE, "cs": m.CS, "bsn": m.BSN, "fitness": m.Fitness,
	}
	for name, v := range checks {
		if v < 0 || v > 1 {
			return errors.NewError(constants.ErrEvaluation, "metric out of range", map[string]interface{}{
				"metric": name, "value": v,
			})
		}
	}
	return nil
}

// Weights is the six-metric per-objective weight row (spec §4.4). Each row
// must sum to 1.
type Weights struct {
	CEE   float64 `json:"cee"`
	PSRNT float64 `json:"psrnt"`
	EH    float64 `json:"eh"`
	UE    float64 `json:"ue"`
	CS    float64 `json:"cs"`
	BSN   float64 `json:"bsn"`
}

// WeightsByObjective returns the canonical weight row for the given
// objective, per the fitness aggregation table.
func WeightsByObjective(objective constants.Objective) Weights {
	switch objective {
	case constants.ObjectiveMedicinal:
		return Weights{CEE: 0.20, PSRNT: 0.35, EH: 0.10, UE: 0.10, CS: 0.10, BSN: 0.15}
	case constants.ObjectiveSostenible:
		return Weights{CEE: 0.20, PSRNT: 0.15, EH: 0.30, UE: 0.10, CS: 0.10, BSN: 0.15}
	case constants.ObjectiveOrnamental:
		return Weights{CEE: 0.15, PSRNT: 0.30, EH: 0.10, UE: 0.20, CS: 0.10, BSN: 0.15}
	default: // alimenticio
		return Weights{CEE: 0.15, PSRNT: 0.40, EH: 0.15, UE: 0.10, CS: 0.10, BSN: 0.10}
	}
}

// Sum returns the sum of the six weight components, used to validate that
// a row sums to 1.
func (w Weights) Sum() float64 {
	return w.CEE + w.PSRNT + w.EH + w.UE + w.CS + w.BSN
}

// Apply computes the weighted-sum fitness from a set of sub-scores.
func (w Weights) Apply(m Metrics) float64 {
	return w.CEE*m.CEE + w.PSRNT*m.PSRNT + w.EH*m.EH + w.UE*m.UE + w.CS*m.CS + w.BSN*m.BSN
}
