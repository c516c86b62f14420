package fitness

import (
	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// Evaluator computes and aggregates the six fitness sub-metrics for an
// Individual against the request's resource constraints and objective.
type Evaluator struct {
	Index *compatibility.Index
}

// NewEvaluator builds an Evaluator bound to the given compatibility index.
func NewEvaluator(index *compatibility.Index) *Evaluator {
	return &Evaluator{Index: index}
}

// Evaluate computes every sub-metric for ind and aggregates them into a
// scalar fitness using the objective's weight row. The result is written
// onto ind.Metrics and also returned. Evaluation is pure: calling it twice
// on an unmutated Individual yields identical Metrics.
func (e *Evaluator) Evaluate(ind *models.Individual, constraints models.Constraints, objective constants.Objective) (*models.Metrics, error) {
	m := &models.Metrics{
		CEE:   CEE(ind.Plants, e.Index),
		PSRNT: PSRNT(ind.Plants, constraints.DesiredCategoryDistribution),
		EH:    EH(ind, constraints.MaxWaterWeekly),
		UE:    UE(ind),
		CS:    CS(ind.Plants),
		BSN:   BSN(ind.Plants),
	}

	weights := models.WeightsByObjective(objective)
	if weights.Sum() < 0.999 || weights.Sum() > 1.001 {
		return nil, errors.NewError(constants.ErrEvaluation, "objective weights do not sum to 1", map[string]interface{}{
			"objective": objective, "sum": weights.Sum(),
		})
	}

	m.Fitness = weights.Apply(*m)

	if err := m.Validate(); err != nil {
		return nil, err
	}

	ind.Metrics = m
	return m, nil
}
