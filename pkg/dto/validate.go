package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

var validate = validator.New()

// Validate checks the request's struct tags and the category distribution
// percentage sum, returning a ValidationError on the first failure.
func (r *GardenPlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.NewError(constants.ErrValidation, "invalid garden plan request", map[string]interface{}{
			"details": err.Error(),
		})
	}

	if r.CategoryDistribution != nil {
		sum := r.CategoryDistribution.Vegetable + r.CategoryDistribution.Medicinal +
			r.CategoryDistribution.Ornamental + r.CategoryDistribution.Aromatic
		if sum < 99.99 || sum > 100.01 {
			return errors.NewError(constants.ErrValidation, "categoryDistribution percentages must sum to 100", map[string]interface{}{
				"sum": sum,
			})
		}
	}

	return nil
}
