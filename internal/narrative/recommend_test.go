package narrative

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/urban-gardening-assistant/planner-engine/pkg/dto"
)

func TestDescribe_DisabledWhenAPIKeyEmpty(t *testing.T) {
	e := NewEnricher("", nil)
	got := e.Describe(context.Background(), "alimenticio", dto.Solution{})
	assert.Equal(t, "", got)
}

func TestBuildPrompt_IncludesObjectiveAndPlantNames(t *testing.T) {
	sol := dto.Solution{
		Layout: dto.LayoutView{
			Dimensions: dto.DimensionsView{Width: 2, Height: 3},
			Instances: []dto.InstanceView{
				{ID: 1, Name: "tomato"},
				{ID: 2, Name: "basil"},
			},
		},
		Metrics: dto.MetricsView{Fitness: 0.8},
	}

	prompt := buildPrompt("alimenticio", sol)
	assert.Contains(t, prompt, "alimenticio")
	assert.Contains(t, prompt, "tomato")
	assert.Contains(t, prompt, "basil")
}

func TestCacheKey_DiffersByInstancePosition(t *testing.T) {
	sol1 := dto.Solution{Layout: dto.LayoutView{Instances: []dto.InstanceView{{ID: 1, Position: dto.PositionView{X: 0, Y: 0}}}}}
	sol2 := dto.Solution{Layout: dto.LayoutView{Instances: []dto.InstanceView{{ID: 1, Position: dto.PositionView{X: 1, Y: 1}}}}}

	assert.NotEqual(t, cacheKey("alimenticio", sol1), cacheKey("alimenticio", sol2))
}
