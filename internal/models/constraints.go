package models

// CategoryDistribution is a 4-tuple of desired percentages across the four
// plant type categories, summing to 100 when supplied.
type CategoryDistribution struct {
	Vegetable float64 `json:"vegetable"`
	Medicinal float64 `json:"medicinal"`
	Aromatic  float64 `json:"aromatic"`
	Ornamental float64 `json:"ornamental"`
}

// Constraints bounds the Genetic Algorithm's search: resource ceilings and
// optional candidate-pool restrictions.
type Constraints struct {
	MaxArea                     float64                `json:"maxArea"`
	MaxWaterWeekly               float64                `json:"maxWaterWeekly"`
	MaxBudget                    *float64               `json:"maxBudget,omitempty"`
	DesiredCategoryDistribution  *CategoryDistribution  `json:"desiredCategoryDistribution,omitempty"`
	DesiredPlantIDs               []int                  `json:"desiredPlantIds,omitempty"`
}

// GAConfig parameterizes the Genetic Algorithm's evolution loop.
type GAConfig struct {
	PopulationSize       int     `json:"populationSize"`
	MaxGenerations       int     `json:"maxGenerations"`
	CrossoverProbability float64 `json:"crossoverProbability"`
	MutationRate         float64 `json:"mutationRate"`
	InsertionRate        float64 `json:"insertionRate"`
	DeletionRate         float64 `json:"deletionRate"`
	TournamentK          int     `json:"tournamentK"`
	EliteCount           int     `json:"eliteCount"`
	Patience             int     `json:"patience"`
	ConvergenceThreshold float64 `json:"convergenceThreshold"`
	TimeoutMs            int64   `json:"timeoutMs"`
	Seed                 *int64  `json:"seed,omitempty"`
	MaxSpecies           int     `json:"maxSpecies"`
}

// DefaultGAConfig returns the engine's baseline GA configuration, used when
// the orchestrator does not override individual fields.
func DefaultGAConfig() GAConfig {
	return GAConfig{
		PopulationSize:       100,
		MaxGenerations:       150,
		CrossoverProbability: 0.8,
		MutationRate:         0.15,
		InsertionRate:        0.10,
		DeletionRate:         0.05,
		TournamentK:          3,
		EliteCount:           2,
		Patience:             20,
		ConvergenceThreshold: 0.0001,
		TimeoutMs:            30000,
		MaxSpecies:           5,
	}
}
