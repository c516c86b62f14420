package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/urban-gardening-assistant/planner-engine/internal/compatibility"
	"github.com/urban-gardening-assistant/planner-engine/internal/genetic"
	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/rng"
	"github.com/urban-gardening-assistant/planner-engine/internal/selector"
	"github.com/urban-gardening-assistant/planner-engine/internal/utils/errors"
	"github.com/urban-gardening-assistant/planner-engine/internal/validation"
	"github.com/urban-gardening-assistant/planner-engine/pkg/dto"
)

// Orchestrator normalizes requests, drives Selector -> GA -> Validator, and
// assembles the ranked response, per spec §4.7.
type Orchestrator struct {
	Catalogue    CatalogueStore
	Compatibility CompatibilityStore
	UserProfile  UserProfile
	Notifications NotificationSink
	Logger       *zap.Logger

	index     *compatibility.Index
	catalogue []*models.Plant
}

// New builds an Orchestrator. UserProfile and Notifications may be nil;
// both are optional per spec §6.
func New(catalogueStore CatalogueStore, compatStore CompatibilityStore, userProfile UserProfile, notifications NotificationSink, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		Catalogue:     catalogueStore,
		Compatibility: compatStore,
		UserProfile:   userProfile,
		Notifications: notifications,
		Logger:        log,
	}
}

// Warm loads the catalogue and builds the compatibility index once at
// startup. Both must succeed before the orchestrator accepts requests,
// per spec §5/§7 (CatalogueError is startup-fatal).
func (o *Orchestrator) Warm(ctx context.Context) error {
	plants, err := o.Catalogue.ListAll(ctx)
	if err != nil {
		return errors.WrapError(err, "failed to load catalogue", nil)
	}
	o.catalogue = plants

	entries, err := o.Compatibility.LoadAll(ctx)
	if err != nil {
		return errors.WrapError(err, "failed to load compatibility entries", nil)
	}
	idx, err := compatibility.Build(entries)
	if err != nil {
		return err
	}
	o.index = idx
	return nil
}

// Plan runs one end-to-end planning request: normalize, select, evolve,
// validate, assemble.
func (o *Orchestrator) Plan(ctx context.Context, req *dto.GardenPlanRequest) (*dto.GardenPlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	source := rng.New(req.Seed)

	experience := req.UserExperience
	if o.UserProfile != nil && experience == 0 {
		if profile, err := o.UserProfile.GetByID(ctx, req.UserID); err == nil && profile != nil {
			experience = profile.ExperienceLevel
		}
	}
	req.UserExperience = experience

	plan := Normalize(req, source)

	byID := make(map[int]*models.Plant, len(o.catalogue))
	for _, p := range o.catalogue {
		byID[p.ID] = p
	}

	pool := selector.Select(o.catalogue, selector.Config{
		DesiredPlantIDs: plan.Constraints.DesiredPlantIDs,
		MaxSpecies:      plan.MaxPlantSpecies,
		Objective:       plan.Objective,
		Index:           o.index,
		Season:          plan.Season,
	})

	gaConfig := models.DefaultGAConfig()
	gaConfig.MaxSpecies = plan.MaxPlantSpecies
	gaConfig.Seed = req.Seed

	engine := genetic.NewEngine(pool, plan.Constraints, gaConfig, plan.Objective, o.index, source)
	result, err := engine.Run()
	if err != nil {
		return nil, err
	}

	for _, ind := range result.TopSolutions {
		report := validation.Validate(ind, validation.Input{
			Catalogue:                   byID,
			MaxArea:                     plan.Constraints.MaxArea,
			MaxBudget:                   plan.Constraints.MaxBudget,
			AvailableMaintenanceMinutes: plan.AvailableMaintenanceMinutes,
			Index:                       o.index,
		})
		if o.Logger != nil && !report.IsValid {
			o.Logger.Warn("solution failed validation battery",
				zap.Strings("failed", report.Failed),
				zap.Strings("errors", report.Errors),
			)
		}
	}

	weights := models.WeightsByObjective(plan.Objective)
	solutions := assembleSolutions(result.TopSolutions, byID, o.index, weights, plan.AvailableMaintenanceMinutes)

	executionTimeMs := time.Since(start).Milliseconds()
	metadata := assembleMetadata(result, executionTimeMs, gaConfig.PopulationSize, weights, pool)

	if o.Notifications != nil {
		o.Notifications.Send(ctx, req.UserID, "Garden plan ready", "Your garden plan has been generated.", map[string]interface{}{
			"solutionCount": len(solutions),
		})
	}

	return &dto.GardenPlanResponse{
		Success:   true,
		Solutions: solutions,
		Metadata:  metadata,
	}, nil
}
