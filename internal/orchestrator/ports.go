// Package orchestrator normalizes inbound requests, drives the Selector,
// Genetic Algorithm, and Validator, and assembles the ranked response.
package orchestrator

import (
	"context"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
)

// CatalogueStore is the external collaborator owning the plant catalogue.
type CatalogueStore interface {
	ListAll(ctx context.Context) ([]*models.Plant, error)
	FindByID(ctx context.Context, id int) (*models.Plant, error)
}

// CompatibilityStore is the external collaborator owning pairwise
// compatibility entries.
type CompatibilityStore interface {
	LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error)
}

// UserExperienceProfile is the subset of a user's profile the UserProfile
// port reports: the user's experience level.
type UserExperienceProfile struct {
	ExperienceLevel int
}

// UserProfile is an optional external collaborator supplying a user's
// experience level. Plan consults it only when the request's
// UserExperience is 0, which request validation already rejects.
type UserProfile interface {
	GetByID(ctx context.Context, userID string) (*UserExperienceProfile, error)
}

// NotificationSink is an optional, fire-and-forget external collaborator.
// Failures never propagate to the caller.
type NotificationSink interface {
	Send(ctx context.Context, userID, title, body string, data map[string]interface{})
}
