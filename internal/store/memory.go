package store

import (
	"context"

	"github.com/urban-gardening-assistant/planner-engine/internal/models"
	"github.com/urban-gardening-assistant/planner-engine/internal/orchestrator"
)

// MemoryCatalogueStore is an in-memory CatalogueStore double for tests and
// local development.
type MemoryCatalogueStore struct {
	Plants []*models.Plant
}

// ListAll returns every plant held in memory.
func (s *MemoryCatalogueStore) ListAll(ctx context.Context) ([]*models.Plant, error) {
	return s.Plants, nil
}

// FindByID returns the plant with the given id, or nil if absent.
func (s *MemoryCatalogueStore) FindByID(ctx context.Context, id int) (*models.Plant, error) {
	for _, p := range s.Plants {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// MemoryCompatibilityStore is an in-memory CompatibilityStore double.
type MemoryCompatibilityStore struct {
	Entries []models.CompatibilityEntry
}

// LoadAll returns every compatibility entry held in memory.
func (s *MemoryCompatibilityStore) LoadAll(ctx context.Context) ([]models.CompatibilityEntry, error) {
	return s.Entries, nil
}

// MemoryUserProfileStore is an in-memory UserProfile double.
type MemoryUserProfileStore struct {
	Profiles map[string]orchestrator.UserExperienceProfile
}

// GetByID returns the stored profile for userID, or nil if absent.
func (s *MemoryUserProfileStore) GetByID(ctx context.Context, userID string) (*orchestrator.UserExperienceProfile, error) {
	if s.Profiles == nil {
		return nil, nil
	}
	if p, ok := s.Profiles[userID]; ok {
		return &p, nil
	}
	return nil, nil
}

// MemoryNotificationSink is a NotificationSink double that records every
// call it receives, for assertions in tests.
type MemoryNotificationSink struct {
	Sent []MemoryNotification
}

// MemoryNotification records one Send call.
type MemoryNotification struct {
	UserID string
	Title  string
	Body   string
	Data   map[string]interface{}
}

// Send records the call; it never fails.
func (s *MemoryNotificationSink) Send(ctx context.Context, userID, title, body string, data map[string]interface{}) {
	s.Sent = append(s.Sent, MemoryNotification{UserID: userID, Title: title, Body: body, Data: data})
}
