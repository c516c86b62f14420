package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/urban-gardening-assistant/planner-engine/internal/orchestrator"
)

// userProfileRow is the GORM row backing the user profile table. Only the
// experience level is relevant to the orchestrator's optional collaborator.
type userProfileRow struct {
	UserID          string `gorm:"primaryKey;size:255"`
	ExperienceLevel int
}

func (userProfileRow) TableName() string { return "user_profiles" }

// UserProfileStore is a GORM-backed implementation of the orchestrator's
// optional UserProfile port.
type UserProfileStore struct {
	db *gorm.DB
}

// NewUserProfileStore wraps an established GORM connection.
func NewUserProfileStore(db *gorm.DB) *UserProfileStore {
	return &UserProfileStore{db: db}
}

// GetByID returns the user's experience level, or nil if no profile exists.
func (s *UserProfileStore) GetByID(ctx context.Context, userID string) (*orchestrator.UserExperienceProfile, error) {
	var row userProfileRow
	err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load user profile for user %s", userID)
	}
	return &orchestrator.UserExperienceProfile{ExperienceLevel: row.ExperienceLevel}, nil
}
