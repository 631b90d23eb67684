package repository

import (
	"context"

	"quiethelp/internal/domain"
)

// ProfileRepository defines profile persistence
type ProfileRepository interface {
	// GetProfile returns nil, nil when the user has no profile
	GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error)
	// SaveProfile replaces the whole profile and returns once it is durable
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
}

// SequenceRepository defines the durable question counter
type SequenceRepository interface {
	// NextAndAdvance returns the current value and durably stores value+1
	NextAndAdvance(ctx context.Context) (int64, error)
	// Current returns the value the next call to NextAndAdvance would return
	Current(ctx context.Context) (int64, error)
}
