package testutil

import (
	"time"

	"quiethelp/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestProfile creates a test profile
func NewTestProfile(userID int64, program, semester string) *domain.UserProfile {
	return &domain.UserProfile{
		UserID:    userID,
		Program:   program,
		Semester:  semester,
		UpdatedAt: time.Now(),
	}
}
