package testutil

import (
	"context"

	"quiethelp/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockProfileRepository is a mock for ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockSequenceRepository is a mock for SequenceRepository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextAndAdvance(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) Current(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockBroadcaster is a mock for service.Broadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) SendText(ctx context.Context, destination, text string) error {
	args := m.Called(ctx, destination, text)
	return args.Error(0)
}

func (m *MockBroadcaster) SendPhoto(ctx context.Context, destination, fileID, caption string) error {
	args := m.Called(ctx, destination, fileID, caption)
	return args.Error(0)
}
