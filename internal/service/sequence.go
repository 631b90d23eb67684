package service

import (
	"context"
	"fmt"
	"sync"

	"quiethelp/internal/repository"

	"go.uber.org/zap"
)

// SequenceService hands out question numbers.
//
// All allocations in the process go through one mutex that covers the
// load, increment and persist of the counter. The mutex is released as soon
// as the new value is durable, before anything is sent to the channel, so a
// slow broadcast never blocks other users. Numbers are therefore unique and
// increasing in allocation order, but may reach the channel out of order.
type SequenceService struct {
	repo   repository.SequenceRepository
	logger *zap.Logger
	mu     sync.Mutex
}

// NewSequenceService creates a new sequence service
func NewSequenceService(repo repository.SequenceRepository, logger *zap.Logger) *SequenceService {
	return &SequenceService{
		repo:   repo,
		logger: logger,
	}
}

// Next allocates the next question number
func (s *SequenceService) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.repo.NextAndAdvance(ctx)
	if err != nil {
		s.logger.Error("Failed to advance question sequence", zap.Error(err))
		return 0, fmt.Errorf("allocate question number: %w", err)
	}

	s.logger.Debug("Question number allocated", zap.Int64("number", n))
	return n, nil
}

// Current returns the number the next allocation would produce
func (s *SequenceService) Current(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Current(ctx)
}
