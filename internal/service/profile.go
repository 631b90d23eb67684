package service

import (
	"context"
	"fmt"
	"sync"

	"quiethelp/internal/catalog"
	"quiethelp/internal/domain"
	"quiethelp/internal/repository"

	"go.uber.org/zap"
)

// ProfileService handles onboarding and profile lookups
type ProfileService struct {
	repo   repository.ProfileRepository
	logger *zap.Logger

	// Per-user write locks
	locks   map[int64]*sync.Mutex
	locksMu sync.Mutex
}

// NewProfileService creates a new profile service
func NewProfileService(repo repository.ProfileRepository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		repo:   repo,
		logger: logger,
		locks:  make(map[int64]*sync.Mutex),
	}
}

// Get returns the user's profile or nil when not registered
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// Register validates and stores the user's program and semester
func (s *ProfileService) Register(ctx context.Context, userID int64, program, semester string) (*domain.UserProfile, error) {
	if !catalog.HasProgram(program) || !catalog.IsSemester(semester) {
		return nil, fmt.Errorf("%w: %q semester %q", domain.ErrInvalidProfile, program, semester)
	}
	if len(catalog.ClassesFor(program, semester)) == 0 {
		return nil, fmt.Errorf("%w: %q semester %q", domain.ErrInvalidProfile, program, semester)
	}

	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	profile := domain.UserProfile{
		UserID:   userID,
		Program:  program,
		Semester: semester,
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("Profile registered",
		zap.Int64("user_id", userID),
		zap.String("program", program),
		zap.String("semester", semester),
	)

	return &profile, nil
}

// Classes returns the user's profile and its class list. It fails with
// domain.ErrUnregisteredUser or domain.ErrEmptyCatalogEntry.
func (s *ProfileService) Classes(ctx context.Context, userID int64) (*domain.UserProfile, []string, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load profile: %w", err)
	}
	if profile == nil {
		return nil, nil, domain.ErrUnregisteredUser
	}

	classes := catalog.ClassesFor(profile.Program, profile.Semester)
	if len(classes) == 0 {
		return profile, nil, domain.ErrEmptyCatalogEntry
	}

	return profile, classes, nil
}

func (s *ProfileService) userLock(userID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
