package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"quiethelp/internal/domain"
)

// ProfilesFile is the document holding all profiles
const ProfilesFile = "user_data.json"

type profileRecord struct {
	Program   string    `json:"major"`
	Semester  string    `json:"semester"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileRepo implements repository.ProfileRepository on a JSON document.
// Every save rewrites the whole document, so saves are serialized here.
type ProfileRepo struct {
	path string
	mu   sync.RWMutex
}

// NewProfileRepo creates a profile repository storing its document in dir
func NewProfileRepo(dir string) (*ProfileRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &ProfileRepo{path: filepath.Join(dir, ProfilesFile)}, nil
}

// GetProfile loads a user's profile
func (r *ProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	rec, ok := records[strconv.FormatInt(userID, 10)]
	if !ok {
		return nil, nil
	}

	return &domain.UserProfile{
		UserID:    userID,
		Program:   rec.Program,
		Semester:  rec.Semester,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// SaveProfile replaces the user's record and rewrites the document
func (r *ProfileRepo) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	records[strconv.FormatInt(profile.UserID, 10)] = profileRecord{
		Program:   profile.Program,
		Semester:  profile.Semester,
		UpdatedAt: time.Now().UTC(),
	}

	if err := writeJSON(r.path, records); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}

func (r *ProfileRepo) load() (map[string]profileRecord, error) {
	records := make(map[string]profileRecord)
	if _, err := readJSON(r.path, &records); err != nil {
		return nil, err
	}
	return records, nil
}
