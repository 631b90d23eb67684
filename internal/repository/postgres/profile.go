package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"quiethelp/internal/domain"
)

// ProfileRepo implements repository.ProfileRepository
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetProfile loads a user's profile
func (r *ProfileRepo) GetProfile(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	var p domain.UserProfile
	query := `SELECT user_id, program, semester, updated_at FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.Program, &p.Semester, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	return &p, nil
}

// SaveProfile upserts the whole profile row in one statement
func (r *ProfileRepo) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	query := `
		INSERT INTO profiles (user_id, program, semester, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET program = EXCLUDED.program, semester = EXCLUDED.semester, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, profile.UserID, profile.Program, profile.Semester); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
