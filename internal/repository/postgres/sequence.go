package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SequenceRepo implements repository.SequenceRepository on a single-row table
type SequenceRepo struct {
	db *sql.DB
}

// NewSequenceRepo creates a new sequence repository
func NewSequenceRepo(db *sql.DB) *SequenceRepo {
	return &SequenceRepo{db: db}
}

// NextAndAdvance increments the counter and returns the value before the
// increment. A missing row counts as 1.
func (r *SequenceRepo) NextAndAdvance(ctx context.Context) (int64, error) {
	var n int64
	query := `
		INSERT INTO question_sequence (id, next_value)
		VALUES (1, 2)
		ON CONFLICT (id)
		DO UPDATE SET next_value = question_sequence.next_value + 1
		RETURNING next_value - 1
	`
	if err := r.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	return n, nil
}

// Current returns the next value without advancing
func (r *SequenceRepo) Current(ctx context.Context) (int64, error) {
	var n int64
	query := `SELECT next_value FROM question_sequence WHERE id = 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&n)

	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query sequence: %w", err)
	}
	return n, nil
}
