package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SequenceFile is the document holding the question counter
const SequenceFile = "question_count.json"

type sequenceRecord struct {
	Count int64 `json:"count"`
}

// SequenceRepo implements repository.SequenceRepository on a JSON document
type SequenceRepo struct {
	path string
	mu   sync.Mutex
}

// NewSequenceRepo creates a sequence repository storing its document in dir
func NewSequenceRepo(dir string) (*SequenceRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &SequenceRepo{path: filepath.Join(dir, SequenceFile)}, nil
}

// NextAndAdvance returns the stored count and durably stores count+1.
// Nothing is returned unless the new value was written.
func (r *SequenceRepo) NextAndAdvance(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n, err := r.load()
	if err != nil {
		return 0, err
	}

	if err := writeJSON(r.path, sequenceRecord{Count: n + 1}); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	return n, nil
}

// Current returns the next value without advancing
func (r *SequenceRepo) Current(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *SequenceRepo) load() (int64, error) {
	var rec sequenceRecord
	found, err := readJSON(r.path, &rec)
	if err != nil {
		return 0, err
	}
	if !found || rec.Count < 1 {
		return 1, nil
	}
	return rec.Count, nil
}
