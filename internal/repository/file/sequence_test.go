package file

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSequenceRepo_StartsAtOne(t *testing.T) {
	repo, err := NewSequenceRepo(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	cur, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cur)

	n, err := repo.NextAndAdvance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	cur, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cur)
}

func TestSequenceRepo_ReadsExistingCount(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SequenceFile), []byte(`{"count": 41}`), 0o644))

	repo, err := NewSequenceRepo(dir)
	require.NoError(t, err)

	n, err := repo.NextAndAdvance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(41), n)

	data, err := os.ReadFile(filepath.Join(dir, SequenceFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 42}`, string(data))
}

func TestSequenceRepo_ConcurrentCallsAreUnique(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewSequenceRepo(dir)
	require.NoError(t, err)

	const calls = 50
	var (
		mu  sync.Mutex
		got []int64
	)

	var g errgroup.Group
	for i := 0; i < calls; i++ {
		g.Go(func() error {
			n, err := repo.NextAndAdvance(context.Background())
			if err != nil {
				return err
			}
			mu.Lock()
			got = append(got, n)
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for i, n := range got {
		assert.Equal(t, int64(i+1), n)
	}

	// A restart continues after the last committed value
	reopened, err := NewSequenceRepo(dir)
	require.NoError(t, err)
	n, err := reopened.NextAndAdvance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(calls+1), n)
}

func TestSequenceRepo_WriteFailureReturnsNothing(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewSequenceRepo(dir)
	require.NoError(t, err)

	// A directory in place of the document makes the rename fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, SequenceFile), 0o755))

	n, err := repo.NextAndAdvance(context.Background())
	assert.Error(t, err)
	assert.Zero(t, n)
}
