package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"quiethelp/internal/repository/file"
	"quiethelp/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSequenceService_Next(t *testing.T) {
	tests := []struct {
		name          string
		mockReturn    int64
		mockError     error
		expected      int64
		expectedError bool
	}{
		{
			name:       "allocates",
			mockReturn: 7,
			expected:   7,
		},
		{
			name:          "persistence failure discloses nothing",
			mockReturn:    0,
			mockError:     fmt.Errorf("write failed"),
			expected:      0,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSequenceRepository)
			mockRepo.On("NextAndAdvance", mock.Anything).Return(tt.mockReturn, tt.mockError)

			service := NewSequenceService(mockRepo, testutil.NewTestLogger())

			n, err := service.Next(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, n)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSequenceService_ConcurrentAllocation(t *testing.T) {
	repo, err := file.NewSequenceRepo(t.TempDir())
	require.NoError(t, err)

	service := NewSequenceService(repo, testutil.NewTestLogger())
	ctx := context.Background()

	before, err := service.Current(ctx)
	require.NoError(t, err)

	const calls = 40
	var (
		mu   sync.Mutex
		seen = make(map[int64]bool)
		got  []int64
	)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < calls; i++ {
		g.Go(func() error {
			n, err := service.Next(gctx)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if seen[n] {
				return fmt.Errorf("number %d allocated twice", n)
			}
			seen[n] = true
			got = append(got, n)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, before, got[0])
	assert.Equal(t, before+calls-1, got[len(got)-1])

	after, err := service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+calls, after)
}
