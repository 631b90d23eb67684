package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"quiethelp/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewProfileRepo(dir)
	require.NoError(t, err)
	ctx := context.Background()

	missing, err := repo.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.SaveProfile(ctx, domain.UserProfile{UserID: 1, Program: "Pedagogy", Semester: "3"}))

	got, err := repo.GetProfile(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, "Pedagogy", got.Program)
	assert.Equal(t, "3", got.Semester)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestProfileRepo_OverwriteDoesNotMerge(t *testing.T) {
	repo, err := NewProfileRepo(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, repo.SaveProfile(ctx, domain.UserProfile{UserID: 7, Program: "Pedagogy", Semester: "3"}))
	require.NoError(t, repo.SaveProfile(ctx, domain.UserProfile{UserID: 7, Program: "Cyber Security", Semester: "5"}))
	require.NoError(t, repo.SaveProfile(ctx, domain.UserProfile{UserID: 8, Program: "Pedagogy", Semester: "1"}))

	got, err := repo.GetProfile(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Cyber Security", got.Program)
	assert.Equal(t, "5", got.Semester)

	other, err := repo.GetProfile(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, "Pedagogy", other.Program)
}

func TestProfileRepo_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	repo, err := NewProfileRepo(dir)
	require.NoError(t, err)
	require.NoError(t, repo.SaveProfile(ctx, domain.UserProfile{UserID: 42, Program: "AI & Robotics", Semester: "8"}))

	reopened, err := NewProfileRepo(dir)
	require.NoError(t, err)
	got, err := reopened.GetProfile(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "AI & Robotics", got.Program)

	// No temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, ProfilesFile, entries[0].Name())
}

func TestProfileRepo_CorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProfilesFile), []byte("{not json"), 0o644))

	repo, err := NewProfileRepo(dir)
	require.NoError(t, err)

	_, err = repo.GetProfile(context.Background(), 1)
	assert.Error(t, err)

	err = repo.SaveProfile(context.Background(), domain.UserProfile{UserID: 1, Program: "Pedagogy", Semester: "1"})
	assert.Error(t, err)
}

func TestProfileRepo_CancelledContext(t *testing.T) {
	repo, err := NewProfileRepo(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = repo.SaveProfile(ctx, domain.UserProfile{UserID: 1, Program: "Pedagogy", Semester: "1"})
	assert.ErrorIs(t, err, context.Canceled)
}
