// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStoreCreatesDirectoryAndSchema(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "history")
	s, err := NewStore(dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, dbFile))
	assert.NoError(t, err)
}

func TestBeginRunAndRecordFiles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runID, err := s.BeginRun(ctx)
	require.NoError(t, err)
	require.NotZero(t, runID)

	require.NoError(t, s.RecordFile(ctx, runID, "docs/a.md", 4, 3, StatusOK))
	require.NoError(t, s.RecordFile(ctx, runID, "docs/b.md", 0, 0, StatusSkipped))
	require.NoError(t, s.RecordFile(ctx, runID, "docs/c.md", 2, 0, StatusFailed))

	files, err := s.RunFiles(ctx, runID)
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, "docs/a.md", files[0].Path, "files come back in processing order")
	assert.Equal(t, 4, files[0].Violations)
	assert.Equal(t, 3, files[0].Fixes)
	assert.Equal(t, StatusOK, files[0].Status)
	assert.NotEmpty(t, files[0].ProcessedAt)
	assert.Equal(t, StatusFailed, files[2].Status)
}

func TestRecentRunsAggregates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.BeginRun(ctx)
	require.NoError(t, err)
	require.NoError(t, s.RecordFile(ctx, first, "docs/a.md", 4, 3, StatusOK))
	require.NoError(t, s.RecordFile(ctx, first, "docs/b.md", 1, 0, StatusFailed))

	second, err := s.BeginRun(ctx)
	require.NoError(t, err)

	runs, err := s.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first. A run without files still appears, with zero counts.
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, 0, runs[0].Files)

	assert.Equal(t, first, runs[1].ID)
	assert.Equal(t, 2, runs[1].Files)
	assert.Equal(t, 5, runs[1].Violations)
	assert.Equal(t, 3, runs[1].Fixes)
	assert.Equal(t, 1, runs[1].Failed)
}

func TestRecentRunsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.BeginRun(ctx)
		require.NoError(t, err)
	}

	runs, err := s.RecentRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	// Non-positive limits fall back to the default of ten.
	runs, err = s.RecentRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 5)
}

func TestRunFilesUnknownRun(t *testing.T) {
	s := newTestStore(t)

	files, err := s.RunFiles(context.Background(), 424242)
	require.NoError(t, err)
	assert.Empty(t, files)
}
