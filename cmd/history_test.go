package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/boarding-sim/sim/policy"
	"github.com/inference-sim/boarding-sim/storage"
)

func newHistoryRepo(t *testing.T) *storage.EpisodeRepository {
	t.Helper()
	db, err := storage.InitSQLite(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := storage.NewEpisodeRepository(db)
	for i, reward := range []float64{2.5, 9.75} {
		require.NoError(t, repo.Save(context.Background(), &policy.EpisodeResult{
			ID: []string{"first", "second"}[i], Policy: "random", NumRows: 3, SeatsPerRow: 2,
			TotalReward: reward, Releases: []int{},
		}))
	}
	return repo
}

func TestWriteHistory_List(t *testing.T) {
	repo := newHistoryRepo(t)
	var buf bytes.Buffer

	require.NoError(t, writeHistory(context.Background(), &buf, repo, 10, "", 0, 0))

	out := buf.String()
	assert.Contains(t, out, "=== Episode History (2) ===")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "reward=9.75")
}

func TestWriteHistory_Best(t *testing.T) {
	repo := newHistoryRepo(t)
	var buf bytes.Buffer

	require.NoError(t, writeHistory(context.Background(), &buf, repo, 10, "random", 3, 2))

	assert.Contains(t, buf.String(), "=== Best Episode ===")
	assert.Contains(t, buf.String(), "second")
	assert.NotContains(t, buf.String(), "first")
}

func TestWriteHistory_Best_NoMatch(t *testing.T) {
	repo := newHistoryRepo(t)
	var buf bytes.Buffer

	require.NoError(t, writeHistory(context.Background(), &buf, repo, 10, "front-to-back", 3, 2))

	assert.Contains(t, buf.String(), "No stored front-to-back episodes on a 3x2 cabin")
}
