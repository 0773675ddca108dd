package store_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/consensys/groth16-agg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *store.Store {
	s, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndGetRun(t *testing.T) {
	s := openTestStore(t)

	id, err := s.InsertRun(store.Run{
		N:         16,
		NumInputs: 1,
		ProofID:   "deadbeef",
		Executor:  "in-process",
		ElapsedMs: 42,
		Verified:  true,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	run, err := s.GetRun(id)
	require.NoError(t, err)
	assert.Equal(t, 16, run.N)
	assert.Equal(t, 1, run.NumInputs)
	assert.Equal(t, "deadbeef", run.ProofID)
	assert.Equal(t, "in-process", run.Executor)
	assert.Equal(t, int64(42), run.ElapsedMs)
	assert.True(t, run.Verified)
	assert.False(t, run.CreatedAt.IsZero())
}

// A directory is not a valid database file; Open must fail cleanly
func TestOpenBadPath(t *testing.T) {
	_, err := store.Open(t.TempDir())
	assert.Error(t, err)
}

func TestGetRunUnknown(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetRun(999)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)

	for i := 1; i <= 3; i++ {
		_, err := s.InsertRun(store.Run{N: i, ProofID: "p", Executor: "in-process", Verified: true})
		require.NoError(t, err)
	}

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, 3, runs[0].N)
	assert.Equal(t, 1, runs[2].N)

	limited, err := s.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

// Reopening the same database must not re-run migrations
func TestReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := store.Open(path)
	require.NoError(t, err)
	_, err = s.InsertRun(store.Run{N: 1, ProofID: "p", Executor: "in-process", Verified: true})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.ListRuns(10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
