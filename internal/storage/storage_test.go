package storage

import (
	"context"
	"errors"
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubestep"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)
	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Reopening is idempotent.
	db2, err := Open(db.Path())
	require.NoError(t, err)
	defer db2.Close()
	v, err = db2.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAttemptRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttemptRepository(db)

	id, err := repo.CreateSolved("UUU", 21, 10, "R U", 2)
	require.NoError(t, err)

	a, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.False(t, a.Failed())
	assert.Equal(t, "UUU", a.Facelets)
	assert.Equal(t, 21, a.Range)
	require.NotNil(t, a.SolutionText)
	assert.Equal(t, "R U", *a.SolutionText)
	require.NotNil(t, a.MoveCount)
	assert.Equal(t, 2, *a.MoveCount)

	id, err = repo.CreateFailed("DDD", 18, 1.5, "timed out")
	require.NoError(t, err)
	a, err = repo.Get(id)
	require.NoError(t, err)
	assert.True(t, a.Failed())
	assert.Nil(t, a.SolutionText)
	assert.Equal(t, 1.5, a.TimeoutSeconds)

	missing, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "DDD", list[0].Facelets, "newest first")
}

func TestScrambleRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	_, err := repo.Create("R U F", false, "ignored")
	require.NoError(t, err)
	_, err = repo.Create("L D", true, "XYZ")
	require.NoError(t, err)

	list, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Applied)
	require.NotNil(t, list[0].FaceletsAfter)
	assert.Equal(t, "XYZ", *list[0].FaceletsAfter)
	assert.False(t, list[1].Applied)
	assert.Nil(t, list[1].FaceletsAfter)
}

func TestPrune(t *testing.T) {
	db := openTestDB(t)
	repo := NewAttemptRepository(db)
	for i := 0; i < 5; i++ {
		_, err := repo.CreateSolved("UUU", 21, 10, "", 0)
		require.NoError(t, err)
	}

	require.NoError(t, db.Prune(2))
	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

type stubSolver struct {
	out string
	err error
}

func (s stubSolver) Solve(context.Context, string, gocube.SolveOptions) (string, error) {
	return s.out, s.err
}

func TestRecorderObservesSession(t *testing.T) {
	db := openTestDB(t)
	opts := gocube.SolveOptions{Range: 20, TimeoutSeconds: 3}
	rec := NewRecorder(db, opts)

	solver := &stubSolver{out: "R2 B"}
	sess := gocube.NewSession(solver,
		gocube.WithSolveOptions(opts),
		gocube.WithMoveApplier(gocube.FaceletApplier{}),
		gocube.WithRandSource(rand.NewPCG(4, 4)),
		gocube.WithObserver(rec.Observe),
	)

	_, err := sess.Scramble()
	require.NoError(t, err)
	require.NoError(t, sess.Solve(context.Background()))
	solver.out, solver.err = "", errors.New("no solution")
	require.Error(t, sess.Solve(context.Background()))
	require.NoError(t, rec.Err())

	attempts, err := NewAttemptRepository(db).List(10)
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	var ok, failed int
	for _, a := range attempts {
		assert.Equal(t, sess.Facelets(), a.Facelets)
		assert.Equal(t, 20, a.Range)
		if a.Failed() {
			failed++
			assert.Contains(t, *a.ErrorText, "no solution")
		} else {
			ok++
			assert.Equal(t, "R2 B", *a.SolutionText)
			assert.Equal(t, 2, *a.MoveCount)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, failed)

	scrambles, err := NewScrambleRepository(db).List(10)
	require.NoError(t, err)
	require.Len(t, scrambles, 1)
	assert.True(t, scrambles[0].Applied)
}

func TestCorruptTimestampIsReported(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`
		INSERT INTO attempts (attempt_id, created_at, facelets, range_limit, timeout_s)
		VALUES ('bad', 'yesterday', 'UUU', 21, 10)
	`)
	require.NoError(t, err)
	_, err = db.Exec(`
		INSERT INTO scrambles (scramble_id, created_at, moves_text, applied)
		VALUES ('bad', 'yesterday', 'R U', 0)
	`)
	require.NoError(t, err)

	_, err = NewAttemptRepository(db).Get("bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yesterday")

	_, err = NewAttemptRepository(db).List(10)
	assert.Error(t, err)

	_, err = NewScrambleRepository(db).List(10)
	assert.Error(t, err)
}
