package progress_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algokata/algokata/progress"
)

// runStoreSuite exercises the full Store contract against any implementation.
func runStoreSuite(t *testing.T, open func(t *testing.T) progress.Store) {
	ctx := context.Background()

	t.Run("RejectsBadScore", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		assert.ErrorIs(t, s.RecordAttempt(ctx, "fib", "sequence", -1, time.Second), progress.ErrBadScore)
		assert.ErrorIs(t, s.RecordAttempt(ctx, "fib", "sequence", 101, time.Second), progress.ErrBadScore)

		_, err := s.Exercises(ctx)
		require.NoError(t, err)
	})

	t.Run("UnknownExercise", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		_, err := s.Attempts(ctx, "ghost", 0)
		assert.ErrorIs(t, err, progress.ErrUnknownExercise)
		_, err = s.Best(ctx, "ghost")
		assert.ErrorIs(t, err, progress.ErrUnknownExercise)
	})

	t.Run("RecordAndList", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		require.NoError(t, s.RecordAttempt(ctx, "fib", "sequence", 60, 90*time.Second))
		require.NoError(t, s.RecordAttempt(ctx, "fib", "sequence", 85, 45*time.Second))
		require.NoError(t, s.RecordAttempt(ctx, "kadane", "arrays", 70, 2*time.Minute))

		// Newest first.
		attempts, err := s.Attempts(ctx, "fib", 0)
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.Equal(t, 85, attempts[0].Score)
		assert.Equal(t, 60, attempts[1].Score)
		assert.Equal(t, "fib", attempts[0].Exercise)
		assert.False(t, attempts[0].At.IsZero(), "timestamps must round-trip")

		// Limit trims from the newest end.
		attempts, err = s.Attempts(ctx, "fib", 1)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		assert.Equal(t, 85, attempts[0].Score)
	})

	t.Run("BestPrefersScoreThenSpeed", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		require.NoError(t, s.RecordAttempt(ctx, "bst", "trees", 80, 60*time.Second))
		require.NoError(t, s.RecordAttempt(ctx, "bst", "trees", 95, 90*time.Second))
		require.NoError(t, s.RecordAttempt(ctx, "bst", "trees", 95, 30*time.Second))
		require.NoError(t, s.RecordAttempt(ctx, "bst", "trees", 90, 10*time.Second))

		best, err := s.Best(ctx, "bst")
		require.NoError(t, err)
		assert.Equal(t, 95, best.Score)
		assert.Equal(t, 30*time.Second, best.Duration, "faster run wins the tie")
	})

	t.Run("ExerciseSummaries", func(t *testing.T) {
		s := open(t)
		defer s.Close()

		require.NoError(t, s.RecordAttempt(ctx, "spiral", "matrix", 40, time.Minute))
		require.NoError(t, s.RecordAttempt(ctx, "spiral", "matrix", 75, time.Minute))
		require.NoError(t, s.RecordAttempt(ctx, "anagram", "strings", 100, 20*time.Second))

		stats, err := s.Exercises(ctx)
		require.NoError(t, err)
		require.Len(t, stats, 2)

		// Sorted by name.
		assert.Equal(t, "anagram", stats[0].Name)
		assert.Equal(t, "strings", stats[0].Topic)
		assert.Equal(t, 1, stats[0].Attempts)
		assert.Equal(t, 100, stats[0].Best)

		assert.Equal(t, "spiral", stats[1].Name)
		assert.Equal(t, 2, stats[1].Attempts)
		assert.Equal(t, 75, stats[1].Best)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) progress.Store {
		return progress.NewMemory()
	})
}

func TestSQLiteStore(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) progress.Store {
		s, err := progress.NewSQLite(filepath.Join(t.TempDir(), "progress.db"))
		require.NoError(t, err)

		return s
	})
}

// TestSQLite_Reopen verifies attempts survive close and reopen.
func TestSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := progress.NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.RecordAttempt(ctx, "fib", "sequence", 88, time.Minute))
	require.NoError(t, s.Close())

	s, err = progress.NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	best, err := s.Best(ctx, "fib")
	require.NoError(t, err)
	assert.Equal(t, 88, best.Score)
	assert.Equal(t, time.Minute, best.Duration)
}

// TestSQLite_InMemory runs the whole suite against ":memory:".
func TestSQLite_InMemory(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) progress.Store {
		s, err := progress.NewSQLite(":memory:")
		require.NoError(t, err)

		return s
	})
}
