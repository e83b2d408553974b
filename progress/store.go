package progress

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the practice log.
var (
	// ErrUnknownExercise is returned when an exercise was never attempted.
	ErrUnknownExercise = errors.New("progress: unknown exercise")

	// ErrNoAttempts is returned by Best for an exercise with no attempts.
	ErrNoAttempts = errors.New("progress: no attempts recorded")

	// ErrBadScore is returned for scores outside 0..100.
	ErrBadScore = errors.New("progress: score must be within 0..100")

	// ErrBadSchema is returned when an existing database file carries an
	// unsupported schema version.
	ErrBadSchema = errors.New("progress: unsupported schema version")
)

// Attempt is one recorded practice run.
type Attempt struct {
	Exercise string
	Score    int // 0..100
	Duration time.Duration
	At       time.Time
}

// ExerciseStats summarizes all attempts of one exercise.
type ExerciseStats struct {
	Name     string
	Topic    string
	Attempts int
	Best     int // highest score seen
}

// Store is the practice-log interface.
//
// Better is defined as higher score, faster duration breaking ties.
type Store interface {
	// RecordAttempt logs one run of an exercise, registering the exercise
	// under topic on first sight. Score must be within 0..100.
	RecordAttempt(ctx context.Context, exercise, topic string, score int, d time.Duration) error

	// Attempts returns an exercise's attempts, newest first.
	// limit <= 0 returns all. Unknown exercises yield ErrUnknownExercise.
	Attempts(ctx context.Context, exercise string, limit int) ([]Attempt, error)

	// Best returns the best attempt of an exercise.
	Best(ctx context.Context, exercise string) (Attempt, error)

	// Exercises lists per-exercise summaries, sorted by name.
	Exercises(ctx context.Context) ([]ExerciseStats, error)

	// Close releases resources.
	Close() error
}

// validScore reports whether s is a legal score.
func validScore(s int) bool { return s >= 0 && s <= 100 }
