package progress

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory Store for tests and throwaway sessions.
type Memory struct {
	mu       sync.RWMutex
	topics   map[string]string
	attempts map[string][]Attempt // oldest first
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		topics:   make(map[string]string),
		attempts: make(map[string][]Attempt),
	}
}

// RecordAttempt logs one run of an exercise.
func (m *Memory) RecordAttempt(_ context.Context, exercise, topic string, score int, d time.Duration) error {
	if !validScore(score) {
		return fmt.Errorf("%w: got %d", ErrBadScore, score)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.topics[exercise]; !ok {
		m.topics[exercise] = topic
	}
	m.attempts[exercise] = append(m.attempts[exercise], Attempt{
		Exercise: exercise,
		Score:    score,
		Duration: d,
		At:       time.Now().UTC(),
	})

	return nil
}

// Attempts returns an exercise's attempts, newest first.
func (m *Memory) Attempts(_ context.Context, exercise string, limit int) ([]Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all, ok := m.attempts[exercise]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExercise, exercise)
	}

	out := make([]Attempt, len(all))
	for i, a := range all {
		out[len(all)-1-i] = a
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}

	return out, nil
}

// Best returns the attempt with the highest score, ties going to the
// faster duration.
func (m *Memory) Best(_ context.Context, exercise string) (Attempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all, ok := m.attempts[exercise]
	if !ok {
		return Attempt{}, fmt.Errorf("%w: %q", ErrUnknownExercise, exercise)
	}
	if len(all) == 0 {
		return Attempt{}, fmt.Errorf("%w: %q", ErrNoAttempts, exercise)
	}

	best := all[0]
	for _, a := range all[1:] {
		if a.Score > best.Score || (a.Score == best.Score && a.Duration < best.Duration) {
			best = a
		}
	}

	return best, nil
}

// Exercises lists per-exercise summaries, sorted by name.
func (m *Memory) Exercises(_ context.Context) ([]ExerciseStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]ExerciseStats, 0, len(m.topics))
	for name, topic := range m.topics {
		stats := ExerciseStats{Name: name, Topic: topic}
		for _, a := range m.attempts[name] {
			stats.Attempts++
			if a.Score > stats.Best {
				stats.Best = a.Score
			}
		}
		out = append(out, stats)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

// Close is a no-op for the memory store.
func (m *Memory) Close() error { return nil }
