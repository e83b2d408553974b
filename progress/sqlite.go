package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // registers the cgo-free "sqlite" driver
)

// SchemaVersion is the current on-disk layout version.
const SchemaVersion = "1"

// SQLite is a Store backed by an embedded SQLite database.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// NewSQLite opens (or creates) the practice log at path.
// ":memory:" gives a throwaway in-process database.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// database/sql pools connections, but an in-memory SQLite database
	// exists per connection; one connection keeps the schema visible.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS exercises (
			name  TEXT PRIMARY KEY,
			topic TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS attempts (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			exercise    TEXT NOT NULL REFERENCES exercises(name),
			score       INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			at          TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_exercise ON attempts(exercise);
		CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	version, err := s.getMetadata("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}
	switch version {
	case "":
		if err = s.setMetadata("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
		// current layout, nothing to do
	default:
		db.Close()
		return nil, fmt.Errorf("%w: %s (expected %s)", ErrBadSchema, version, SchemaVersion)
	}

	return s, nil
}

// RecordAttempt upserts the exercise and inserts the attempt in one
// transaction, so a failure leaves no half-recorded run behind.
func (s *SQLite) RecordAttempt(ctx context.Context, exercise, topic string, score int, d time.Duration) error {
	if !validScore(score) {
		return fmt.Errorf("%w: got %d", ErrBadScore, score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // no-op once committed

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO exercises (name, topic) VALUES (?, ?)
		ON CONFLICT(name) DO NOTHING
	`, exercise, topic); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO attempts (exercise, score, duration_ms, at)
		VALUES (?, ?, ?, ?)
	`, exercise, score, d.Milliseconds(), time.Now().UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	return tx.Commit()
}

// Attempts returns an exercise's attempts, newest first.
func (s *SQLite) Attempts(ctx context.Context, exercise string, limit int) ([]Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.exerciseExists(ctx, exercise); err != nil {
		return nil, err
	}

	q := `
		SELECT score, duration_ms, at FROM attempts
		WHERE exercise = ? ORDER BY id DESC
	`
	args := []any{exercise}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		a, err := scanAttempt(rows, exercise)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, rows.Err()
}

// Best returns the attempt with the highest score, ties going to the
// faster duration.
func (s *SQLite) Best(ctx context.Context, exercise string) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.exerciseExists(ctx, exercise); err != nil {
		return Attempt{}, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT score, duration_ms, at FROM attempts
		WHERE exercise = ?
		ORDER BY score DESC, duration_ms ASC, id ASC
		LIMIT 1
	`, exercise)

	a, err := scanAttempt(row, exercise)
	if errors.Is(err, sql.ErrNoRows) {
		return Attempt{}, fmt.Errorf("%w: %q", ErrNoAttempts, exercise)
	}
	if err != nil {
		return Attempt{}, err
	}

	return a, nil
}

// Exercises lists per-exercise summaries, sorted by name.
func (s *SQLite) Exercises(ctx context.Context) ([]ExerciseStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT e.name, e.topic, COUNT(a.id), COALESCE(MAX(a.score), 0)
		FROM exercises e LEFT JOIN attempts a ON a.exercise = e.name
		GROUP BY e.name, e.topic
		ORDER BY e.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExerciseStats
	for rows.Next() {
		var st ExerciseStats
		if err = rows.Scan(&st.Name, &st.Topic, &st.Attempts, &st.Best); err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, rows.Err()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// exerciseExists maps an absent exercise to ErrUnknownExercise.
func (s *SQLite) exerciseExists(ctx context.Context, exercise string) error {
	var name string
	err := s.db.QueryRowContext(ctx,
		"SELECT name FROM exercises WHERE name = ?", exercise,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %q", ErrUnknownExercise, exercise)
	}

	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanAttempt decodes one attempts row.
func scanAttempt(r rowScanner, exercise string) (Attempt, error) {
	var (
		score int
		ms    int64
		at    string
	)
	if err := r.Scan(&score, &ms, &at); err != nil {
		return Attempt{}, err
	}

	ts, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return Attempt{}, fmt.Errorf("progress: bad timestamp %q: %w", at, err)
	}

	return Attempt{
		Exercise: exercise,
		Score:    score,
		Duration: time.Duration(ms) * time.Millisecond,
		At:       ts,
	}, nil
}

// getMetadata retrieves a metadata value, empty string when unset.
func (s *SQLite) getMetadata(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return value, nil
}

// setMetadata stores a metadata value.
func (s *SQLite) setMetadata(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)

	return err
}
