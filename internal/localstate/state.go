// Package localstate keeps per-exercise state for the command line tool in a
// SQLite file, so repeated runs remember the last weight and plate selection.
package localstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/meltforce/barload/internal/models"
	_ "modernc.org/sqlite"
)

// StateDB stores exercise state on local disk.
type StateDB struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite state database at dir/state.db.
func Open(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "state.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS exercise_state (
		exercise    TEXT PRIMARY KEY,
		last_weight REAL NOT NULL,
		plates      TEXT NOT NULL,
		updated_at  INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// DefaultDir returns the per-user state directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "barload"), nil
}

// GetExerciseState returns the saved state, or the default when none exists.
func (s *StateDB) GetExerciseState(ctx context.Context, exercise string) (models.ExerciseState, error) {
	st := models.ExerciseState{Exercise: exercise}
	var raw string
	var updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT last_weight, plates, updated_at FROM exercise_state WHERE exercise = ?`,
		exercise,
	).Scan(&st.LastWeight, &raw, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultState(exercise), nil
	}
	if err != nil {
		return models.ExerciseState{}, fmt.Errorf("querying exercise state: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), &st.Plates); err != nil {
		return models.ExerciseState{}, fmt.Errorf("decoding plates for %s: %w", exercise, err)
	}
	st.UpdatedAt = time.Unix(updated, 0).UTC()
	st.Normalize()
	return st, nil
}

// SaveExerciseState records st, replacing any earlier state for the exercise.
func (s *StateDB) SaveExerciseState(ctx context.Context, st models.ExerciseState) error {
	raw, err := json.Marshal(st.Plates)
	if err != nil {
		return fmt.Errorf("encoding plates: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO exercise_state (exercise, last_weight, plates, updated_at) VALUES (?, ?, ?, ?)`,
		st.Exercise, st.LastWeight, string(raw), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("saving exercise state: %w", err)
	}
	return nil
}

// EnsureDefaults seeds default state for exercises that have none.
func (s *StateDB) EnsureDefaults(ctx context.Context, exercises []string) error {
	for _, ex := range exercises {
		st := models.DefaultState(ex)
		raw, err := json.Marshal(st.Plates)
		if err != nil {
			return fmt.Errorf("encoding default plates: %w", err)
		}
		_, err = s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO exercise_state (exercise, last_weight, plates, updated_at) VALUES (?, ?, ?, ?)`,
			ex, st.LastWeight, string(raw), time.Now().Unix(),
		)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", ex, err)
		}
	}
	return nil
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}
