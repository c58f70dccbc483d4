package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/barload/internal/models"
)

// GetExerciseState returns the saved state for an exercise, or the default
// state when nothing has been saved yet.
func (db *DB) GetExerciseState(ctx context.Context, exercise string) (models.ExerciseState, error) {
	var (
		lastWeight float64
		raw        []byte
		updated    time.Time
	)
	err := db.Pool.QueryRow(ctx,
		`SELECT last_weight, plates, updated_at FROM exercise_state WHERE exercise = $1`,
		exercise).Scan(&lastWeight, &raw, &updated)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.DefaultState(exercise), nil
	}
	if err != nil {
		return models.ExerciseState{}, fmt.Errorf("querying exercise state: %w", err)
	}
	return decodeState(exercise, lastWeight, raw, updated)
}

// decodeState builds a state from an exercise_state row. Rows created by the
// column defaults hold '{}' plates and normalize to the default selection.
func decodeState(exercise string, lastWeight float64, raw []byte, updated time.Time) (models.ExerciseState, error) {
	st := models.ExerciseState{Exercise: exercise, LastWeight: lastWeight, UpdatedAt: updated}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &st.Plates); err != nil {
			return models.ExerciseState{}, fmt.Errorf("decoding plates for %s: %w", exercise, err)
		}
	}
	st.Normalize()
	return st, nil
}

// encodePlates renders a plate selection for the JSONB column.
func encodePlates(m map[string]bool) (string, error) {
	if m == nil {
		m = map[string]bool{}
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding plates: %w", err)
	}
	return string(raw), nil
}

// SaveExerciseState upserts the state for st.Exercise.
func (db *DB) SaveExerciseState(ctx context.Context, st models.ExerciseState) error {
	raw, err := encodePlates(st.Plates)
	if err != nil {
		return err
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO exercise_state (exercise, last_weight, plates)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (exercise) DO UPDATE
			SET last_weight = EXCLUDED.last_weight, plates = EXCLUDED.plates, updated_at = NOW()
	`, st.Exercise, st.LastWeight, raw)
	if err != nil {
		return fmt.Errorf("saving exercise state: %w", err)
	}
	return nil
}

// EnsureDefaults seeds default state for every exercise that has none.
// Existing rows are left untouched.
func (db *DB) EnsureDefaults(ctx context.Context, exercises []string) error {
	batch := &pgx.Batch{}
	for _, ex := range exercises {
		st := models.DefaultState(ex)
		raw, err := encodePlates(st.Plates)
		if err != nil {
			return err
		}
		batch.Queue(`INSERT INTO exercise_state (exercise, last_weight, plates)
			VALUES ($1, $2, $3::jsonb) ON CONFLICT (exercise) DO NOTHING`,
			ex, st.LastWeight, raw)
	}
	if err := db.Pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seeding exercise state: %w", err)
	}
	return nil
}
