package mcp

import (
	"context"

	"github.com/meltforce/barload/internal/localstate"
	"github.com/meltforce/barload/internal/models"
	"github.com/meltforce/barload/internal/storage"
)

// StateSource abstracts where exercise state lives. *storage.DB (server),
// *localstate.StateDB (local file) and HTTPClient (remote via REST API) all
// satisfy it.
type StateSource interface {
	GetExerciseState(ctx context.Context, exercise string) (models.ExerciseState, error)
	SaveExerciseState(ctx context.Context, st models.ExerciseState) error
}

var (
	_ StateSource = (*storage.DB)(nil)
	_ StateSource = (*localstate.StateDB)(nil)
)
