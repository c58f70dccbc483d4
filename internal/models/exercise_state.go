package models

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/meltforce/barload/internal/plates"
)

// DefaultLastWeight is the work weight shown for an exercise with no history.
const DefaultLastWeight = plates.BarbellWeight

// ExerciseState is the remembered input for one exercise: the last work
// weight and which plates were checked, keyed by plate label ("2.5").
type ExerciseState struct {
	Exercise   string          `json:"exercise"`
	LastWeight float64         `json:"last_weight"`
	Plates     map[string]bool `json:"plates"`
	UpdatedAt  time.Time       `json:"updated_at,omitzero"`
}

// PlateKey returns the label a plate is stored under.
func PlateKey(kg float64) string {
	return strconv.FormatFloat(kg, 'f', -1, 64)
}

// DefaultPlates returns the catalog with the default selection checked.
func DefaultPlates() map[string]bool {
	checked := make(map[string]bool, len(plates.DefaultSelection))
	for _, p := range plates.DefaultSelection {
		checked[PlateKey(p)] = true
	}
	m := make(map[string]bool, len(plates.Catalog))
	for _, p := range plates.Catalog {
		k := PlateKey(p)
		m[k] = checked[k]
	}
	return m
}

// DefaultState is the state of an exercise that has never been saved.
func DefaultState(exercise string) ExerciseState {
	return ExerciseState{
		Exercise:   exercise,
		LastWeight: DefaultLastWeight,
		Plates:     DefaultPlates(),
	}
}

// Normalize fills in defaults for a missing or unusable weight or plate map.
// An empty map counts as missing; a selection with nothing checked still
// lists every plate as false.
func (s *ExerciseState) Normalize() {
	if s.LastWeight <= 0 || math.IsNaN(s.LastWeight) || math.IsInf(s.LastWeight, 0) {
		s.LastWeight = DefaultLastWeight
	}
	if len(s.Plates) == 0 {
		s.Plates = DefaultPlates()
	}
}

// SelectedPlates returns the checked plates as an inventory.
func (s ExerciseState) SelectedPlates() (plates.Inventory, error) {
	var weights []float64
	for k, on := range s.Plates {
		if !on {
			continue
		}
		w, err := strconv.ParseFloat(k, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing plate %q: %w", k, err)
		}
		weights = append(weights, w)
	}
	return plates.NewInventory(weights...)
}

// StateFromSelection builds a state with exactly the plates in inv checked.
// Every catalog plate is present in the map; plates outside the catalog are
// added as checked.
func StateFromSelection(exercise string, lastWeight float64, inv plates.Inventory) ExerciseState {
	m := make(map[string]bool, len(plates.Catalog))
	for _, p := range plates.Catalog {
		m[PlateKey(p)] = false
	}
	for _, p := range inv {
		m[PlateKey(p)] = true
	}
	return ExerciseState{Exercise: exercise, LastWeight: lastWeight, Plates: m}
}
