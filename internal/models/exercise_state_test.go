package models

import (
	"reflect"
	"testing"

	"github.com/meltforce/barload/internal/plates"
)

// TestDefaultState verifies a fresh exercise starts at the bar with the
// default plates checked and the small change plates unchecked.
func TestDefaultState(t *testing.T) {
	st := DefaultState("squat")
	if st.LastWeight != 20 {
		t.Errorf("LastWeight = %v, want 20", st.LastWeight)
	}
	if len(st.Plates) != len(plates.Catalog) {
		t.Errorf("len(Plates) = %d, want %d", len(st.Plates), len(plates.Catalog))
	}
	for _, k := range []string{"25", "20", "15", "10", "5", "2.5", "1.25"} {
		if !st.Plates[k] {
			t.Errorf("plate %s unchecked, want checked", k)
		}
	}
	for _, k := range []string{"1", "0.75", "0.5", "0.25"} {
		if st.Plates[k] {
			t.Errorf("plate %s checked, want unchecked", k)
		}
	}
}

// TestSelectedPlates verifies checked labels become a descending inventory.
func TestSelectedPlates(t *testing.T) {
	st := ExerciseState{Plates: map[string]bool{"2.5": true, "25": true, "10": false, "0.25": true}}
	inv, err := st.SelectedPlates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := plates.Inventory{25, 2.5, 0.25}
	if !reflect.DeepEqual(inv, want) {
		t.Errorf("SelectedPlates() = %v, want %v", inv, want)
	}

	bad := ExerciseState{Plates: map[string]bool{"heavy": true}}
	if _, err := bad.SelectedPlates(); err == nil {
		t.Error("expected error for non-numeric plate label")
	}
}

// TestStateFromSelectionRoundTrip verifies a selection survives conversion
// to the stored map and back.
func TestStateFromSelectionRoundTrip(t *testing.T) {
	inv := plates.Inventory{20, 5, 1.25, 0.5}
	st := StateFromSelection("bench", 62.5, inv)
	got, err := st.SelectedPlates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, inv) {
		t.Errorf("round trip = %v, want %v", got, inv)
	}
	if st.Plates["25"] {
		t.Error("plate 25 checked, want unchecked")
	}
}

// TestNormalize verifies unusable stored values fall back to defaults.
func TestNormalize(t *testing.T) {
	st := ExerciseState{Exercise: "row"}
	st.Normalize()
	if st.LastWeight != 20 {
		t.Errorf("LastWeight = %v, want 20", st.LastWeight)
	}
	if !reflect.DeepEqual(st.Plates, DefaultPlates()) {
		t.Errorf("Plates = %v, want defaults", st.Plates)
	}

	empty := ExerciseState{Exercise: "row", LastWeight: 50, Plates: map[string]bool{}}
	empty.Normalize()
	if !reflect.DeepEqual(empty.Plates, DefaultPlates()) {
		t.Errorf("empty Plates = %v, want defaults", empty.Plates)
	}

	kept := ExerciseState{LastWeight: 70, Plates: map[string]bool{"5": true}}
	kept.Normalize()
	if kept.LastWeight != 70 || len(kept.Plates) != 1 {
		t.Errorf("Normalize changed valid state: %+v", kept)
	}
}
