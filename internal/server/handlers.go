package server

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/meltforce/barload/internal/config"
	"github.com/meltforce/barload/internal/planner"
	"github.com/meltforce/barload/internal/plates"
	"github.com/meltforce/barload/internal/warmup"
)

type exerciseInfo struct {
	Name    warmup.Exercise `json:"name"`
	WorkSet string          `json:"work_set"`
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	out := make([]exerciseInfo, 0, len(warmup.Exercises))
	for _, ex := range warmup.Exercises {
		out = append(out, exerciseInfo{Name: ex, WorkSet: warmup.ProgressionFor(ex).WorkSet})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePlates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"bar":       plates.BarbellWeight,
		"catalog":   plates.Catalog,
		"defaults":  plates.DefaultSelection,
		"available": s.inventory,
		"increment": plates.SmallestIncrement(s.inventory),
		"step":      plates.Step(s.inventory),
	})
}

// planResponse is a planner result with the rendered table alongside.
type planResponse struct {
	*planner.Result
	Table [][]string `json:"table"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	exercise, _ := warmup.ParseExercise(q.Get("exercise"))
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}

	weight, err := parseWeight(q.Get("weight"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	inv := s.inventory
	if q.Has("plates") {
		inv, err = parseInventory(q.Get("plates"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	snap := true
	if v := q.Get("snap"); v != "" {
		snap, err = strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid snap parameter"})
			return
		}
	}

	res, err := planner.Build(planner.Input{Exercise: exercise, Weight: weight, Plates: inv, Snap: snap})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, planResponse{Result: res, Table: res.Plan.Rows()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseWeight parses a work weight, mapping anything unusable to the
// planner's invalid-weight error.
func parseWeight(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, planner.ErrInvalidWeight
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, planner.ErrInvalidWeight
	}
	return w, nil
}

func parseInventory(s string) (plates.Inventory, error) {
	weights, err := config.ParsePlateList(s)
	if err != nil {
		return nil, err
	}
	inv, err := plates.NewInventory(weights...)
	if err != nil {
		return nil, err
	}
	return inv, nil
}
