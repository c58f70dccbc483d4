package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/barload/internal/models"
	"github.com/meltforce/barload/internal/warmup"
)

// exerciseParam resolves the {exercise} URL parameter, writing a 404 for
// lifts the app does not know.
func exerciseParam(w http.ResponseWriter, r *http.Request) (warmup.Exercise, bool) {
	ex, ok := warmup.ParseExercise(chi.URLParam(r, "exercise"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown exercise"})
		return "", false
	}
	return ex, true
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	ex, ok := exerciseParam(w, r)
	if !ok {
		return
	}
	st, err := s.store.GetExerciseState(r.Context(), string(ex))
	if err != nil {
		s.log.Error("get exercise state", "exercise", ex, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, st)
}

type stateRequest struct {
	LastWeight float64         `json:"last_weight"`
	Plates     map[string]bool `json:"plates"`
}

func (s *Server) handlePutState(w http.ResponseWriter, r *http.Request) {
	ex, ok := exerciseParam(w, r)
	if !ok {
		return
	}

	var req stateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if req.LastWeight < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "last_weight must not be negative"})
		return
	}

	st := models.ExerciseState{Exercise: string(ex), LastWeight: req.LastWeight, Plates: req.Plates}
	st.Normalize()
	if _, err := st.SelectedPlates(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := s.store.SaveExerciseState(r.Context(), st); err != nil {
		s.log.Error("save exercise state", "exercise", ex, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, st)
}
