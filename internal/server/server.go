package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meltforce/barload/internal/models"
	"github.com/meltforce/barload/internal/plates"
)

// StateStore persists per-exercise input state. Both *storage.DB and
// *localstate.StateDB satisfy it.
type StateStore interface {
	GetExerciseState(ctx context.Context, exercise string) (models.ExerciseState, error)
	SaveExerciseState(ctx context.Context, st models.ExerciseState) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     StateStore
	inventory plates.Inventory
	log       *slog.Logger
	apiKey    string
	router    chi.Router
}

// New creates a new Server with all routes configured. inventory is used for
// plan requests that do not list plates.
func New(store StateStore, inventory plates.Inventory, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:     store,
		inventory: inventory,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/exercises", s.handleExercises)
	s.router.Get("/api/v1/plates", s.handlePlates)
	s.router.Get("/api/v1/plan", s.handlePlan)
	s.router.Get("/api/v1/state/{exercise}", s.handleGetState)

	// Writes need the API key
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Put("/api/v1/state/{exercise}", s.handlePutState)
	})
}

// SetMCP mounts an MCP streamable HTTP handler at /mcp. Its tools can save
// state, so it sits behind the API key like the other writes.
func (s *Server) SetMCP(h http.Handler) {
	s.router.With(APIKeyAuth(s.apiKey)).Handle("/mcp", h)
}
