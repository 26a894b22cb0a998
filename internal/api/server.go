package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/Ayato964/RunMeMe/internal/metrics"
	"github.com/Ayato964/RunMeMe/internal/scores"
	"github.com/Ayato964/RunMeMe/internal/sequence"
	"github.com/Ayato964/RunMeMe/internal/stages"
)

// Server handles HTTP requests
type Server struct {
	catalog   stages.Catalog
	board     *scores.Board
	sequencer *sequence.Sequencer
	recorder  *metrics.Recorder
	registry  *prom.Registry
	logger    *slog.Logger
}

// NewServer creates a new API server with its collaborators injected.
func NewServer(catalog stages.Catalog, board *scores.Board) *Server {
	registry := prom.NewRegistry()
	return &Server{
		catalog:   catalog,
		board:     board,
		sequencer: sequence.NewSequencer(),
		recorder:  metrics.NewRecorder(registry),
		registry:  registry,
		logger:    slog.Default(),
	}
}

// Routes sets up the HTTP routes
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.CORSMiddleware)
	r.Use(s.LoggingMiddleware)

	// Routes
	r.Post("/scores", s.handleSubmitScore)
	r.Get("/scores", s.handleListScores)
	r.Get("/stage/random", s.handleRandomStages)
	r.Get("/stage/start", s.handleStartStage)
	r.Post("/stage", s.handlePublishStage)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(s.registry))

	return r
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
