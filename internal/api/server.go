// Package api serves the level tiers and the score ledger over HTTP so
// remote arcade clients can share one backend.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

// Backend is the data the API exposes. *storage.Store implements it.
type Backend interface {
	Tiers(ctx context.Context, gameCode string) ([]levels.LevelConfig, error)
	SubmitScore(ctx context.Context, userID, gameID string, score int) (int, error)
	Gems(ctx context.Context, userID string) (int, error)
	TopScores(ctx context.Context, filter storage.ScoreFilter) ([]storage.ScoreEntry, error)
}

var _ Backend = (*storage.Store)(nil)

// Server holds the handler dependencies.
type Server struct {
	Backend Backend
	Logger  *log.Logger
}

// NewServer creates a server. A nil logger uses the default logger.
func NewServer(backend Backend, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{Backend: backend, Logger: logger.WithPrefix("api")}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.loggingMiddleware)
	r.Use(recoveryMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/levels/{game}", s.handleLevels)
		r.Post("/rpc/submit_score", s.handleSubmitScore)
		r.Get("/users/{id}/gems", s.handleGems)
		r.Get("/scores/{game}", s.handleScores)
	})
	return r
}

// ListenAndServe runs the API on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.Logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
