package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vovakirdan/math-arcade/internal/errors"
	"github.com/vovakirdan/math-arcade/internal/identity"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/registry"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

const maxScoreLimit = 100

// SubmitScoreRequest is the body of POST /api/rpc/submit_score.
type SubmitScoreRequest struct {
	UserID string `json:"user_id"`
	GameID string `json:"game_id"`
	Score  int    `json:"score"`
}

// SubmitScoreResponse reports the gems earned by a submission.
type SubmitScoreResponse struct {
	GemsEarned int `json:"gems_earned"`
}

// GemsResponse is the body of GET /api/users/{id}/gems.
type GemsResponse struct {
	UserID string `json:"user_id"`
	Gems   int    `json:"gems"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	if !registry.Exists(game) {
		handleError(w, r, errors.NewNotFoundError("game", game))
		return
	}

	tiers, err := s.Backend.Tiers(r.Context(), game)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if tiers == nil {
		tiers = []levels.LevelConfig{}
	}
	writeJSON(w, http.StatusOK, tiers)
}

func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	var req SubmitScoreRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	switch {
	case !identity.Valid(req.UserID):
		handleError(w, r, errors.NewValidationError("user_id", "must be a UUID"))
		return
	case !registry.Exists(req.GameID):
		handleError(w, r, errors.NewValidationError("game_id", "unknown game"))
		return
	case req.Score < 0:
		handleError(w, r, errors.NewValidationError("score", "must be >= 0"))
		return
	}

	gems, err := s.Backend.SubmitScore(r.Context(), req.UserID, req.GameID, req.Score)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SubmitScoreResponse{GemsEarned: gems})
}

func (s *Server) handleGems(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if !identity.Valid(userID) {
		handleError(w, r, errors.NewValidationError("id", "must be a UUID"))
		return
	}

	gems, err := s.Backend.Gems(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, GemsResponse{UserID: userID, Gems: gems})
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	if !registry.Exists(game) {
		handleError(w, r, errors.NewNotFoundError("game", game))
		return
	}

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			handleError(w, r, errors.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = min(n, maxScoreLimit)
	}

	filter := storage.ScoreFilter{GameID: game, Limit: limit}
	if user := r.URL.Query().Get("user"); user != "" {
		if !identity.Valid(user) {
			handleError(w, r, errors.NewValidationError("user", "must be a UUID"))
			return
		}
		filter.UserID = user
	}

	entries, err := s.Backend.TopScores(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if entries == nil {
		entries = []storage.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
