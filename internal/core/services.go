// Package core wires games, tuning, tier stores and the score ledger into
// ready-to-run sessions. The TUI, the SSH server and the CLI share it.
package core

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/registry"
	"github.com/vovakirdan/math-arcade/internal/session"
)

// GemCounter reports a user's gem balance. *storage.Store and
// *remote.Client implement it.
type GemCounter interface {
	Gems(ctx context.Context, userID string) (int, error)
}

// Services bundles the backends sessions are built from. Zero-value
// fields are allowed: a nil Tiers store yields fallback tiers and a nil
// Ledger disables score submission.
type Services struct {
	Tiers  levels.Store
	Ledger session.Ledger
	Gems   GemCounter
	Games  config.GamesConfig
	Preset config.DifficultyPreset
	Logger *log.Logger

	// Scheduler drives session timers; nil uses the wall clock.
	Scheduler session.Scheduler
}

// SessionOptions describe one play session.
type SessionOptions struct {
	GameID string
	UserID string
	Seed   int64

	OnChange func(session.Snapshot)
	OnGems   func(int)
}

// Session is a machine bound to its game and reconciler.
type Session struct {
	Game       registry.Game
	Machine    *session.Machine
	Reconciler *session.Reconciler
}

func (s *Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

// NewSession resolves the game, fetches its tiers and builds a machine in
// the Tutorial phase. Tier fetching never fails; only an unknown game is
// an error.
func (s *Services) NewSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	game, err := registry.Create(opts.GameID)
	if err != nil {
		return nil, err
	}

	tiers := levels.NewProvider(s.Tiers, s.logger()).Fetch(ctx, opts.GameID)

	var rec *session.Reconciler
	if s.Ledger != nil {
		rec = session.NewReconciler(s.Ledger, opts.UserID, opts.GameID, s.logger())
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, err := session.New(session.Options{
		Rules:      s.Games.Rules(opts.GameID, s.Preset),
		Generator:  game,
		Levels:     tiers,
		Scheduler:  s.Scheduler,
		Reconciler: rec,
		Rand:       rand.New(rand.NewSource(seed)),
		Logger:     s.logger(),
		OnChange:   opts.OnChange,
		OnGems:     opts.OnGems,
	})
	if err != nil {
		return nil, fmt.Errorf("core: build session for %s: %w", opts.GameID, err)
	}

	return &Session{Game: game, Machine: m, Reconciler: rec}, nil
}

// GemBalance returns the user's gems, or 0 with ok false when no counter
// is configured or the lookup fails.
func (s *Services) GemBalance(ctx context.Context, userID string) (gems int, ok bool) {
	if s.Gems == nil {
		return 0, false
	}
	gems, err := s.Gems.Gems(ctx, userID)
	if err != nil {
		s.logger().Warn("cannot load gem balance", "error", err)
		return 0, false
	}
	return gems, true
}
