package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	"github.com/vovakirdan/math-arcade/internal/identity"
	"github.com/vovakirdan/math-arcade/internal/platform/tui"
	"github.com/vovakirdan/math-arcade/internal/remote"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

// identityPath holds the local player's ID.
var identityPath = filepath.Join("~", ".arcade", "user_id")

// backend is what a command runs against: the local database or a
// remote arcade API.
type backend struct {
	services *core.Services
	scores   tui.ScoreSource
	store    *storage.Store
	remote   *remote.Client
	logger   *log.Logger
	logFile  *os.File
}

// openBackend configures logging, loads the tuning and connects to the
// score backend. Interactive commands log to ~/.arcade/arcade.log so the
// terminal stays clean. When requireLocal is set the local database must
// open; otherwise a failure degrades to playing without recording.
func openBackend(interactive, requireLocal bool) (*backend, error) {
	b := &backend{}
	b.logger, b.logFile = setupLogger(interactive)

	games, err := config.LoadGames(flagConfig)
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("cannot load games config: %w", err)
	}

	b.services = &core.Services{
		Games:  games,
		Preset: config.DifficultyPreset(flagDifficulty),
		Logger: b.logger,
	}

	if flagRemote != "" && !requireLocal {
		b.remote = remote.New(flagRemote, b.logger)
		b.services.Tiers = b.remote
		b.services.Ledger = b.remote
		b.services.Gems = b.remote
		b.scores = b.remote
		b.logger.Info("using remote backend", "url", flagRemote)
		return b, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		if requireLocal {
			b.Close()
			return nil, fmt.Errorf("cannot open database: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		b.logger.Warn("playing without a database", "error", err)
		return b, nil
	}

	b.store = store
	b.services.Tiers = store
	b.services.Ledger = store
	b.services.Gems = store
	b.scores = store
	return b, nil
}

// Close releases the database and the log file.
func (b *backend) Close() {
	if b.store != nil {
		b.store.Close()
	}
	if b.logFile != nil {
		b.logFile.Close()
	}
}

// userID returns the local player's persistent ID.
func (b *backend) userID(ctx context.Context) string {
	return identity.NewProvider(identity.FileStore{Path: identityPath}, b.logger).UserID(ctx)
}

func setupLogger(interactive bool) (*log.Logger, *os.File) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var out io.Writer = os.Stderr
	var file *os.File
	if interactive {
		out = io.Discard
		if f, err := openLogFile(); err == nil {
			out, file = f, f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	log.SetDefault(logger)
	return logger, file
}

func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// runtimeConfig sizes the TUI from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.Seed = flagSeed
	return cfg
}
