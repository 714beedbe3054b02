package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/api"
	"github.com/vovakirdan/math-arcade/internal/identity"
	"github.com/vovakirdan/math-arcade/internal/platform/tui"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arcade over SSH and the score API over HTTP",
	Long: `Starts two listeners backed by the local database:

  - an SSH server where every connection gets the game menu
  - an HTTP API that remote clients use for tiers, scores and gems

Pass an empty address to disable either listener.

Examples:
  arcade serve
  arcade serve --ssh :2222 --http :8080
  arcade serve --http ""`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", env.SSHAddr, "SSH listen address")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", env.HTTPAddr, "HTTP API listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "SSH host key path (default ~/.arcade/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", tui.DefaultSSHServerConfig().IdleTimeout, "close idle SSH connections after this long")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: both --ssh and --http are empty")
	}

	b, err := openBackend(false, true)
	if err != nil {
		return err
	}
	defer b.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	running := 0

	if flagHTTPAddr != "" {
		srv := api.NewServer(b.store, b.logger)
		running++
		go func() {
			if err := srv.ListenAndServe(ctx, flagHTTPAddr); err != nil {
				errCh <- fmt.Errorf("http: %w", err)
				return
			}
			errCh <- nil
		}()
	}

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = flagIdleTimeout
		store := b.store
		identities := func(user string) identity.Store {
			return storage.IdentitySlot{Store: store, Name: "ssh:" + user}
		}
		srv, err := tui.NewSSHServer(cfg, b.services, b.scores, identities, b.logger)
		if err != nil {
			return fmt.Errorf("ssh: %w", err)
		}
		running++
		go func() {
			if err := srv.ListenAndServe(ctx); err != nil {
				errCh <- fmt.Errorf("ssh: %w", err)
				return
			}
			errCh <- nil
		}()
	}

	var firstErr error
	for i := 0; i < running; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			// Take the other listener down too.
			stop()
		}
	}
	b.logger.Info("server stopped")
	return firstErr
}
