// Package identity provides the stable per-player user ID. A stored ID
// is reused when it is a well-formed UUID; otherwise a fresh random one
// is generated and persisted.
package identity

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var uuidV4 = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// Valid reports whether id has the UUID layout accepted for user IDs.
func Valid(id string) bool {
	return uuidV4.MatchString(id)
}

// Store persists one user ID.
type Store interface {
	// Load returns the stored ID, or "" when nothing is stored.
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, id string) error
}

// Provider hands out the user ID for one player. It is safe for
// concurrent use and returns the same ID for its lifetime.
type Provider struct {
	store Store
	log   *log.Logger

	mu sync.Mutex
	id string
}

// NewProvider creates a provider. A nil store keeps the ID in memory only.
func NewProvider(store Store, logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.Default()
	}
	return &Provider{store: store, log: logger.WithPrefix("identity")}
}

// UserID returns the stored ID or creates one. It never fails: storage
// errors are logged and the generated ID is still used.
func (p *Provider) UserID(ctx context.Context) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.id != "" {
		return p.id
	}

	if p.store != nil {
		stored, err := p.store.Load(ctx)
		stored = strings.TrimSpace(stored)
		switch {
		case err != nil:
			p.log.Warn("cannot load identity", "error", err)
		case Valid(stored):
			p.id = stored
			return p.id
		case stored != "":
			p.log.Info("stored identity is malformed, regenerating")
		}
	}

	p.id = uuid.NewString()
	if p.store != nil {
		if err := p.store.Save(ctx, p.id); err != nil {
			p.log.Warn("cannot persist identity", "error", err)
		}
	}
	return p.id
}
