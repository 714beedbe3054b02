package levels

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// Store is a backing source of tiers keyed by game code. An unknown code
// or an empty list is not an error.
type Store interface {
	Tiers(ctx context.Context, gameCode string) ([]LevelConfig, error)
}

// Provider resolves tiers for a game. Fetch never fails: any store error,
// empty result or invalid record yields the game's fallback tiers.
type Provider struct {
	store Store
	log   *log.Logger
}

// NewProvider creates a provider. A nil store always yields fallbacks.
func NewProvider(store Store, logger *log.Logger) *Provider {
	if logger == nil {
		logger = log.Default()
	}
	return &Provider{store: store, log: logger.WithPrefix("levels")}
}

var errEmpty = errors.New("no tiers stored")

// Fetch returns tiers for gameCode ordered by level. A single attempt is
// made against the store.
func (p *Provider) Fetch(ctx context.Context, gameCode string) []LevelConfig {
	tiers, err := p.fetch(ctx, gameCode)
	if err != nil {
		if errors.Is(err, errEmpty) {
			p.log.Debug("using fallback tiers", "game", gameCode)
		} else {
			p.log.Warn("tier fetch failed, using fallback", "game", gameCode, "error", err)
		}
		return Fallback(gameCode)
	}
	return tiers
}

func (p *Provider) fetch(ctx context.Context, gameCode string) ([]LevelConfig, error) {
	if p.store == nil {
		return nil, errEmpty
	}
	tiers, err := p.store.Tiers(ctx, gameCode)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, errEmpty
	}
	return Normalize(tiers)
}
