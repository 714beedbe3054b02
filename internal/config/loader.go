package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GamesFile is the config file name looked up in config directories.
const GamesFile = "games.yaml"

// LoadGames loads engine tuning.
// Search order: customPath -> ~/.arcade/configs/games.yaml -> ./configs/games.yaml -> embedded default
func LoadGames(customPath string) (GamesConfig, error) {
	var cfg GamesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(GamesFile); userCfgPath != "" {
		if cfg, ok := readGames(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readGames(filepath.Join("configs", GamesFile)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGamesYAML, &cfg); err != nil {
		return DefaultGamesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readGames(path string) (GamesConfig, bool) {
	var cfg GamesConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate checks every game entry.
func (c GamesConfig) Validate() error {
	for code, g := range c.Games {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("game %s: %w", code, err)
		}
	}
	return nil
}

// Validate checks enum values and ranges.
func (g GameConfig) Validate() error {
	switch g.Clock.Mode {
	case "", ClockCountdown, ClockBonus:
	default:
		return fmt.Errorf("unknown clock mode %q", g.Clock.Mode)
	}
	switch g.Reward.Type {
	case "", RewardFlat, RewardTime, RewardStreak:
	default:
		return fmt.Errorf("unknown reward type %q", g.Reward.Type)
	}
	if g.StreakThreshold < 0 {
		return fmt.Errorf("streak_threshold must be >= 0")
	}
	if g.Clock.Mode == ClockBonus && len(g.Clock.DurationsMS) == 0 {
		return fmt.Errorf("bonus clock needs durations_ms")
	}
	for _, d := range g.Clock.DurationsMS {
		if d < 0 {
			return fmt.Errorf("durations_ms must be >= 0")
		}
	}
	return nil
}
