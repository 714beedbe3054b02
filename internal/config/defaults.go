package config

import (
	_ "embed"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

// DefaultGameConfig is the tuning used for a game missing from every
// config source.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		StreakThreshold: 5,
		Hearts:          true,
		Clock: ClockConfig{
			Mode:        ClockCountdown,
			TickMS:      100,
			DurationsMS: []int{10000, 8000, 6000},
		},
		Reward:          RewardConfig{Type: RewardFlat, Base: 1},
		GameOverDelayMS: 1500,
	}
}

// DefaultGamesConfig returns the hardcoded configuration, used when the
// embedded YAML cannot be parsed.
func DefaultGamesConfig() GamesConfig {
	return GamesConfig{Games: map[string]GameConfig{}}
}
