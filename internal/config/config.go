// Package config provides YAML-based engine tuning for every game and the
// environment settings of the arcade binary.
package config

// GamesConfig holds engine tuning keyed by game code.
type GamesConfig struct {
	Games map[string]GameConfig `yaml:"games"`
}

// GameConfig is the per-game tuning of the session engine.
type GameConfig struct {
	StreakThreshold int          `yaml:"streak_threshold"`
	Hearts          bool         `yaml:"hearts"`
	Clock           ClockConfig  `yaml:"clock"`
	Reward          RewardConfig `yaml:"reward"`
	GameOverDelayMS int          `yaml:"game_over_delay_ms"`
	RevealMS        int          `yaml:"reveal_ms"`
}

// ClockConfig defines the session clock.
type ClockConfig struct {
	Mode        string `yaml:"mode"` // "countdown" or "bonus"
	TickMS      int    `yaml:"tick_ms"`
	DecrementMS int    `yaml:"decrement_ms"`
	DurationsMS []int  `yaml:"durations_ms"` // per level index, last repeats
	BonusMS     int    `yaml:"bonus_ms"`
}

// RewardConfig defines points per correct answer.
type RewardConfig struct {
	Type  string `yaml:"type"` // "flat", "time" or "streak"
	Base  int    `yaml:"base"`
	Bonus int    `yaml:"bonus"`
}

// Clock modes and reward types accepted in YAML.
const (
	ClockCountdown = "countdown"
	ClockBonus     = "bonus"

	RewardFlat   = "flat"
	RewardTime   = "time"
	RewardStreak = "streak"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables level progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ValidPreset reports whether preset is a known difficulty. The empty
// preset means normal.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
