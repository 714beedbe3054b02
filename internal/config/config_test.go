package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/math-arcade/internal/session"
	"gopkg.in/yaml.v3"
)

func embedded(t *testing.T) GamesConfig {
	t.Helper()
	var cfg GamesConfig
	require.NoError(t, yaml.Unmarshal(defaultGamesYAML, &cfg))
	require.NoError(t, cfg.Validate())
	return cfg
}

func TestEmbeddedDefaultsCoverEveryGame(t *testing.T) {
	cfg := embedded(t)
	for _, code := range []string{
		"calculator", "find_operator", "missing_number", "fast_calc",
		"mental_sequence", "matching_cards", "math_grid", "square_root",
		"picture_equation", "magic_triangle", "number_pyramid",
	} {
		g, ok := cfg.Games[code]
		require.True(t, ok, code)
		assert.GreaterOrEqual(t, g.StreakThreshold, 2, code)
		assert.LessOrEqual(t, g.StreakThreshold, 7, code)
		assert.NotEmpty(t, g.Clock.DurationsMS, code)
	}
}

func TestRulesConversion(t *testing.T) {
	cfg := embedded(t)

	calc := cfg.Rules("calculator", DifficultyNormal)
	assert.Equal(t, "calculator", calc.GameID)
	assert.True(t, calc.Hearts)
	assert.Equal(t, 5, calc.StreakThreshold)
	assert.Equal(t, session.ClockCountdown, calc.Clock.Mode)
	assert.Equal(t, 100*time.Millisecond, calc.Clock.Tick)
	assert.Equal(t, []time.Duration{10 * time.Second, 8 * time.Second, 6 * time.Second}, calc.Clock.Durations)
	assert.Equal(t, 1500*time.Millisecond, calc.GameOverDelay)
	assert.Equal(t, 1, calc.Reward(session.RewardContext{}))

	fast := cfg.Rules("fast_calc", DifficultyNormal)
	assert.False(t, fast.Hearts)
	assert.Equal(t, session.ClockBonus, fast.Clock.Mode)
	assert.Equal(t, 2*time.Second, fast.Clock.Bonus)

	tri := cfg.Rules("magic_triangle", DifficultyNormal)
	assert.Equal(t, 10, tri.Reward(session.RewardContext{Streak: 4}))
}

func TestRulesForUnknownGameUseDefault(t *testing.T) {
	rules := GamesConfig{}.Rules("mystery", DifficultyNormal)
	assert.Equal(t, "mystery", rules.GameID)
	assert.Equal(t, 5, rules.StreakThreshold)
	assert.NotEmpty(t, rules.Clock.Durations)
}

func TestApplyPreset(t *testing.T) {
	cfg := embedded(t)

	easy := cfg.Rules("calculator", DifficultyEasy)
	assert.Equal(t, 15*time.Second, easy.Clock.Durations[0])

	hard := cfg.Rules("calculator", DifficultyHard)
	assert.Equal(t, 7*time.Second, hard.Clock.Durations[0])
	assert.Equal(t, 4200*time.Millisecond, hard.Clock.Durations[2])

	fixed := cfg.Rules("calculator", DifficultyFixed)
	assert.Equal(t, 0, fixed.StreakThreshold)
	assert.Equal(t, 10*time.Second, fixed.Clock.Durations[0])
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{"", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		assert.True(t, ValidPreset(p), p)
	}
	assert.False(t, ValidPreset("insane"))
}

func TestLoadGamesCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
games:
  calculator:
    streak_threshold: 2
    hearts: true
    clock: {mode: countdown, durations_ms: [3000]}
    reward: {type: time, base: 1, bonus: 4}
`), 0o644))

	cfg, err := LoadGames(path)
	require.NoError(t, err)
	rules := cfg.Rules("calculator", DifficultyNormal)
	assert.Equal(t, 2, rules.StreakThreshold)
	assert.Equal(t, 5, rules.Reward(session.RewardContext{Remaining: 3 * time.Second, Duration: 3 * time.Second}))

	_, err = LoadGames(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("games:\n  calculator:\n    clock: {mode: sundial}\n"), 0o644))
	_, err = LoadGames(bad)
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("ARCADE_DB", "/tmp/test.db")
	t.Setenv("ARCADE_REMOTE", "http://localhost:8080")
	t.Setenv("ARCADE_SEED", "not-a-number")

	env := LoadEnv()
	assert.Equal(t, "/tmp/test.db", env.DBPath)
	assert.Equal(t, "http://localhost:8080", env.Remote)
	assert.Equal(t, int64(0), env.Seed)
	assert.Equal(t, ":2222", env.SSHAddr)
}
