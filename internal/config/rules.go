package config

import (
	"time"

	"github.com/vovakirdan/math-arcade/internal/session"
)

// Game returns the tuning for code, falling back to DefaultGameConfig.
func (c GamesConfig) Game(code string) GameConfig {
	if g, ok := c.Games[code]; ok {
		return g
	}
	return DefaultGameConfig()
}

// Rules converts the tuning of code into session rules, adjusted for a
// difficulty preset.
func (c GamesConfig) Rules(code string, preset DifficultyPreset) session.Rules {
	g := c.Game(code)
	rules := session.Rules{
		GameID:          code,
		StreakThreshold: g.StreakThreshold,
		Hearts:          g.Hearts,
		Clock: session.ClockConfig{
			Mode:      clockMode(g.Clock.Mode),
			Tick:      ms(g.Clock.TickMS),
			Decrement: ms(g.Clock.DecrementMS),
			Durations: durations(g.Clock.DurationsMS),
			Bonus:     ms(g.Clock.BonusMS),
		},
		Reward:        reward(g.Reward),
		GameOverDelay: ms(g.GameOverDelayMS),
		Reveal:        ms(g.RevealMS),
	}
	ApplyPreset(&rules, preset)
	return rules
}

func clockMode(mode string) session.ClockMode {
	if mode == ClockBonus {
		return session.ClockBonus
	}
	return session.ClockCountdown
}

func reward(r RewardConfig) session.RewardFunc {
	base := r.Base
	if base <= 0 {
		base = 1
	}
	switch r.Type {
	case RewardTime:
		return session.TimeReward(base, r.Bonus)
	case RewardStreak:
		return session.StreakReward(base, r.Bonus)
	default:
		return session.FlatReward(base)
	}
}

func durations(vals []int) []time.Duration {
	out := make([]time.Duration, 0, len(vals))
	for _, v := range vals {
		out = append(out, ms(v))
	}
	return out
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
