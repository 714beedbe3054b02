package config

import (
	"math"
	"time"

	"github.com/vovakirdan/math-arcade/internal/session"
)

// TimeScaleForPreset returns the multiplier applied to clock durations.
func TimeScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.7
	default:
		return 1.0
	}
}

// ApplyPreset modifies rules based on a difficulty preset. Easy gives more
// time, hard gives less and fixed never leaves the first level.
func ApplyPreset(rules *session.Rules, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		rules.StreakThreshold = 0
	}

	scale := TimeScaleForPreset(preset)
	if scale == 1.0 {
		return
	}
	scaled := make([]time.Duration, len(rules.Clock.Durations))
	for i, d := range rules.Clock.Durations {
		scaled[i] = scaleDuration(d, scale, rules.Clock.Tick)
	}
	rules.Clock.Durations = scaled
}

// scaleDuration multiplies d and rounds to whole ticks so the countdown
// lands exactly on zero.
func scaleDuration(d time.Duration, scale float64, tick time.Duration) time.Duration {
	if tick <= 0 {
		tick = session.DefaultTick
	}
	ticks := math.Round(float64(d) * scale / float64(tick))
	return time.Duration(math.Max(1, ticks)) * tick
}
