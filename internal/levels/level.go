// Package levels provides difficulty tiers for each game and the provider
// that resolves them from a backing store with a built-in fallback.
package levels

import (
	"fmt"
	"sort"
)

// LevelConfig is one difficulty tier.
type LevelConfig struct {
	ID             string `json:"id" yaml:"id,omitempty"`
	Level          int    `json:"level" yaml:"level"`
	NumberRangeMin int    `json:"number_range_min" yaml:"number_range_min"`
	NumberRangeMax int    `json:"number_range_max" yaml:"number_range_max"`
	QuestionCount  int    `json:"question_count" yaml:"question_count"`
}

// Validate checks the tier invariants.
func (l LevelConfig) Validate() error {
	if l.Level < 1 {
		return fmt.Errorf("level %d: level must be >= 1", l.Level)
	}
	if l.NumberRangeMax < l.NumberRangeMin {
		return fmt.Errorf("level %d: number_range_max %d < number_range_min %d",
			l.Level, l.NumberRangeMax, l.NumberRangeMin)
	}
	if l.QuestionCount <= 0 {
		return fmt.Errorf("level %d: question_count must be > 0", l.Level)
	}
	return nil
}

// Normalize validates tiers, returns them sorted by level and rejects
// duplicate levels. The input slice is not modified.
func Normalize(tiers []LevelConfig) ([]LevelConfig, error) {
	out := make([]LevelConfig, len(tiers))
	copy(out, tiers)

	seen := make(map[int]bool, len(out))
	for _, t := range out {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if seen[t.Level] {
			return nil, fmt.Errorf("level %d: duplicate level", t.Level)
		}
		seen[t.Level] = true
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}
