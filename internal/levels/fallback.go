package levels

import "fmt"

type tierRange struct{ min, max, count int }

// Built-in tiers used whenever the store cannot supply any.
var fallbackRanges = map[string][3]tierRange{
	"calculator":       {{1, 10, 10}, {5, 50, 15}, {10, 100, 20}},
	"find_operator":    {{1, 10, 10}, {2, 20, 15}, {5, 50, 20}},
	"missing_number":   {{1, 10, 10}, {5, 30, 15}, {10, 60, 20}},
	"fast_calc":        {{1, 10, 20}, {5, 25, 25}, {10, 50, 30}},
	"mental_sequence":  {{1, 5, 8}, {1, 9, 10}, {5, 20, 12}},
	"matching_cards":   {{2, 10, 6}, {5, 20, 8}, {10, 40, 10}},
	"math_grid":        {{1, 9, 8}, {5, 20, 10}, {10, 50, 12}},
	"square_root":      {{1, 10, 10}, {5, 15, 15}, {10, 25, 20}},
	"picture_equation": {{1, 5, 8}, {2, 10, 10}, {5, 15, 12}},
	"magic_triangle":   {{1, 6, 3}, {1, 9, 4}, {5, 20, 5}},
	"number_pyramid":   {{1, 5, 3}, {1, 10, 4}, {5, 20, 5}},
}

var genericRanges = [3]tierRange{{1, 10, 10}, {5, 50, 15}, {10, 100, 20}}

// Fallback returns the hardcoded three-tier set for gameCode. Unknown
// codes get a generic set.
func Fallback(gameCode string) []LevelConfig {
	ranges, ok := fallbackRanges[gameCode]
	if !ok {
		ranges = genericRanges
	}
	out := make([]LevelConfig, 0, len(ranges))
	for i, r := range ranges {
		out = append(out, LevelConfig{
			ID:             fmt.Sprintf("fallback-%s-%d", gameCode, i+1),
			Level:          i + 1,
			NumberRangeMin: r.min,
			NumberRangeMax: r.max,
			QuestionCount:  r.count,
		})
	}
	return out
}
