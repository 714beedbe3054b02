package session

import "time"

// RewardContext describes the answer being rewarded.
type RewardContext struct {
	// Remaining and Duration are the clock state when the answer landed.
	Remaining time.Duration
	Duration  time.Duration
	// Streak includes the answer being rewarded.
	Streak int
	Level  int
}

// RewardFunc returns the points for a correct answer. Negative results
// are treated as zero.
type RewardFunc func(RewardContext) int

// FlatReward awards a fixed number of points.
func FlatReward(points int) RewardFunc {
	return func(RewardContext) int { return points }
}

// TimeReward awards base plus up to bonus points scaled by the share of
// the clock still remaining.
func TimeReward(base, bonus int) RewardFunc {
	return func(rc RewardContext) int {
		if rc.Duration <= 0 || rc.Remaining <= 0 {
			return base
		}
		share := float64(rc.Remaining) / float64(rc.Duration)
		if share > 1 {
			share = 1
		}
		return base + int(float64(bonus)*share+0.5)
	}
}

// StreakReward awards base plus one point per consecutive correct answer
// after the first, capped at bonus extra points.
func StreakReward(base, bonus int) RewardFunc {
	return func(rc RewardContext) int {
		extra := rc.Streak - 1
		if extra < 0 {
			extra = 0
		}
		if extra > bonus {
			extra = bonus
		}
		return base + extra
	}
}
