package session

// StreakResult is the tracker state after an event.
type StreakResult struct {
	Streak    int
	LeveledUp bool
}

// StreakTracker counts consecutive correct answers toward a level-up.
type StreakTracker struct {
	threshold int
	streak    int
}

// NewStreakTracker creates a tracker. A threshold below 1 disables
// level-ups.
func NewStreakTracker(threshold int) *StreakTracker {
	return &StreakTracker{threshold: threshold}
}

// Streak returns the current count.
func (s *StreakTracker) Streak() int { return s.streak }

// Threshold returns the configured level-up threshold.
func (s *StreakTracker) Threshold() int { return s.threshold }

// OnCorrect records a correct answer. canLevelUp tells whether a higher
// level exists; the streak resets to zero when a level-up fires.
func (s *StreakTracker) OnCorrect(canLevelUp bool) StreakResult {
	s.streak++
	if canLevelUp && s.threshold > 0 && s.streak >= s.threshold {
		s.streak = 0
		return StreakResult{Streak: 0, LeveledUp: true}
	}
	return StreakResult{Streak: s.streak}
}

// OnMiss records an incorrect answer or a timeout.
func (s *StreakTracker) OnMiss() StreakResult {
	s.streak = 0
	return StreakResult{}
}

// Reset clears the streak.
func (s *StreakTracker) Reset() { s.streak = 0 }
