package session

// MaxHearts is the starting and maximum number of lives.
const MaxHearts = 3

// LivesResult is the tracker state after losing a life.
type LivesResult struct {
	Hearts   int
	GameOver bool
}

// LivesTracker is the error budget of a session.
type LivesTracker struct {
	hearts int
}

// NewLivesTracker creates a tracker holding MaxHearts.
func NewLivesTracker() *LivesTracker {
	return &LivesTracker{hearts: MaxHearts}
}

// Hearts returns the remaining lives.
func (l *LivesTracker) Hearts() int { return l.hearts }

// Lose removes one life. GameOver is set once hearts reach zero; further
// calls keep reporting it without going negative.
func (l *LivesTracker) Lose() LivesResult {
	if l.hearts > 0 {
		l.hearts--
	}
	return LivesResult{Hearts: l.hearts, GameOver: l.hearts == 0}
}

// Reset restores MaxHearts.
func (l *LivesTracker) Reset() { l.hearts = MaxHearts }
