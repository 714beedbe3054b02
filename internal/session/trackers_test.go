package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/math-arcade/internal/session"
)

func TestStreakLevelsUpAtThreshold(t *testing.T) {
	s := session.NewStreakTracker(3)

	assert.Equal(t, session.StreakResult{Streak: 1}, s.OnCorrect(true))
	assert.Equal(t, session.StreakResult{Streak: 2}, s.OnCorrect(true))
	assert.Equal(t, session.StreakResult{Streak: 0, LeveledUp: true}, s.OnCorrect(true))
	assert.Equal(t, 0, s.Streak())
}

func TestStreakWithoutHigherLevel(t *testing.T) {
	s := session.NewStreakTracker(2)
	s.OnCorrect(false)
	res := s.OnCorrect(false)
	assert.False(t, res.LeveledUp)
	assert.Equal(t, 2, res.Streak)
	assert.Equal(t, 3, s.OnCorrect(false).Streak)
}

func TestStreakResetsOnMiss(t *testing.T) {
	s := session.NewStreakTracker(5)
	s.OnCorrect(true)
	s.OnCorrect(true)
	assert.Equal(t, session.StreakResult{}, s.OnMiss())
	assert.Equal(t, 1, s.OnCorrect(true).Streak)
}

func TestLivesNeverNegative(t *testing.T) {
	l := session.NewLivesTracker()
	assert.Equal(t, session.LivesResult{Hearts: 2}, l.Lose())
	assert.Equal(t, session.LivesResult{Hearts: 1}, l.Lose())
	assert.Equal(t, session.LivesResult{Hearts: 0, GameOver: true}, l.Lose())
	assert.Equal(t, session.LivesResult{Hearts: 0, GameOver: true}, l.Lose())

	l.Reset()
	assert.Equal(t, session.MaxHearts, l.Hearts())
}

func TestRewards(t *testing.T) {
	assert.Equal(t, 3, session.FlatReward(3)(session.RewardContext{}))

	timed := session.TimeReward(1, 4)
	assert.Equal(t, 5, timed(session.RewardContext{Remaining: 10 * time.Second, Duration: 10 * time.Second}))
	assert.Equal(t, 3, timed(session.RewardContext{Remaining: 5 * time.Second, Duration: 10 * time.Second}))
	assert.Equal(t, 1, timed(session.RewardContext{Duration: 10 * time.Second}))
	assert.Equal(t, 5, timed(session.RewardContext{Remaining: 30 * time.Second, Duration: 10 * time.Second}))

	streak := session.StreakReward(2, 3)
	assert.Equal(t, 2, streak(session.RewardContext{Streak: 1}))
	assert.Equal(t, 4, streak(session.RewardContext{Streak: 3}))
	assert.Equal(t, 5, streak(session.RewardContext{Streak: 10}))
}
