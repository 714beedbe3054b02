package session_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/puzzle"
	"github.com/vovakirdan/math-arcade/internal/session"
	"github.com/vovakirdan/math-arcade/internal/testutil"
	"github.com/vovakirdan/math-arcade/internal/testutil/mocks"
)

const userID = "0b8f1c9e-5d2a-4c1e-9a7b-3f6e2d1c0a9b"

type harness struct {
	m      *session.Machine
	sched  *testutil.ManualScheduler
	ledger *mocks.MockLedger
	rec    *session.Reconciler
	gems   []int
}

func threeLevels() []levels.LevelConfig {
	return []levels.LevelConfig{
		{ID: "l1", Level: 1, NumberRangeMin: 1, NumberRangeMax: 10, QuestionCount: 10},
		{ID: "l2", Level: 2, NumberRangeMin: 5, NumberRangeMax: 50, QuestionCount: 10},
		{ID: "l3", Level: 3, NumberRangeMin: 10, NumberRangeMax: 100, QuestionCount: 10},
	}
}

// oneGen asks "1 = ?" at every level.
var oneGen = puzzle.GeneratorFunc(func(_ *rand.Rand, _, _ int) puzzle.Instance {
	return puzzle.Instance{Kind: puzzle.KindInput, Prompt: "1 = ?", Solution: []int{1}}
})

func countdownRules() session.Rules {
	return session.Rules{
		GameID:          "calculator",
		StreakThreshold: 5,
		Hearts:          true,
		Clock: session.ClockConfig{
			Mode:      session.ClockCountdown,
			Tick:      100 * time.Millisecond,
			Durations: []time.Duration{time.Second, 800 * time.Millisecond},
		},
		Reward:        session.FlatReward(1),
		GameOverDelay: time.Second,
	}
}

func newHarness(t *testing.T, rules session.Rules, gen puzzle.Generator, tiers []levels.LevelConfig) *harness {
	t.Helper()
	h := &harness{
		sched:  testutil.NewManualScheduler(),
		ledger: new(mocks.MockLedger),
	}
	h.rec = session.NewReconciler(h.ledger, userID, rules.GameID, nil)
	m, err := session.New(session.Options{
		Rules:      rules,
		Generator:  gen,
		Levels:     tiers,
		Scheduler:  h.sched,
		Reconciler: h.rec,
		Rand:       rand.New(rand.NewSource(1)),
		OnGems:     func(g int) { h.gems = append(h.gems, g) },
	})
	require.NoError(t, err)
	t.Cleanup(m.Close)
	h.m = m
	return h
}

func (h *harness) answer(t *testing.T, correct bool) session.Outcome {
	t.Helper()
	v := 0
	if correct {
		v = 1
	}
	out, err := h.m.Answer(h.m.Snapshot().PuzzleID, []int{v})
	require.NoError(t, err)
	return out
}

func TestNewRequiresGenerator(t *testing.T) {
	_, err := session.New(session.Options{Rules: countdownRules()})
	assert.Error(t, err)
}

func TestStartLoadsFirstPuzzle(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())

	snap := h.m.Snapshot()
	assert.Equal(t, session.PhaseTutorial, snap.Phase)
	assert.Nil(t, snap.Puzzle)
	assert.Equal(t, session.MaxHearts, snap.Hearts)

	require.NoError(t, h.m.Start())
	snap = h.m.Snapshot()
	assert.Equal(t, session.PhasePlaying, snap.Phase)
	require.NotNil(t, snap.Puzzle)
	assert.Equal(t, "1 = ?", snap.Puzzle.Prompt)
	assert.Equal(t, time.Second, snap.TimeRemaining)

	assert.ErrorIs(t, h.m.Start(), session.ErrWrongPhase)
}

// Three consecutive timeouts empty the hearts and finish after the delay.
func TestTimeoutsExhaustHearts(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	for want := 2; want >= 0; want-- {
		h.sched.Advance(time.Second)
		assert.Equal(t, want, h.m.Snapshot().Hearts)
	}

	snap := h.m.Snapshot()
	assert.Equal(t, session.PhasePlaying, snap.Phase)
	assert.True(t, snap.Resolved)

	h.sched.Advance(999 * time.Millisecond)
	assert.Equal(t, session.PhasePlaying, h.m.Snapshot().Phase)

	h.sched.Advance(time.Millisecond)
	assert.Equal(t, session.PhaseFinished, h.m.Snapshot().Phase)
	assert.Zero(t, h.sched.Pending())
}

func TestHeartsTrackMisses(t *testing.T) {
	for n := 1; n <= 5; n++ {
		h := newHarness(t, countdownRules(), oneGen, threeLevels())
		require.NoError(t, h.m.Start())

		for i := 0; i < n; i++ {
			snap := h.m.Snapshot()
			if snap.Resolved {
				_, err := h.m.Answer(snap.PuzzleID, []int{0})
				require.NoError(t, err)
				continue
			}
			h.answer(t, false)
		}
		want := session.MaxHearts - n
		if want < 0 {
			want = 0
		}
		assert.Equal(t, want, h.m.Snapshot().Hearts, "after %d misses", n)

		h.sched.Advance(time.Second)
		finished := h.m.Snapshot().Phase == session.PhaseFinished
		assert.Equal(t, want == 0, finished, "after %d misses", n)
	}
}

func TestStreakThresholdAdvancesLevel(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	for i := 0; i < 4; i++ {
		out := h.answer(t, true)
		assert.True(t, out.Correct)
		assert.False(t, out.LeveledUp)
	}
	out := h.answer(t, true)
	assert.True(t, out.LeveledUp)

	snap := h.m.Snapshot()
	assert.Equal(t, 1, snap.LevelIndex)
	assert.Equal(t, 0, snap.CorrectStreak)
	assert.Equal(t, 5, snap.Score)
	assert.Equal(t, 800*time.Millisecond, snap.TimeRemaining)
}

func TestLevelIndexCapped(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	last := 0
	for i := 0; i < 40; i++ {
		h.answer(t, true)
		idx := h.m.Snapshot().LevelIndex
		assert.GreaterOrEqual(t, idx, last)
		assert.LessOrEqual(t, idx, 2)
		last = idx
	}
	snap := h.m.Snapshot()
	assert.Equal(t, 2, snap.LevelIndex)
	assert.Equal(t, 30, snap.CorrectStreak)
}

func TestMissResetsStreak(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	h.answer(t, true)
	h.answer(t, true)
	h.answer(t, true)
	assert.Equal(t, 3, h.m.Snapshot().CorrectStreak)

	h.answer(t, false)
	assert.Equal(t, 0, h.m.Snapshot().CorrectStreak)

	h.answer(t, true)
	h.sched.Advance(time.Second)
	snap := h.m.Snapshot()
	assert.Equal(t, 0, snap.CorrectStreak)
	assert.Equal(t, 1, snap.Hearts)
	assert.Equal(t, 4, snap.Score)
}

func TestStaleAnswerIgnored(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	staleID := h.m.Snapshot().PuzzleID
	h.sched.Advance(time.Second)
	assert.Equal(t, 2, h.m.Snapshot().Hearts)

	out, err := h.m.Answer(staleID, []int{1})
	require.NoError(t, err)
	assert.False(t, out.Accepted)
	assert.Equal(t, 0, h.m.Snapshot().Score)
}

func TestAnswerBeatsPendingTick(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	h.sched.Advance(900 * time.Millisecond)
	h.answer(t, true)
	// The tick that would have expired the first question is void.
	h.sched.Advance(100 * time.Millisecond)

	snap := h.m.Snapshot()
	assert.Equal(t, session.MaxHearts, snap.Hearts)
	assert.Equal(t, 900*time.Millisecond, snap.TimeRemaining)
}

func TestNoInputAfterLastHeart(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	h.answer(t, false)
	h.answer(t, false)
	out := h.answer(t, false)
	assert.True(t, out.GameOver)

	out = h.answer(t, true)
	assert.False(t, out.Accepted)
	h.sched.Advance(500 * time.Millisecond)
	snap := h.m.Snapshot()
	assert.Equal(t, 0, snap.Hearts)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, session.PhasePlaying, snap.Phase)
}

func TestFinishSubmitsOnce(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	h.ledger.On("SubmitScore", mock.Anything, userID, "calculator", 2).Return(2, nil).Once()
	require.NoError(t, h.m.Start())

	h.answer(t, true)
	h.answer(t, true)
	h.answer(t, false)
	h.answer(t, false)
	h.answer(t, false)
	h.sched.Advance(time.Second)
	require.Equal(t, session.PhaseFinished, h.m.Snapshot().Phase)

	h.rec.Wait()
	backCalled := false
	h.m.Exit(func() { backCalled = true })
	h.rec.Wait()

	assert.True(t, backCalled)
	h.ledger.AssertNumberOfCalls(t, "SubmitScore", 1)
	assert.Equal(t, []int{2}, h.gems)
	assert.Equal(t, 2, h.m.Snapshot().Gems)
}

func TestExitWithZeroScoreSkipsLedger(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())
	h.answer(t, false)

	h.m.Exit(nil)
	h.rec.Wait()

	h.ledger.AssertNotCalled(t, "SubmitScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExitDuringPlaySubmitsAndStopsTimers(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	h.ledger.On("SubmitScore", mock.Anything, userID, "calculator", 1).Return(1, nil).Once()
	require.NoError(t, h.m.Start())
	h.answer(t, true)

	order := []string{}
	h.m.Exit(func() { order = append(order, "back") })
	h.rec.Wait()

	assert.Equal(t, []string{"back"}, order)
	assert.Zero(t, h.sched.Pending())
	h.sched.Advance(10 * time.Second)
	assert.Equal(t, session.MaxHearts, h.m.Snapshot().Hearts)

	_, err := h.m.Answer(h.m.Snapshot().PuzzleID, []int{1})
	assert.ErrorIs(t, err, session.ErrClosed)
	h.ledger.AssertNumberOfCalls(t, "SubmitScore", 1)
}

func TestExitDuringGameOverDelaySubmitsOnce(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	h.ledger.On("SubmitScore", mock.Anything, userID, "calculator", 1).Return(0, nil).Once()
	require.NoError(t, h.m.Start())

	h.answer(t, true)
	h.answer(t, false)
	h.answer(t, false)
	h.answer(t, false)

	h.m.Exit(nil)
	h.sched.Advance(5 * time.Second)
	h.rec.Wait()

	h.ledger.AssertNumberOfCalls(t, "SubmitScore", 1)
	assert.Equal(t, session.PhasePlaying, h.m.Snapshot().Phase)
}

func TestClockInertAfterFinish(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	require.NoError(t, h.m.Start())

	h.sched.Advance(3 * time.Second)
	h.sched.Advance(time.Second)
	snap := h.m.Snapshot()
	require.Equal(t, session.PhaseFinished, snap.Phase)

	h.sched.Advance(5 * time.Second)
	after := h.m.Snapshot()
	assert.Equal(t, snap.TimeRemaining, after.TimeRemaining)
	assert.GreaterOrEqual(t, after.TimeRemaining, time.Duration(0))
	assert.Zero(t, h.sched.Pending())
}

func TestRestartResetsState(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, threeLevels())
	h.ledger.On("SubmitScore", mock.Anything, userID, "calculator", 5).Return(5, nil).Once()
	require.NoError(t, h.m.Start())
	assert.ErrorIs(t, h.m.Restart(), session.ErrWrongPhase)

	for i := 0; i < 5; i++ {
		h.answer(t, true)
	}
	for i := 0; i < 3; i++ {
		h.answer(t, false)
	}
	h.sched.Advance(time.Second)
	h.rec.Wait()

	require.NoError(t, h.m.Restart())
	snap := h.m.Snapshot()
	assert.Equal(t, session.PhaseTutorial, snap.Phase)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, session.MaxHearts, snap.Hearts)
	assert.Equal(t, 0, snap.CorrectStreak)
	assert.Equal(t, 0, snap.LevelIndex)
	assert.False(t, snap.Submitted)

	require.NoError(t, h.m.Start())
	assert.Equal(t, time.Second, h.m.Snapshot().TimeRemaining)
}

func TestBonusClockSession(t *testing.T) {
	rules := session.Rules{
		GameID: "fast_calc",
		Clock: session.ClockConfig{
			Mode:      session.ClockBonus,
			Tick:      100 * time.Millisecond,
			Durations: []time.Duration{2 * time.Second},
			Bonus:     time.Second,
		},
		Reward: session.FlatReward(1),
	}
	h := newHarness(t, rules, oneGen, threeLevels())
	h.ledger.On("SubmitScore", mock.Anything, userID, "fast_calc", 1).Return(1, nil).Once()
	require.NoError(t, h.m.Start())

	h.sched.Advance(time.Second)
	h.answer(t, true)
	assert.Equal(t, 2*time.Second, h.m.Snapshot().TimeRemaining)

	out := h.answer(t, false)
	assert.False(t, out.GameOver)
	assert.Equal(t, session.MaxHearts, h.m.Snapshot().Hearts)
	assert.Equal(t, 2*time.Second, h.m.Snapshot().TimeRemaining)

	h.sched.Advance(2 * time.Second)
	snap := h.m.Snapshot()
	assert.Equal(t, session.PhaseFinished, snap.Phase)
	assert.Equal(t, time.Duration(0), snap.TimeRemaining)

	h.rec.Wait()
	h.ledger.AssertExpectations(t)
}

func TestRevealWindow(t *testing.T) {
	gen := puzzle.GeneratorFunc(func(_ *rand.Rand, _, _ int) puzzle.Instance {
		return puzzle.Instance{
			Prompt:   "What is the result?",
			Memo:     []string{"Start with 1"},
			Reveal:   2 * time.Second,
			Solution: []int{1},
		}
	})
	h := newHarness(t, countdownRules(), gen, threeLevels())
	require.NoError(t, h.m.Start())

	snap := h.m.Snapshot()
	assert.True(t, snap.Revealing)
	out := h.answer(t, true)
	assert.False(t, out.Accepted)

	h.sched.Advance(2 * time.Second)
	snap = h.m.Snapshot()
	assert.False(t, snap.Revealing)
	assert.Equal(t, time.Second, snap.TimeRemaining)
	assert.Equal(t, session.MaxHearts, snap.Hearts)

	out = h.answer(t, true)
	assert.True(t, out.Accepted)
	assert.True(t, h.m.Snapshot().Revealing)
}

func TestEmptyTiersUseFallback(t *testing.T) {
	h := newHarness(t, countdownRules(), oneGen, nil)
	require.NoError(t, h.m.Start())

	snap := h.m.Snapshot()
	assert.Equal(t, 3, snap.LevelCount)
	assert.Equal(t, levels.Fallback("calculator")[0], snap.Level)
	require.NotNil(t, snap.Puzzle)
}

func TestOnChangeReceivesSnapshots(t *testing.T) {
	var phases []session.Phase
	m, err := session.New(session.Options{
		Rules:     countdownRules(),
		Generator: oneGen,
		Scheduler: testutil.NewManualScheduler(),
		OnChange:  func(s session.Snapshot) { phases = append(phases, s.Phase) },
	})
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Start())
	_, err = m.Answer(m.Snapshot().PuzzleID, []int{1})
	require.NoError(t, err)

	assert.Equal(t, []session.Phase{session.PhasePlaying, session.PhasePlaying}, phases)
}
