package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/math-arcade/internal/config"
	"github.com/vovakirdan/math-arcade/internal/core"
	_ "github.com/vovakirdan/math-arcade/internal/games/all"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/session"
	"github.com/vovakirdan/math-arcade/internal/testutil"
	"github.com/vovakirdan/math-arcade/internal/testutil/mocks"
)

const userID = "3d2c1b0a-9f8e-4d7c-8b6a-5f4e3d2c1b0a"

func newServices(tiers *mocks.MockTierStore, ledger *mocks.MockLedger) *core.Services {
	s := &core.Services{
		Games:     config.DefaultGamesConfig(),
		Preset:    config.DifficultyNormal,
		Scheduler: testutil.NewManualScheduler(),
	}
	if tiers != nil {
		s.Tiers = tiers
	}
	if ledger != nil {
		s.Ledger = ledger
	}
	return s
}

func TestNewSessionUnknownGame(t *testing.T) {
	_, err := newServices(nil, nil).NewSession(context.Background(), core.SessionOptions{GameID: "chess"})
	assert.Error(t, err)
}

func TestNewSessionUsesStoredTiers(t *testing.T) {
	tiers := new(mocks.MockTierStore)
	tiers.On("Tiers", mock.Anything, "calculator").Return([]levels.LevelConfig{
		{ID: "c1", Level: 1, NumberRangeMin: 3, NumberRangeMax: 4, QuestionCount: 5},
	}, nil)

	sess, err := newServices(tiers, nil).NewSession(context.Background(),
		core.SessionOptions{GameID: "calculator", UserID: userID, Seed: 7})
	require.NoError(t, err)
	defer sess.Machine.Close()

	snap := sess.Machine.Snapshot()
	assert.Equal(t, session.PhaseTutorial, snap.Phase)
	assert.Equal(t, 1, snap.LevelCount)
	assert.Equal(t, "c1", snap.Level.ID)
	assert.Equal(t, "calculator", sess.Game.ID())
	assert.Nil(t, sess.Reconciler, "no ledger, no reconciler")
}

func TestNewSessionFallsBackWhenStoreFails(t *testing.T) {
	tiers := new(mocks.MockTierStore)
	tiers.On("Tiers", mock.Anything, "math_grid").Return(nil, errors.New("offline"))

	sess, err := newServices(tiers, nil).NewSession(context.Background(),
		core.SessionOptions{GameID: "math_grid", Seed: 1})
	require.NoError(t, err)
	defer sess.Machine.Close()

	assert.Equal(t, levels.Fallback("math_grid")[0], sess.Machine.Snapshot().Level)
}

func TestSessionSubmitsToLedgerOnBackExit(t *testing.T) {
	ledger := new(mocks.MockLedger)
	ledger.On("SubmitScore", mock.Anything, userID, "calculator", 1).Return(1, nil).Once()

	var gems []int
	sess, err := newServices(nil, ledger).NewSession(context.Background(), core.SessionOptions{
		GameID: "calculator",
		UserID: userID,
		Seed:   3,
		OnGems: func(g int) { gems = append(gems, g) },
	})
	require.NoError(t, err)

	require.NoError(t, sess.Machine.Start())
	snap := sess.Machine.Snapshot()
	require.NotNil(t, snap.Puzzle)

	out, err := sess.Machine.Answer(snap.PuzzleID, snap.Puzzle.Solution)
	require.NoError(t, err)
	require.True(t, out.Correct)

	sess.Machine.Exit(nil)
	sess.Reconciler.Wait()

	ledger.AssertExpectations(t)
	assert.Equal(t, []int{1}, gems)
}

type staticGems int

func (g staticGems) Gems(context.Context, string) (int, error) { return int(g), nil }

type brokenGems struct{}

func (brokenGems) Gems(context.Context, string) (int, error) { return 0, errors.New("nope") }

func TestGemBalance(t *testing.T) {
	s := newServices(nil, nil)
	_, ok := s.GemBalance(context.Background(), userID)
	assert.False(t, ok)

	s.Gems = staticGems(17)
	gems, ok := s.GemBalance(context.Background(), userID)
	assert.True(t, ok)
	assert.Equal(t, 17, gems)

	s.Gems = brokenGems{}
	_, ok = s.GemBalance(context.Background(), userID)
	assert.False(t, ok)
}
