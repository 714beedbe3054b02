package storage

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vovakirdan/math-arcade/internal/levels"
)

type LedgerSuite struct {
	suite.Suite
	ctx   context.Context
	store *Store
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := Open(filepath.Join(s.T().TempDir(), "ledger.db"))
	s.Require().NoError(err)
	s.store = store
}

func (s *LedgerSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *LedgerSuite) submit(user, game string, score int) int {
	gems, err := s.store.SubmitScore(s.ctx, user, game, score)
	s.Require().NoError(err)
	return gems
}

func (s *LedgerSuite) TestGemPolicy() {
	s.Equal(42, s.submit(alice, "calculator", 42), "first record earns the full score")
	s.Equal(0, s.submit(alice, "calculator", 30), "below the record earns nothing")
	s.Equal(0, s.submit(alice, "calculator", 42), "matching the record earns nothing")
	s.Equal(8, s.submit(alice, "calculator", 50), "a new best earns the improvement")

	best, ok, err := s.store.PersonalBest(s.ctx, alice, "calculator")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(50, best)

	total, err := s.store.Gems(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(50, total)

	history, err := s.store.TopScores(s.ctx, ScoreFilter{UserID: alice, Limit: 100})
	s.Require().NoError(err)
	s.Len(history, 4)
}

func (s *LedgerSuite) TestRecordsArePerUserAndGame() {
	s.submit(alice, "calculator", 20)
	s.Equal(10, s.submit(bob, "calculator", 10))
	s.Equal(5, s.submit(alice, "math_grid", 5))

	aliceGems, err := s.store.Gems(s.ctx, alice)
	s.Require().NoError(err)
	bobGems, err := s.store.Gems(s.ctx, bob)
	s.Require().NoError(err)
	s.Equal(25, aliceGems)
	s.Equal(10, bobGems)

	none, err := s.store.Gems(s.ctx, "33333333-3333-4333-8333-333333333333")
	s.Require().NoError(err)
	s.Zero(none)

	_, ok, err := s.store.PersonalBest(s.ctx, bob, "math_grid")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *LedgerSuite) TestRejectsNegativeScore() {
	_, err := s.store.SubmitScore(s.ctx, alice, "calculator", -1)
	s.Error(err)
}

func (s *LedgerSuite) TestConcurrentSubmissions() {
	var wg sync.WaitGroup
	results := make([]int, 10)
	errs := make([]error, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.store.SubmitScore(s.ctx, alice, "fast_calc", (i+1)*10)
		}(i)
	}
	wg.Wait()

	sum := 0
	for i, g := range results {
		s.Require().NoError(errs[i])
		sum += g
	}
	s.Equal(100, sum, "gems across racing sessions add up to the best score")

	total, err := s.store.Gems(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(100, total)
}

func (s *LedgerSuite) TestTiersRoundTrip() {
	tiers, err := s.store.Tiers(s.ctx, "calculator")
	s.Require().NoError(err)
	s.Empty(tiers)

	err = s.store.ReplaceTiers(s.ctx, "calculator", []levels.LevelConfig{
		{Level: 2, NumberRangeMin: 10, NumberRangeMax: 50, QuestionCount: 10},
		{ID: "calc-easy", Level: 1, NumberRangeMin: 1, NumberRangeMax: 10, QuestionCount: 10},
	})
	s.Require().NoError(err)

	tiers, err = s.store.Tiers(s.ctx, "calculator")
	s.Require().NoError(err)
	s.Require().Len(tiers, 2)
	s.Equal("calc-easy", tiers[0].ID)
	s.Equal("calculator-2", tiers[1].ID)
	s.Equal(50, tiers[1].NumberRangeMax)

	err = s.store.ReplaceTiers(s.ctx, "calculator", []levels.LevelConfig{
		{Level: 1, NumberRangeMin: 5, NumberRangeMax: 1, QuestionCount: 10},
	})
	s.Error(err)

	tiers, err = s.store.Tiers(s.ctx, "calculator")
	s.Require().NoError(err)
	s.Len(tiers, 2, "invalid replacement leaves tiers untouched")

	p := levels.NewProvider(s.store, nil)
	s.Equal(tiers, p.Fetch(s.ctx, "calculator"))
	s.Equal(levels.Fallback("number_pyramid"), p.Fetch(s.ctx, "number_pyramid"))
}

func (s *LedgerSuite) TestIdentitySlot() {
	slot := IdentitySlot{Store: s.store, Name: "ssh:alice"}

	id, err := slot.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(id)

	s.Require().NoError(slot.Save(s.ctx, alice))
	s.Require().NoError(slot.Save(s.ctx, bob))

	id, err = slot.Load(s.ctx)
	s.Require().NoError(err)
	s.Equal(bob, id)

	other, err := IdentitySlot{Store: s.store, Name: "ssh:bob"}.Load(s.ctx)
	s.Require().NoError(err)
	s.Empty(other)
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}
