package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vovakirdan/math-arcade/internal/session"
	"github.com/vovakirdan/math-arcade/internal/testutil/mocks"
)

func TestReconcilerSubmit(t *testing.T) {
	ledger := new(mocks.MockLedger)
	ledger.On("SubmitScore", mock.Anything, "u1", "calculator", 42).Return(42, nil).Once()

	rec := session.NewReconciler(ledger, "u1", "calculator", nil)
	assert.Equal(t, 42, rec.Submit(context.Background(), 42))
	ledger.AssertExpectations(t)
}

func TestReconcilerSkipsNonPositiveScores(t *testing.T) {
	ledger := new(mocks.MockLedger)
	rec := session.NewReconciler(ledger, "u1", "calculator", nil)

	assert.Zero(t, rec.Submit(context.Background(), 0))
	assert.Zero(t, rec.Submit(context.Background(), -3))
	rec.SubmitAsync(0, func(int) { t.Fatal("done must not run") })
	rec.Wait()

	ledger.AssertNotCalled(t, "SubmitScore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcilerDropsFailures(t *testing.T) {
	ledger := new(mocks.MockLedger)
	ledger.On("SubmitScore", mock.Anything, "u1", "math_grid", 7).Return(0, errors.New("rpc down")).Once()

	rec := session.NewReconciler(ledger, "u1", "math_grid", nil)
	var got = -1
	rec.SubmitAsync(7, func(gems int) { got = gems })
	rec.Wait()

	assert.Equal(t, 0, got)
	ledger.AssertNumberOfCalls(t, "SubmitScore", 1)
}
