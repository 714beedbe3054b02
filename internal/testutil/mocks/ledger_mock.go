package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLedger is a mock implementation of session.Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) SubmitScore(ctx context.Context, userID, gameID string, score int) (int, error) {
	args := m.Called(ctx, userID, gameID, score)
	return args.Int(0), args.Error(1)
}
