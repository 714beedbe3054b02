package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vovakirdan/math-arcade/internal/levels"
)

// MockTierStore is a mock implementation of levels.Store
type MockTierStore struct {
	mock.Mock
}

func (m *MockTierStore) Tiers(ctx context.Context, gameCode string) ([]levels.LevelConfig, error) {
	args := m.Called(ctx, gameCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]levels.LevelConfig), args.Error(1)
}
