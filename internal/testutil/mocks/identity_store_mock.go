package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockIdentityStore is a mock implementation of identity.Store
type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityStore) Save(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
