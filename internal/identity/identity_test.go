package identity_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/math-arcade/internal/identity"
	"github.com/vovakirdan/math-arcade/internal/testutil/mocks"
)

const stored = "0B8F1C9E-5D2A-4C1E-9A7B-3F6E2D1C0A9B"

func TestValid(t *testing.T) {
	assert.True(t, identity.Valid("0b8f1c9e-5d2a-4c1e-9a7b-3f6e2d1c0a9b"))
	assert.True(t, identity.Valid(stored))
	assert.False(t, identity.Valid(""))
	assert.False(t, identity.Valid("not-a-uuid"))
	assert.False(t, identity.Valid("0b8f1c9e5d2a4c1e9a7b3f6e2d1c0a9b"))
	assert.False(t, identity.Valid("0b8f1c9e-5d2a-4c1e-9a7b-3f6e2d1c0a9bff"))
	assert.False(t, identity.Valid("zb8f1c9e-5d2a-4c1e-9a7b-3f6e2d1c0a9b"))
}

func TestReusesStoredID(t *testing.T) {
	store := new(mocks.MockIdentityStore)
	store.On("Load", mock.Anything).Return(stored, nil).Once()

	p := identity.NewProvider(store, nil)
	assert.Equal(t, stored, p.UserID(context.Background()))
	assert.Equal(t, stored, p.UserID(context.Background()))

	store.AssertExpectations(t)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegeneratesMalformedID(t *testing.T) {
	store := new(mocks.MockIdentityStore)
	store.On("Load", mock.Anything).Return("garbage", nil).Once()
	store.On("Save", mock.Anything, mock.AnythingOfType("string")).Return(nil).Once()

	id := identity.NewProvider(store, nil).UserID(context.Background())

	assert.True(t, identity.Valid(id))
	store.AssertCalled(t, "Save", mock.Anything, id)
}

func TestStorageFailuresNeverSurface(t *testing.T) {
	store := new(mocks.MockIdentityStore)
	store.On("Load", mock.Anything).Return("", errors.New("disk gone")).Once()
	store.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk gone")).Once()

	p := identity.NewProvider(store, nil)
	id := p.UserID(context.Background())
	assert.True(t, identity.Valid(id))
	assert.Equal(t, id, p.UserID(context.Background()))
}

func TestConcurrentCallersShareOneID(t *testing.T) {
	p := identity.NewProvider(nil, nil)

	var wg sync.WaitGroup
	ids := make([]string, 16)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = p.UserID(context.Background())
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "user_id")
	fs := identity.FileStore{Path: path}

	id, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	first := identity.NewProvider(fs, nil).UserID(ctx)
	second := identity.NewProvider(fs, nil).UserID(ctx)
	assert.Equal(t, first, second, "id persists across providers")

	require.NoError(t, os.WriteFile(path, []byte("tampered\n"), 0o600))
	third := identity.NewProvider(fs, nil).UserID(ctx)
	assert.NotEqual(t, first, third)
	assert.True(t, identity.Valid(third))
}
