package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/math-arcade/internal/api"
	_ "github.com/vovakirdan/math-arcade/internal/games/all"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/remote"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

const userID = "6f1c2a7e-3b4d-4e5f-8a9b-0c1d2e3f4a5b"

func newClient(t *testing.T) (*remote.Client, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "remote.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(api.NewServer(store, nil).Routes())
	t.Cleanup(srv.Close)
	return remote.New(srv.URL+"/", nil), store
}

func TestSubmitScoreAndGems(t *testing.T) {
	c, _ := newClient(t)
	ctx := context.Background()

	gems, err := c.SubmitScore(ctx, userID, "square_root", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, gems)

	gems, err = c.SubmitScore(ctx, userID, "square_root", 10)
	require.NoError(t, err)
	assert.Zero(t, gems)

	total, err := c.Gems(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
}

func TestTiersFeedProvider(t *testing.T) {
	c, store := newClient(t)
	ctx := context.Background()

	tiers, err := c.Tiers(ctx, "fast_calc")
	require.NoError(t, err)
	assert.Empty(t, tiers)

	fetched := levels.NewProvider(c, nil).Fetch(ctx, "fast_calc")
	assert.Equal(t, levels.Fallback("fast_calc"), fetched)

	require.NoError(t, store.ReplaceTiers(ctx, "fast_calc", []levels.LevelConfig{
		{Level: 1, NumberRangeMin: 2, NumberRangeMax: 9, QuestionCount: 8},
	}))
	fetched = levels.NewProvider(c, nil).Fetch(ctx, "fast_calc")
	require.Len(t, fetched, 1)
	assert.Equal(t, 9, fetched[0].NumberRangeMax)
}

func TestErrorEnvelope(t *testing.T) {
	c, _ := newClient(t)

	_, err := c.SubmitScore(context.Background(), "bad-id", "calculator", 3)
	var serr *remote.StatusError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, http.StatusBadRequest, serr.Status)
	assert.Equal(t, "VALIDATION_ERROR", serr.Code)
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := remote.New(url, nil).Tiers(context.Background(), "calculator")
	assert.Error(t, err)

	fetched := levels.NewProvider(remote.New(url, nil), nil).Fetch(context.Background(), "calculator")
	assert.Equal(t, levels.Fallback("calculator"), fetched)
}

func TestTopScores(t *testing.T) {
	c, store := newClient(t)
	ctx := context.Background()
	const other = "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeeee"

	for _, sub := range []struct {
		user  string
		score int
	}{{userID, 8}, {other, 30}, {userID, 15}} {
		_, err := store.SubmitScore(ctx, sub.user, "picture_equation", sub.score)
		require.NoError(t, err)
	}

	all, err := c.TopScores(ctx, storage.ScoreFilter{GameID: "picture_equation", Limit: 10})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 30, all[0].Score)

	mine, err := c.TopScores(ctx, storage.ScoreFilter{GameID: "picture_equation", UserID: userID})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, 15, mine[0].Score)
	assert.Equal(t, 8, mine[1].Score)
}
