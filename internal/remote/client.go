// Package remote talks to an arcade HTTP API so a terminal client can use
// a shared tier store and score ledger.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/math-arcade/internal/api"
	"github.com/vovakirdan/math-arcade/internal/levels"
	"github.com/vovakirdan/math-arcade/internal/session"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

// Client is an API client. It satisfies levels.Store and session.Ledger.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *log.Logger
}

var (
	_ levels.Store   = (*Client)(nil)
	_ session.Ledger = (*Client)(nil)
)

// New creates a client for baseURL, e.g. "http://arcade.local:8080".
func New(baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		log:        logger.WithPrefix("remote"),
	}
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("remote: status %d: %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("remote: status %d: %s", e.Status, e.Message)
}

// Tiers fetches the tier list for a game.
func (c *Client) Tiers(ctx context.Context, gameCode string) ([]levels.LevelConfig, error) {
	var tiers []levels.LevelConfig
	if err := c.do(ctx, http.MethodGet, "/api/levels/"+url.PathEscape(gameCode), nil, &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

// SubmitScore records a score and returns the gems the ledger granted.
func (c *Client) SubmitScore(ctx context.Context, userID, gameID string, score int) (int, error) {
	req := api.SubmitScoreRequest{UserID: userID, GameID: gameID, Score: score}
	var resp api.SubmitScoreResponse
	if err := c.do(ctx, http.MethodPost, "/api/rpc/submit_score", req, &resp); err != nil {
		return 0, err
	}
	return resp.GemsEarned, nil
}

// Gems returns the user's gem balance.
func (c *Client) Gems(ctx context.Context, userID string) (int, error) {
	var resp api.GemsResponse
	if err := c.do(ctx, http.MethodGet, "/api/users/"+url.PathEscape(userID)+"/gems", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Gems, nil
}

// TopScores lists the best scores of filter.GameID, optionally only those
// of filter.UserID.
func (c *Client) TopScores(ctx context.Context, filter storage.ScoreFilter) ([]storage.ScoreEntry, error) {
	q := url.Values{}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.UserID != "" {
		q.Set("user", filter.UserID)
	}
	path := "/api/scores/" + url.PathEscape(filter.GameID)
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var entries []storage.ScoreEntry
	if err := c.do(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("remote: encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("remote: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("response", "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		serr := &StatusError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		var envelope api.ErrorBody
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error.Code != "" {
			serr.Code = envelope.Error.Code
			serr.Message = envelope.Error.Message
		}
		return serr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decode %s: %w", path, err)
	}
	return nil
}
