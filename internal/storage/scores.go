package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
)

// ScoreEntry represents a single recorded session.
type ScoreEntry struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	GameID     string    `json:"game_id"`
	Score      int       `json:"score"`
	GemsEarned int       `json:"gems_earned"`
	CreatedAt  time.Time `json:"created_at"`
}

// ScoreFilter narrows a score listing. Empty fields match everything.
type ScoreFilter struct {
	GameID string
	UserID string
	Limit  int
}

// TopScores retrieves the best scores matching filter, highest first.
func (s *Store) TopScores(ctx context.Context, filter ScoreFilter) ([]ScoreEntry, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	query := sqlBuilder.Select("id", "user_id", "game_id", "score", "gems_earned", "created_at").
		From("scores")
	if filter.GameID != "" {
		query = query.Where(squirrel.Eq{"game_id": filter.GameID})
	}
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	query = query.OrderBy("score DESC", "id ASC").Limit(uint64(limit))

	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.UserID, &e.GameID, &e.Score, &e.GemsEarned, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score any user recorded for the game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(ctx context.Context, gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the history and records for the given game. Gem
// balances already credited are kept.
func (s *Store) ClearScores(ctx context.Context, gameID string) error {
	for _, table := range []string{"scores", "high_scores"} {
		q, args, err := sqlBuilder.Delete(table).Where(squirrel.Eq{"game_id": gameID}).ToSql()
		if err != nil {
			return fmt.Errorf("storage: cannot build delete: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("storage: cannot clear scores: %w", err)
		}
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string    `json:"game_id"`
	GamesCount int       `json:"games_count"`
	HighScore  int       `json:"high_score"`
	AvgScore   float64   `json:"avg_score"`
	TotalScore int64     `json:"total_score"`
	TotalGems  int64     `json:"total_gems"`
	LastPlayed time.Time `json:"last_played"`
}

var statsColumns = []string{
	"game_id", "COUNT(*)", "COALESCE(MAX(score), 0)", "COALESCE(AVG(score), 0)",
	"COALESCE(SUM(score), 0)", "COALESCE(SUM(gems_earned), 0)", "MAX(created_at)",
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(ctx context.Context, gameID string) (*GameStats, error) {
	all, err := s.stats(ctx, squirrel.Eq{"game_id": gameID})
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats(ctx context.Context) (map[string]*GameStats, error) {
	return s.stats(ctx, nil)
}

func (s *Store) stats(ctx context.Context, where squirrel.Sqlizer) (map[string]*GameStats, error) {
	query := sqlBuilder.Select(statsColumns...).From("scores").GroupBy("game_id")
	if where != nil {
		query = query.Where(where)
	}
	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var lastPlayed any
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &st.TotalGems, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.GameID] = &st
	}
	if err := rows.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
