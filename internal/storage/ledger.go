package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vovakirdan/math-arcade/internal/session"
)

// SubmitScore records a finished session and returns the gems earned.
// A first score earns its full value; a new personal best earns the
// improvement over the previous best; anything else earns nothing and
// leaves the record untouched. The history row is always written.
func (s *Store) SubmitScore(ctx context.Context, userID, gameID string, score int) (int, error) {
	if score < 0 {
		return 0, fmt.Errorf("storage: negative score %d", score)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var highest int
	err = tx.QueryRowContext(ctx,
		"SELECT highest_score FROM high_scores WHERE user_id = ? AND game_id = ?",
		userID, gameID,
	).Scan(&highest)

	gems := 0
	switch {
	case errors.Is(err, sql.ErrNoRows):
		gems = score
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO high_scores (user_id, game_id, highest_score) VALUES (?, ?, ?)",
			userID, gameID, score,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot insert high score: %w", err)
		}
	case err != nil:
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	case score > highest:
		gems = score - highest
		if _, err := tx.ExecContext(ctx,
			"UPDATE high_scores SET highest_score = ?, updated_at = CURRENT_TIMESTAMP WHERE user_id = ? AND game_id = ?",
			score, userID, gameID,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot update high score: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (user_id, gems) VALUES (?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET gems = gems + excluded.gems`,
		userID, gems,
	); err != nil {
		return 0, fmt.Errorf("storage: cannot credit gems: %w", err)
	}

	query, args, err := sqlBuilder.Insert("scores").
		Columns("user_id", "game_id", "score", "gems_earned").
		Values(userID, gameID, score, gems).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot build insert: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit score: %w", err)
	}
	return gems, nil
}

// Gems returns a user's gem balance. Unknown users have zero.
func (s *Store) Gems(ctx context.Context, userID string) (int, error) {
	query, args, err := sqlBuilder.Select("gems").From("users").
		Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot build query: %w", err)
	}

	var gems int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&gems)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query gems: %w", err)
	}
	return gems, nil
}

// PersonalBest returns a user's recorded highest score for a game and
// whether a record exists.
func (s *Store) PersonalBest(ctx context.Context, userID, gameID string) (int, bool, error) {
	var best int
	err := s.db.QueryRowContext(ctx,
		"SELECT highest_score FROM high_scores WHERE user_id = ? AND game_id = ?",
		userID, gameID,
	).Scan(&best)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query personal best: %w", err)
	}
	return best, true, nil
}

var _ session.Ledger = (*Store)(nil)
