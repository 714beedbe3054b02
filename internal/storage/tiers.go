package storage

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vovakirdan/math-arcade/internal/levels"
)

// Tiers returns the stored tiers for a game ordered by level. An unknown
// game yields an empty list.
func (s *Store) Tiers(ctx context.Context, gameCode string) ([]levels.LevelConfig, error) {
	q, args, err := sqlBuilder.
		Select("id", "level", "number_range_min", "number_range_max", "question_count").
		From("level_configs").
		Where(squirrel.Eq{"game_code": gameCode}).
		OrderBy("level ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query tiers: %w", err)
	}
	defer rows.Close()

	tiers := []levels.LevelConfig{}
	for rows.Next() {
		var t levels.LevelConfig
		if err := rows.Scan(&t.ID, &t.Level, &t.NumberRangeMin, &t.NumberRangeMax, &t.QuestionCount); err != nil {
			return nil, fmt.Errorf("storage: cannot scan tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return tiers, nil
}

// ReplaceTiers swaps every tier of a game for tiers in one transaction.
// Tiers are validated first; missing IDs are derived from the game code
// and level.
func (s *Store) ReplaceTiers(ctx context.Context, gameCode string, tiers []levels.LevelConfig) error {
	normalized, err := levels.Normalize(tiers)
	if err != nil {
		return fmt.Errorf("storage: invalid tiers: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM level_configs WHERE game_code = ?", gameCode); err != nil {
		return fmt.Errorf("storage: cannot clear tiers: %w", err)
	}

	if len(normalized) > 0 {
		insert := sqlBuilder.Insert("level_configs").
			Columns("id", "game_code", "level", "number_range_min", "number_range_max", "question_count")
		for _, t := range normalized {
			id := t.ID
			if id == "" {
				id = fmt.Sprintf("%s-%d", gameCode, t.Level)
			}
			insert = insert.Values(id, gameCode, t.Level, t.NumberRangeMin, t.NumberRangeMax, t.QuestionCount)
		}
		q, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("storage: cannot build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("storage: cannot insert tiers: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit tiers: %w", err)
	}
	return nil
}

var _ levels.Store = (*Store)(nil)
