package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// LoadIdentity returns the user ID stored under name, or "" if none.
func (s *Store) LoadIdentity(ctx context.Context, name string) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx, "SELECT user_id FROM identities WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot load identity: %w", err)
	}
	return id, nil
}

// SaveIdentity stores userID under name, replacing any previous value.
func (s *Store) SaveIdentity(ctx context.Context, name, userID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO identities (name, user_id) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET user_id = excluded.user_id`,
		name, userID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save identity: %w", err)
	}
	return nil
}

// IdentitySlot adapts one named identity row to identity.Store.
type IdentitySlot struct {
	Store *Store
	Name  string
}

// Load implements identity.Store.
func (s IdentitySlot) Load(ctx context.Context) (string, error) {
	return s.Store.LoadIdentity(ctx, s.Name)
}

// Save implements identity.Store.
func (s IdentitySlot) Save(ctx context.Context, id string) error {
	return s.Store.SaveIdentity(ctx, s.Name, id)
}
