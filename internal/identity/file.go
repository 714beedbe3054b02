package identity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps the ID in a small text file, e.g. ~/.arcade/user_id.
type FileStore struct {
	Path string
}

// Load implements Store.
func (f FileStore) Load(context.Context) (string, error) {
	data, err := os.ReadFile(f.path())
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("identity: read %s: %w", f.Path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save implements Store.
func (f FileStore) Save(_ context.Context, id string) error {
	path := f.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("identity: create directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("identity: write %s: %w", f.Path, err)
	}
	return nil
}

func (f FileStore) path() string {
	if strings.HasPrefix(f.Path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, f.Path[1:])
		}
	}
	return f.Path
}
