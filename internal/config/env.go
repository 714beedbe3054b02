package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Env holds process settings read from the environment. They provide the
// defaults of the matching CLI flags.
type Env struct {
	DBPath     string
	LogLevel   string
	Remote     string
	HTTPAddr   string
	SSHAddr    string
	Difficulty string
	Seed       int64
}

// DefaultDBPath is the score database location.
var DefaultDBPath = filepath.Join("~", ".arcade", "arcade.db")

// LoadEnv reads a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func LoadEnv() Env {
	// Ignore error so the binary still starts when .env is absent.
	_ = godotenv.Load()

	return Env{
		DBPath:     envOr("ARCADE_DB", DefaultDBPath),
		LogLevel:   envOr("ARCADE_LOG_LEVEL", "info"),
		Remote:     envOr("ARCADE_REMOTE", ""),
		HTTPAddr:   envOr("ARCADE_HTTP_ADDR", ":8080"),
		SSHAddr:    envOr("ARCADE_SSH_ADDR", ":2222"),
		Difficulty: envOr("ARCADE_DIFFICULTY", string(DifficultyNormal)),
		Seed:       envInt64Or("ARCADE_SEED", 0),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt64Or(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
		log.Warn("invalid environment value, using default", "key", key, "value", v, "default", def)
	}
	return def
}
