// Package config gathers the settings shared by every command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/contentquiz/internal/catalog"
	"github.com/abhisek/contentquiz/internal/quiz"
	"github.com/abhisek/contentquiz/internal/store"
)

// Config is the resolved application configuration. Commands build it once
// and pass it down; nothing reads the environment after that.
type Config struct {
	// DBPath is the event database. Empty means store.DefaultDBPath.
	DBPath string

	// CatalogPath overrides the embedded question catalog.
	CatalogPath string

	// LeadEndpoint receives consultation requests. Empty disables the form.
	LeadEndpoint string

	// AdvanceDelay is how long a selected answer stays highlighted. A
	// negative value disables auto-advance.
	AdvanceDelay time.Duration

	// LogPath is where the terminal UI writes its log. Empty means a file
	// next to the database.
	LogPath  string
	LogLevel slog.Level
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		AdvanceDelay: quiz.DefaultAdvanceDelay,
		LogLevel:     slog.LevelInfo,
	}
}

// FromEnv builds a Config from CONTENTQUIZ_* environment variables, falling
// back to defaults for unset or unparsable values.
func FromEnv() Config {
	cfg := DefaultConfig()

	setFromEnv(&cfg.DBPath, "CONTENTQUIZ_DB")
	setFromEnv(&cfg.CatalogPath, "CONTENTQUIZ_CATALOG")
	setFromEnv(&cfg.LeadEndpoint, "CONTENTQUIZ_LEAD_ENDPOINT")
	setFromEnv(&cfg.LogPath, "CONTENTQUIZ_LOG")

	if v := os.Getenv("CONTENTQUIZ_ADVANCE_DELAY"); v != "" {
		if d, ok := parseDelay(v); ok {
			cfg.AdvanceDelay = d
		}
	}
	if v := os.Getenv("CONTENTQUIZ_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err == nil {
			cfg.LogLevel = lvl
		}
	}

	return cfg
}

// LoadEnvFile reads KEY=value pairs from path (".env" when empty) into the
// process environment. Variables that already have a value win. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range vars {
		if os.Getenv(k) != "" {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	return nil
}

// parseDelay accepts a Go duration or "off". Zero also turns auto-advance
// off.
func parseDelay(v string) (time.Duration, bool) {
	if strings.EqualFold(v, "off") {
		return -1, true
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	if d <= 0 {
		return -1, true
	}
	return d, true
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ResolveDBPath returns DBPath, or the default location when unset. The
// parent directory is created either way.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

// ResolveLogPath returns LogPath, or contentquiz.log beside the database.
func (c Config) ResolveLogPath() (string, error) {
	if c.LogPath != "" {
		return c.LogPath, store.EnsureDir(c.LogPath)
	}
	db, err := c.ResolveDBPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(db), "contentquiz.log"), nil
}

// LoadCatalog loads CatalogPath, or the embedded catalog when unset.
func (c Config) LoadCatalog() (*catalog.Catalog, error) {
	if c.CatalogPath == "" {
		return catalog.Default()
	}
	return catalog.Load(c.CatalogPath)
}

// SessionOptions returns the quiz session options derived from the config.
func (c Config) SessionOptions() quiz.Options {
	return quiz.Options{AdvanceDelay: c.AdvanceDelay}
}
