package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abhisek/contentquiz/internal/store"
)

// SetupLogging sends slog output to path while the terminal UI owns the
// screen. Callers close the returned file on exit.
func SetupLogging(path string, level slog.Level) (io.Closer, error) {
	if err := store.EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}
