package logging

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init initializes the logging system, writing logs to ~/.yearpick/logs/yearpick.log
// Uses text format for human readability.
func Init(level slog.Level) (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}
	return InitAt(filepath.Join(homeDir, ".yearpick", "logs"), level)
}

// InitAt is Init with an explicit log directory.
// The terminal belongs to the TUI, so nothing is ever logged to stderr.
func InitAt(logDir string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "yearpick.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard installs a logger that drops everything, for runs without a log file.
func Discard() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
