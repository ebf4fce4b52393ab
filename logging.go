package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func parseLogLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// setupEditorLogging routes slog to the configured log file while the
// terminal belongs to the editor. Without a log file, logs are dropped.
func setupEditorLogging(cfg *Config) (io.Closer, error) {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, opts)))
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(cfg.LogFile, "asciiflow")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, opts)))
	return f, nil
}

func setupCLILogging(cfg *Config) {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, opts)))
}
