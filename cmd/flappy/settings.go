package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// loadConfig loads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagFPS != 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// newLogger builds a logger writing to w at the configured level.
func newLogger(w io.Writer, cfg config.LogConfig, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// openLogFile opens the log destination for local play. The terminal is
// busy drawing the game, so an empty path discards log output.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}

	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
