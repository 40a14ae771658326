package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagFPS, flagLogLevel = "", 0, ""
	})
}

func TestLoadConfigOverrides(t *testing.T) {
	resetFlags(t)
	flagConfig = writeConfig(t, "display:\n  fps: 30\nlog:\n  level: warn\n")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Display.FPS != 30 || cfg.Log.Level != "warn" {
		t.Errorf("loadConfig() = fps %d level %q, expected 30 and warn", cfg.Display.FPS, cfg.Log.Level)
	}

	flagFPS = 120
	flagLogLevel = "debug"
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Display.FPS != 120 || cfg.Log.Level != "debug" {
		t.Errorf("loadConfig() = fps %d level %q, expected 120 and debug", cfg.Display.FPS, cfg.Log.Level)
	}
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	resetFlags(t)
	flagConfig = writeConfig(t, "display:\n  fps: 30\n")
	flagFPS = 1000

	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() with --fps 1000 should fail")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	logger := newLogger(os.Stderr, config.LogConfig{Level: "debug"}, "test")
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("GetLevel() = %v, expected %v", logger.GetLevel(), log.DebugLevel)
	}
}

func TestOpenLogFile(t *testing.T) {
	w, err := openLogFile("")
	if err != nil {
		t.Fatalf("openLogFile(\"\") error = %v", err)
	}
	if _, err := w.Write([]byte("dropped")); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	w.Close()

	path := filepath.Join(t.TempDir(), "flappy.log")
	w, err = openLogFile(path)
	if err != nil {
		t.Fatalf("openLogFile() error = %v", err)
	}
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	w.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "line\n" {
		t.Errorf("log file = %q, expected %q", data, "line\n")
	}
}

func TestConnectHint(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{":23234", "ssh localhost -p 23234"},
		{"0.0.0.0:2222", "ssh localhost -p 2222"},
		{"example.com:22", "ssh example.com -p 22"},
		{"no-port", "ssh no-port"},
	}

	for _, tc := range tests {
		if got := connectHint(tc.addr); got != tc.expected {
			t.Errorf("connectHint(%q) = %q, expected %q", tc.addr, got, tc.expected)
		}
	}
}
