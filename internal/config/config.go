// Package config provides YAML-based runtime configuration for the game:
// display scaling, input classification, logging and the SSH server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Config is the complete runtime configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// DisplayConfig defines how the play area maps onto the terminal.
type DisplayConfig struct {
	FPS        int `yaml:"fps"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// InputConfig defines input device classification.
type InputConfig struct {
	Touch TouchMode `yaml:"touch"`
}

// LogConfig defines logger level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// TouchMode selects how the host is classified as touch-first.
type TouchMode string

const (
	TouchAuto TouchMode = "auto"
	TouchOn   TouchMode = "on"
	TouchOff  TouchMode = "off"
)

// touchEnvMarkers are environment variables set by phone terminal apps.
var touchEnvMarkers = []string{"TERMUX_VERSION"}

// TouchPrimary classifies the host given its environment in KEY=VALUE form.
func (c InputConfig) TouchPrimary(environ []string) bool {
	switch c.Touch {
	case TouchOn:
		return true
	case TouchOff:
		return false
	}

	for _, kv := range environ {
		key, _, _ := strings.Cut(kv, "=")
		for _, marker := range touchEnvMarkers {
			if key == marker {
				return true
			}
		}
	}
	return false
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("display.fps must be between 1 and 240, got %d", c.Display.FPS)
	}
	if c.Display.CellWidth < 1 || c.Display.CellHeight < 1 {
		return fmt.Errorf("display cell size must be positive, got %dx%d", c.Display.CellWidth, c.Display.CellHeight)
	}

	switch c.Input.Touch {
	case TouchAuto, TouchOn, TouchOff:
	default:
		return fmt.Errorf("input.touch must be auto, on or off, got %q", c.Input.Touch)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	return nil
}
