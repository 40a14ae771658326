package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/flappy.yaml and is used when that file cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:        60,
			CellWidth:  10,
			CellHeight: 20,
		},
		Input: InputConfig{
			Touch: TouchAuto,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
