package core

import "math"

// RuntimeConfig contains configuration passed to a session at start.
// The platform layer fills it from the terminal, flags and config file.
type RuntimeConfig struct {
	ScreenW      int   // Screen width in characters
	ScreenH      int   // Screen height in characters
	TickRate     int   // Frames per second requested from the scheduler
	Seed         int64 // RNG seed for obstacle placement (0 = time based)
	CellW        int   // Pixels per cell horizontally
	CellH        int   // Pixels per cell vertically
	TouchPrimary bool  // Host was classified as touch-first
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    10,
		CellH:    20,
	}
}

// PlayArea returns the play area size in pixels for the configured screen,
// raised to at least minW×minH. The bottom row is reserved for the help
// line. A small screen gets the minimum area scaled down onto it.
func (c RuntimeConfig) PlayArea(minW, minH float64) (w, h float64) {
	rows := Max(c.ScreenH-1, 1)
	w = math.Max(float64(c.ScreenW*c.CellW), minW)
	h = math.Max(float64(rows*c.CellH), minH)
	return w, h
}
