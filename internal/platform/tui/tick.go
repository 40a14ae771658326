// Package tui hosts the game in a terminal with Bubble Tea. It schedules
// frames, maps keys and mouse presses to game events, and turns the game's
// pixel drawing into styled terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// maxFPS caps the frame rate the scheduler will request.
const maxFPS = 240

// TickMsg asks the model to process one frame.
type TickMsg time.Time

// tickCmd schedules the next frame at the given rate.
func tickCmd(fps int) tea.Cmd {
	fps = core.Clamp(fps, 1, maxFPS)
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock converts tick times into milliseconds since the program
// started. Tick times carry a monotonic reading, so the result never goes
// backwards when the wall clock is adjusted.
type frameClock struct {
	start time.Time
}

func newFrameClock() frameClock {
	return frameClock{start: time.Now()}
}

func (c frameClock) millis(t time.Time) float64 {
	return float64(t.Sub(c.start)) / float64(time.Millisecond)
}
