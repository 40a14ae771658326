package flappy

import (
	"math"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Surface is the 2D drawing target the renderer paints on. Coordinates are
// play-area pixels; text is positioned by its baseline-left corner.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	FillText(text string, x, y float64)
	SetFillColor(c core.Color)
	SetFont(font string)
}

// Palette and text.
const (
	BackgroundColor     = core.ColorBlack
	PlayerColor         = core.ColorGreen
	ObstacleColor       = core.ColorSalmon
	PassedObstacleColor = core.ColorMint
	TextColor           = core.ColorWhite

	TextFont = "30px Arial"

	StartPrompt      = "Press space or up arrow to begin"
	DeathPrompt      = "Ouch, that hurt!"
	RetryPromptTouch = "Tap to try again"
	RetryPromptKeys  = "Press 'r' to try again"
)

// Render draws the world. It never mutates w.
func Render(w *World, s Surface, touchPrimary bool) {
	s.ClearRect(0, 0, w.Width, w.Height)

	s.SetFillColor(BackgroundColor)
	s.FillRect(0, 0, w.Width, w.Height)

	p := w.Player
	s.SetFillColor(PlayerColor)
	s.FillRect(p.X-math.Floor(p.Width/2), p.Y-math.Floor(p.Height/2), p.Width, p.Height)

	for _, o := range w.Obstacles {
		if o.Passed {
			s.SetFillColor(PassedObstacleColor)
		} else {
			s.SetFillColor(ObstacleColor)
		}
		s.FillRect(o.X-math.Floor(o.Width/2), o.Y-math.Floor(o.Height/2), o.Width, o.Height)
	}

	s.SetFillColor(TextColor)
	s.SetFont(TextFont)
	s.FillText("Score: "+strconv.Itoa(w.Score), 10, 30)

	if !w.Started {
		s.FillText(StartPrompt, 25, 250)
	}

	if w.Dead {
		s.FillText(DeathPrompt, 150, 230)
		if touchPrimary {
			s.FillText(RetryPromptTouch, 150, 270)
		} else {
			s.FillText(RetryPromptKeys, 120, 270)
		}
	}
}
