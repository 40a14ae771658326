package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Canvas implements flappy.Surface on a cell screen. The play area in
// pixels is stretched over the whole screen, so each cell covers
// playW/cols × playH/rows pixels.
type Canvas struct {
	screen *core.Screen
	playW  float64
	playH  float64
	fill   core.Color
	fontPx float64
}

// NewCanvas creates a canvas that maps a playW×playH pixel area onto screen.
func NewCanvas(screen *core.Screen, playW, playH float64) *Canvas {
	return &Canvas{
		screen: screen,
		playW:  playW,
		playH:  playH,
		fill:   core.ColorWhite,
	}
}

// ClearRect resets the cells covering the given pixel rectangle.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.screen.ClearRect(c.cellRect(x, y, w, h))
}

// FillRect paints the cells covering the given pixel rectangle.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.screen.FillRect(c.cellRect(x, y, w, h), c.fill)
}

// FillText writes text with its baseline at y. The row is picked from the
// middle of the glyphs, which sit one font height above the baseline.
func (c *Canvas) FillText(text string, x, y float64) {
	col := int(math.Floor(x * c.scaleX()))
	row := int(math.Floor((y - c.fontPx/2) * c.scaleY()))
	c.screen.DrawText(col, row, text, c.fill)
}

// SetFillColor sets the colour used by FillRect and FillText.
func (c *Canvas) SetFillColor(color core.Color) {
	c.fill = color
}

// SetFont takes a CSS-style font such as "30px Arial". Only the pixel size
// matters in a terminal.
func (c *Canvas) SetFont(font string) {
	c.fontPx = parseFontPx(font)
}

// cellRect converts a pixel rectangle to the cells it covers. Any rectangle
// with a positive size covers at least one cell so small shapes stay visible.
func (c *Canvas) cellRect(x, y, w, h float64) core.Rect {
	if w <= 0 || h <= 0 {
		return core.Rect{}
	}
	sx, sy := c.scaleX(), c.scaleY()

	x0 := int(math.Round(x * sx))
	y0 := int(math.Round(y * sy))
	x1 := int(math.Round((x + w) * sx))
	y1 := int(math.Round((y + h) * sy))

	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	bounds := core.NewRect(0, 0, c.screen.Width(), c.screen.Height())
	return core.NewRect(x0, y0, x1-x0, y1-y0).Intersect(bounds)
}

func (c *Canvas) scaleX() float64 {
	if c.playW <= 0 {
		return 0
	}
	return float64(c.screen.Width()) / c.playW
}

func (c *Canvas) scaleY() float64 {
	if c.playH <= 0 {
		return 0
	}
	return float64(c.screen.Height()) / c.playH
}

// parseFontPx extracts the pixel size from a font string, or 0.
func parseFontPx(font string) float64 {
	for _, field := range strings.Fields(font) {
		if size, ok := strings.CutSuffix(field, "px"); ok {
			if px, err := strconv.ParseFloat(size, 64); err == nil {
				return px
			}
		}
	}
	return 0
}
