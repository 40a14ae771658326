package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// cellStyle is the colour pair a run of cells is rendered with.
type cellStyle struct {
	fg, bg core.Color
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	styles := make(map[cellStyle]lipgloss.Style)
	styleFor := func(cs cellStyle) lipgloss.Style {
		if st, ok := styles[cs]; ok {
			return st
		}
		st := r.NewStyle()
		if !cs.fg.IsDefault() {
			st = st.Foreground(lipgloss.Color(cs.fg))
		}
		if !cs.bg.IsDefault() {
			st = st.Background(lipgloss.Color(cs.bg))
		}
		styles[cs] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
