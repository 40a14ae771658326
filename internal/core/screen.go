package core

import (
	"strings"
)

// Cell is a single character on the screen with its colours.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blankCell is what Clear writes.
var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
// with simple fill operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every cell to a blank space with default colours.
func (s *Screen) Clear() {
	s.ClearRect(NewRect(0, 0, s.width, s.height))
}

// ClearRect resets the cells inside r to blank.
func (s *Screen) ClearRect(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, blankCell)
		}
	}
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// FillRect paints the cells inside r with a solid background colour.
func (s *Screen) FillRect(r Rect, bg Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', Bg: bg})
		}
	}
}

// DrawText writes a string horizontally starting at (x, y) in the given
// foreground colour. The background of each cell is preserved so text can
// sit on top of filled areas. Characters beyond the bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			c := s.cells[y][x+i]
			c.Rune = r
			c.Fg = fg
			s.cells[y][x+i] = c
		}
		i++
	}
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}
