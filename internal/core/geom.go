// Package core provides fundamental types and utilities shared by the game
// and the terminal platform. It contains no external dependencies (especially
// no Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the part of r that also lies inside other.
// The result is empty when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := Max(r.X, other.X), Max(r.Y, other.Y)
	x1, y1 := Min(r.Right(), other.Right()), Min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Box is an axis-aligned bounding box described by its centre and
// half-extents, in play-area pixels.
type Box struct {
	CX, CY float64 // Centre
	HW, HH float64 // Half width, half height
}

// NewBox creates a box centred at (cx, cy) with full size w×h.
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.HW }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.HW }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.HH }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.HH }

// Intersects reports whether the two boxes overlap on both axes.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	return b.Right() > other.Left() &&
		b.Left() < other.Right() &&
		b.Bottom() > other.Top() &&
		b.Top() < other.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
