// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Box is an axis-aligned bounding box in world units.
// Y grows downward, matching screen orientation.
type Box struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether b and other share interior area.
// Touching edges do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.X+other.W &&
		b.X+b.W > other.X &&
		b.Y < other.Y+other.H &&
		b.Y+b.H > other.Y
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
