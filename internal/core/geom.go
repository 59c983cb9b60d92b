// Package core provides fundamental types and utilities shared by the game
// and the platform layer. It has no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in screen cells.
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

// Box is an axis-aligned rectangle in playfield units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Circle is a circle (or ellipse when RX != RY) in playfield units.
type Circle struct {
	CX, CY float64 // Center
	RX, RY float64 // Radii
}

// Contains reports whether the point lies inside the ellipse.
func (c Circle) Contains(x, y float64) bool {
	if c.RX <= 0 || c.RY <= 0 {
		return false
	}
	dx := (x - c.CX) / c.RX
	dy := (y - c.CY) / c.RY
	return dx*dx+dy*dy <= 1
}

// Bounds returns the bounding box of the circle.
func (c Circle) Bounds() Box {
	return Box{X: c.CX - c.RX, Y: c.CY - c.RY, W: 2 * c.RX, H: 2 * c.RY}
}

// Scale maps playfield units onto screen cells.
type Scale struct {
	SX, SY float64 // Cells per playfield unit
}

// NewScale fits a playfield of the given size into a screen of w x h cells.
func NewScale(fieldW, fieldH float64, w, h int) Scale {
	if fieldW <= 0 || fieldH <= 0 {
		return Scale{}
	}
	return Scale{SX: float64(w) / fieldW, SY: float64(h) / fieldH}
}

// Rect converts a playfield box into the cells it covers.
// Any partially covered cell counts, so thin shapes never vanish.
func (s Scale) Rect(b Box) Rect {
	if b.Empty() {
		return Rect{}
	}
	x0 := int(math.Floor(b.X * s.SX))
	y0 := int(math.Floor(b.Y * s.SY))
	x1 := int(math.Ceil(b.Right() * s.SX))
	y1 := int(math.Ceil(b.Bottom() * s.SY))
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// Point converts a playfield point into the cell containing it.
func (s Scale) Point(x, y float64) (int, int) {
	return int(math.Floor(x * s.SX)), int(math.Floor(y * s.SY))
}

// CellCenter returns the playfield point at the center of cell (cx, cy).
func (s Scale) CellCenter(cx, cy int) (float64, float64) {
	if s.SX == 0 || s.SY == 0 {
		return 0, 0
	}
	return (float64(cx) + 0.5) / s.SX, (float64(cy) + 0.5) / s.SY
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
