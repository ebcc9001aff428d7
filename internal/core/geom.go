// Package core provides fundamental types and utilities for the invaders game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

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

// RectF is an axis-aligned bounding box in world pixels.
// Entities keep fractional positions so that delta-scaled movement
// accumulates without rounding drift.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a rectangle from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// RectCenteredAt returns a w x h rectangle whose center is (cx, cy).
func RectCenteredAt(cx, cy, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// RectMidBottomAt returns a w x h rectangle whose bottom edge is centered on (cx, bottom).
func RectMidBottomAt(cx, bottom, w, h float64) RectF {
	return RectF{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r RectF) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r RectF) CenterY() float64 { return r.Y + r.H/2 }

// MidTop returns the center point of the top edge.
func (r RectF) MidTop() (float64, float64) { return r.CenterX(), r.Y }

// MidBottom returns the center point of the bottom edge.
func (r RectF) MidBottom() (float64, float64) { return r.CenterX(), r.Bottom() }

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Translate returns the rectangle moved by (dx, dy).
func (r RectF) Translate(dx, dy float64) RectF {
	r.X += dx
	r.Y += dy
	return r
}

// Origin returns the top-left corner rounded down to whole pixels.
// Mask tests are done on the integer pixel grid.
func (r RectF) Origin() (int, int) {
	return int(math.Floor(r.X)), int(math.Floor(r.Y))
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
