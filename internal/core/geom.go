// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle.
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

// RectF is an axis-aligned bounding box in continuous cell units.
// Moving objects (ball, paddle, pickups) use it for collision detection.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRectF creates a rectangle from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r RectF) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Overlap returns the penetration depth along each axis, or zeros when the
// rectangles do not intersect.
func (r RectF) Overlap(other RectF) (dx, dy float64) {
	if !r.Intersects(other) {
		return 0, 0
	}
	dx = math.Min(r.Right(), other.Right()) - math.Max(r.X, other.X)
	dy = math.Min(r.Bottom(), other.Bottom()) - math.Max(r.Y, other.Y)
	return dx, dy
}

// Cell returns the rectangle snapped to whole cells.
func (r RectF) Cell() Rect {
	x := int(math.Floor(r.X))
	y := int(math.Floor(r.Y))
	w := int(math.Round(r.W))
	h := int(math.Round(r.H))
	return NewRect(x, y, Max(w, 1), Max(h, 1))
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
