// Package core provides fundamental types and utilities shared by the game
// logic and its frontends. It has no dependency on any renderer so the
// flight simulation stays pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world pixels.
type Vec2 struct {
	X, Y float64
}

// FromAngle returns a vector of the given length pointing at angle degrees,
// measured clockwise from +X (screen coordinates, Y down).
func FromAngle(deg, length float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: math.Cos(rad) * length, Y: math.Sin(rad) * length}
}

// Box is an axis-aligned rectangle in world pixels.
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

// Contains returns true if the point lies inside the box (right/bottom exclusive).
func (b Box) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Intersects returns true if the two boxes overlap.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
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

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
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
