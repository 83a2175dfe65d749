// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in playfield units. The y axis points down,
// matching screen coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Rotate rotates v clockwise (screen space) by deg degrees around the origin.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromHeading returns the unit vector for a heading in degrees, where
// 0 points up and angles grow clockwise.
func FromHeading(deg float64) Vec2 {
	rad := (deg - 90) * math.Pi / 180
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Playfield is the toroidal world extent. Positions leaving one edge
// re-enter from the opposite edge.
type Playfield struct {
	W, H float64
}

// Center returns the middle of the playfield.
func (p Playfield) Center() Vec2 {
	return Vec2{X: p.W / 2, Y: p.H / 2}
}

// Wrap maps pos back into [0,W) x [0,H). Only a single correction per axis
// is applied; callers must not move further than one extent per tick.
func (p Playfield) Wrap(pos Vec2) Vec2 {
	pos.X = wrapAxis(pos.X, p.W)
	pos.Y = wrapAxis(pos.Y, p.H)
	return pos
}

func wrapAxis(v, extent float64) float64 {
	switch {
	case v < 0:
		v += extent
		// A tiny negative v can round up to exactly extent.
		if v >= extent {
			v = 0
		}
	case v >= extent:
		v -= extent
	}
	return v
}

// Contains reports whether pos lies inside [0,W) x [0,H).
func (p Playfield) Contains(pos Vec2) bool {
	return pos.X >= 0 && pos.X < p.W && pos.Y >= 0 && pos.Y < p.H
}

// Rect represents an axis-aligned box of screen cells.
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
