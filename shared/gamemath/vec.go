// Package gamemath holds the 2D vector and angle helpers shared by the
// simulation and the renderer.
package gamemath

import "math"

// ZeroLenSq is the squared length at or below which a vector normalizes to zero.
const ZeroLenSq = 1e-5

// Vec2 is a 2D vector in world pixels.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector, or the zero vector when v is too short
// to have a direction.
func (v Vec2) Normalize() Vec2 {
	lsq := v.LenSq()
	if lsq <= ZeroLenSq {
		return Vec2{}
	}
	l := math.Sqrt(lsq)
	return Vec2{v.X / l, v.Y / l}
}

// NormalCC is v rotated a quarter turn counter-clockwise.
func (v Vec2) NormalCC() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Rotate returns v rotated by theta radians.
func (v Vec2) Rotate(theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Angle is the bearing of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
