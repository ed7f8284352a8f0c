// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Vec2 is a 2D real vector in world units. Y grows downward, like the screen.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Up is the initial ship facing.
var Up = Vec2{X: 0, Y: -1}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Rotate returns v rotated by deg degrees around the origin.
// With Y pointing down, a positive angle turns clockwise on screen.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the heading of v in degrees in [0, 360), 0 along +X,
// increasing clockwise on screen.
func (v Vec2) Angle() float64 {
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Bounds is the size of the play area. The area spans [0,W) x [0,H).
type Bounds struct {
	W, H float64
}

// Center returns the middle of the play area.
func (b Bounds) Center() Vec2 {
	return Vec2{X: b.W / 2, Y: b.H / 2}
}

// ContainsInclusive reports whether p lies in [0,W] x [0,H].
func (b Bounds) ContainsInclusive(p Vec2) bool {
	return p.X >= 0 && p.X <= b.W && p.Y >= 0 && p.Y <= b.H
}

// Wrap folds p into [0,W) x [0,H) component-wise.
func Wrap(p Vec2, b Bounds) Vec2 {
	return Vec2{X: wrapAxis(p.X, b.W), Y: wrapAxis(p.Y, b.H)}
}

// wrapAxis is a modulo that never returns a negative value for size > 0.
func wrapAxis(v, size float64) float64 {
	m := math.Mod(v, size)
	if m < 0 {
		m += size
	}
	// -tiny + size can round up to size itself.
	if m >= size {
		m = 0
	}
	return m
}

// RandomPosition returns a point drawn uniformly from [0,W) x [0,H).
func RandomPosition(rng *rand.Rand, b Bounds) Vec2 {
	return Vec2{X: rng.Float64() * b.W, Y: rng.Float64() * b.H}
}

// RandomVelocity draws an integer speed in [minSpeed, maxSpeed] and a heading
// in [0, 360) degrees, and returns the corresponding velocity vector.
func RandomVelocity(rng *rand.Rand, minSpeed, maxSpeed int) Vec2 {
	speed := minSpeed
	if maxSpeed > minSpeed {
		speed = minSpeed + rng.Intn(maxSpeed-minSpeed+1)
	}
	heading := rng.Float64() * 360
	return Vec2{X: float64(speed), Y: 0}.Rotate(heading)
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
