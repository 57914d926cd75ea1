// Package geom provides the small 2D vector math the ray caster and
// player movement are built on.
package geom

import "math"

// Vec2 is a 2D point or direction in grid space.
type Vec2 struct {
	X, Y float64
}

// Cell is an integer grid coordinate, the per-axis floor of a Vec2.
type Cell struct {
	X, Y int
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated counter-clockwise by the given angle in
// radians. Rotation is orthogonal, so lengths and relative angles are
// preserved.
func (v Vec2) Rotate(radians float64) Vec2 {
	c := math.Cos(radians)
	s := math.Sin(radians)
	return Vec2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Floor returns the grid cell containing v.
func (v Vec2) Floor() Cell {
	return Cell{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Angle returns the heading of v in [0, 2π).
func (v Vec2) Angle() float64 {
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
