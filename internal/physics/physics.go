// Package physics provides vectors, bounding boxes and distance utilities.
package physics

import "math"

// Vec2 is a 2D position or velocity in playfield units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// Normalize returns v scaled to unit length. The zero vector is returned as is.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Angle returns the heading of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Rotate returns v rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// FromAngle returns the vector of length l pointing at angle.
func FromAngle(angle, l float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c * l, s * l}
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(a, b Vec2) float64 {
	return b.Sub(a).LenSq()
}

// Rect is an axis-aligned box given by its min and max corners.
type Rect struct {
	Min, Max Vec2
}

// Around returns the box of half extents hx, hy centred on c.
func Around(c Vec2, hx, hy float64) Rect {
	return Rect{
		Min: Vec2{c.X - hx, c.Y - hy},
		Max: Vec2{c.X + hx, c.Y + hy},
	}
}

// Square returns the box of half extent h centred on c.
func Square(c Vec2, h float64) Rect {
	return Around(c, h, h)
}

// Overlaps reports whether r and o share interior area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X &&
		r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}
