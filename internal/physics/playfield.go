package physics

import (
	"fmt"
	"math"
)

// Boundary selects what happens to objects leaving the playfield.
type Boundary int

const (
	// Bounded removes objects that leave the playfield moving outward.
	Bounded Boundary = iota
	// Wrap moves objects to the opposite edge (Asteroids-style).
	Wrap
)

func (b Boundary) String() string {
	switch b {
	case Bounded:
		return "bounded"
	case Wrap:
		return "wrap"
	}
	return fmt.Sprintf("Boundary(%d)", int(b))
}

// ParseBoundary converts a config name into a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "", "bounded":
		return Bounded, nil
	case "wrap":
		return Wrap, nil
	}
	return Bounded, fmt.Errorf("unknown boundary %q", s)
}

// Playfield is the rectangle [0, Width] x [0, Height] objects live in.
type Playfield struct {
	Width    float64
	Height   float64
	Boundary Boundary
}

// Rect returns the playfield as a box.
func (p Playfield) Rect() Rect {
	return Rect{Max: Vec2{p.Width, p.Height}}
}

// Outward reports whether pos lies outside the playfield on some axis and
// velo points further out along that axis. An object on the edge is inside.
func (p Playfield) Outward(pos, velo Vec2) bool {
	return pos.X < 0 && velo.X < 0 ||
		p.Width < pos.X && 0 < velo.X ||
		pos.Y < 0 && velo.Y < 0 ||
		p.Height < pos.Y && 0 < velo.Y
}

// WrapPosition wraps pos around the playfield edges.
func (p Playfield) WrapPosition(pos *Vec2) {
	if p.Width > 0 {
		pos.X = math.Mod(pos.X, p.Width)
		if pos.X < 0 {
			pos.X += p.Width
		}
	}
	if p.Height > 0 {
		pos.Y = math.Mod(pos.Y, p.Height)
		if pos.Y < 0 {
			pos.Y += p.Height
		}
	}
}
