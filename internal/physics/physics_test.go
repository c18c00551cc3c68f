package physics

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	a := Square(Vec2{10, 10}, 4)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"inside", Square(Vec2{10, 10}, 1), true},
		{"corner", Square(Vec2{16, 16}, 3), true},
		{"touching edge", Square(Vec2{18, 10}, 4), false},
		{"apart", Square(Vec2{40, 40}, 4), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reversed: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutward(t *testing.T) {
	p := Playfield{Width: 100, Height: 50}
	tests := []struct {
		name      string
		pos, velo Vec2
		want      bool
	}{
		{"inside moving out", Vec2{50, 25}, Vec2{-10, 0}, false},
		{"left edge moving out", Vec2{0, 25}, Vec2{-1, 0}, false},
		{"past left moving out", Vec2{-1, 25}, Vec2{-1, 0}, true},
		{"past left moving in", Vec2{-1, 25}, Vec2{1, 0}, false},
		{"past right moving out", Vec2{101, 25}, Vec2{1, 0}, true},
		{"past bottom moving out", Vec2{50, 51}, Vec2{0, 1}, true},
		{"past top standing", Vec2{50, -5}, Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Outward(tt.pos, tt.velo); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapPosition(t *testing.T) {
	p := Playfield{Width: 100, Height: 50, Boundary: Wrap}
	pos := Vec2{-10, 120}
	p.WrapPosition(&pos)
	if pos.X != 90 || pos.Y != 20 {
		t.Errorf("got %v, want {90 20}", pos)
	}
}

func TestParseBoundary(t *testing.T) {
	for name, want := range map[string]Boundary{"": Bounded, "bounded": Bounded, "wrap": Wrap} {
		got, err := ParseBoundary(name)
		if err != nil || got != want {
			t.Errorf("ParseBoundary(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseBoundary("bounce"); err == nil {
		t.Error("expected an error for an unknown boundary")
	}
}

func TestVectorHelpers(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, want 5", v.Len())
	}
	n := v.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("normalized length %v, want 1", n.Len())
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("zero vector changed by Normalize")
	}
	r := Vec2{1, 0}.Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-12 || math.Abs(r.Y-1) > 1e-12 {
		t.Errorf("Rotate = %v, want {0 1}", r)
	}
	if d := DistanceSquared(Vec2{}, v); d != 25 {
		t.Errorf("DistanceSquared = %v, want 25", d)
	}
}
