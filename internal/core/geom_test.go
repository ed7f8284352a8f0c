package core

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestWrap(t *testing.T) {
	b := Bounds{W: 1680, H: 1050}

	tests := []struct {
		name     string
		in       Vec2
		expected Vec2
	}{
		{"inside", V(100, 200), V(100, 200)},
		{"origin", V(0, 0), V(0, 0)},
		{"right edge wraps to zero", V(1680, 10), V(0, 10)},
		{"bottom edge wraps to zero", V(10, 1050), V(10, 0)},
		{"negative x", V(-1, 10), V(1679, 10)},
		{"negative y", V(10, -50), V(10, 1000)},
		{"far positive", V(1680*3+5, 1050*2+7), V(5, 7)},
		{"far negative", V(-1680*2-5, -1050-7), V(1675, 1043)},
		{"tiny negative", V(-1e-18, -1e-18), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, b)
			if !near(got.X, tc.expected.X) || !near(got.Y, tc.expected.Y) {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestWrapIdempotentAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bounds := []Bounds{{W: 1680, H: 1050}, {W: 1, H: 1}, {W: 33.5, H: 0.25}}

	for _, b := range bounds {
		for i := 0; i < 2000; i++ {
			p := V((rng.Float64()-0.5)*1e6, (rng.Float64()-0.5)*1e6)
			w := Wrap(p, b)
			if w.X < 0 || w.X >= b.W || w.Y < 0 || w.Y >= b.H {
				t.Fatalf("Wrap(%v, %v) = %v out of range", p, b, w)
			}
			if ww := Wrap(w, b); ww != w {
				t.Fatalf("Wrap not idempotent: %v -> %v -> %v", p, w, ww)
			}
		}
	}
}

func TestRotate(t *testing.T) {
	// Clockwise on a y-down screen: up turns toward +X.
	r := Up.Rotate(90)
	if !near(r.X, 1) || !near(r.Y, 0) {
		t.Errorf("Up.Rotate(90) = %v, expected (1, 0)", r)
	}

	r = Up.Rotate(-90)
	if !near(r.X, -1) || !near(r.Y, 0) {
		t.Errorf("Up.Rotate(-90) = %v, expected (-1, 0)", r)
	}

	// Rotation keeps length.
	v := V(3, 4).Rotate(37)
	if !near(v.Len(), 5) {
		t.Errorf("Rotate changed length: %f", v.Len())
	}

	// 72 steps of 5 degrees is a full turn.
	d := Up
	for i := 0; i < 72; i++ {
		d = d.Rotate(5)
	}
	if math.Abs(d.X-Up.X) > 1e-6 || math.Abs(d.Y-Up.Y) > 1e-6 {
		t.Errorf("full turn drifted: %v", d)
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		v        Vec2
		expected float64
	}{
		{V(1, 0), 0},
		{V(0, 1), 90},
		{V(-1, 0), 180},
		{V(0, -1), 270},
	}
	for _, tc := range tests {
		if got := tc.v.Angle(); !near(got, tc.expected) {
			t.Errorf("%v.Angle() = %f, expected %f", tc.v, got, tc.expected)
		}
	}
}

func TestRandomPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bounds{W: 1680, H: 1050}
	for i := 0; i < 1000; i++ {
		p := RandomPosition(rng, b)
		if p.X < 0 || p.X >= b.W || p.Y < 0 || p.Y >= b.H {
			t.Fatalf("RandomPosition out of bounds: %v", p)
		}
	}
}

func TestRandomVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := RandomVelocity(rng, 1, 3)
		speed := v.Len()
		rounded := math.Round(speed)
		if math.Abs(speed-rounded) > 1e-9 {
			t.Fatalf("speed %f is not an integer", speed)
		}
		if rounded < 1 || rounded > 3 {
			t.Fatalf("speed %f outside [1, 3]", speed)
		}
		seen[int(rounded)] = true
	}
	for s := 1; s <= 3; s++ {
		if !seen[s] {
			t.Errorf("speed %d never drawn", s)
		}
	}

	// Degenerate band.
	v := RandomVelocity(rng, 2, 2)
	if !near(v.Len(), 2) {
		t.Errorf("fixed band speed = %f, expected 2", v.Len())
	}
}

func TestBoundsContainsInclusive(t *testing.T) {
	b := Bounds{W: 100, H: 50}
	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(50, 25), true},
		{"origin", V(0, 0), true},
		{"far corner", V(100, 50), true},
		{"left", V(-0.1, 25), false},
		{"right", V(100.1, 25), false},
		{"above", V(50, -0.1), false},
		{"below", V(50, 50.1), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.ContainsInclusive(tc.p); got != tc.expected {
				t.Errorf("ContainsInclusive(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(-1.5, -1, 1); got != -1 {
		t.Errorf("ClampF(-1.5, -1, 1) = %f, expected -1", got)
	}
}
