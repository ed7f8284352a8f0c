package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
)

var testBounds = core.Bounds{W: 1680, H: 1050}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBodyCollides(t *testing.T) {
	tests := []struct {
		name     string
		a, b     core.Vec2
		ra, rb   float64
		expected bool
	}{
		{"same spot", core.V(10, 10), core.V(10, 10), 1, 1, true},
		{"overlapping", core.V(0, 0), core.V(3, 4), 3, 2.5, true},
		{"touching is not a hit", core.V(0, 0), core.V(3, 4), 3, 2, false},
		{"apart", core.V(0, 0), core.V(100, 0), 10, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := newBody(tc.a, core.Vec2{}, tc.ra)
			b := newBody(tc.b, core.Vec2{}, tc.rb)
			if got := a.Collides(&b); got != tc.expected {
				t.Errorf("a.Collides(b) = %v, expected %v", got, tc.expected)
			}
			if got := b.Collides(&a); got != tc.expected {
				t.Errorf("b.Collides(a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollisionSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		a := newBody(core.RandomPosition(rng, testBounds), core.Vec2{}, 1+rng.Float64()*60)
		b := newBody(core.RandomPosition(rng, testBounds), core.Vec2{}, 1+rng.Float64()*60)
		if a.Collides(&b) != b.Collides(&a) {
			t.Fatalf("asymmetric collision for %+v and %+v", a, b)
		}
	}
}

func TestBodyMoveWraps(t *testing.T) {
	b := newBody(core.V(1679, 1), core.V(3, -2), 5)
	b.Move(testBounds)
	if !near(b.Pos.X, 2) || !near(b.Pos.Y, 1049) {
		t.Errorf("wrapped position = %v, expected (2, 1049)", b.Pos)
	}
}

func TestProjectileMoveDoesNotWrap(t *testing.T) {
	p := NewProjectile(core.V(1679, 1), core.V(3, -2), 3)
	p.Move(testBounds)
	if !near(p.Pos.X, 1682) || !near(p.Pos.Y, -1) {
		t.Errorf("projectile position = %v, expected (1682, -1)", p.Pos)
	}
}

func TestInvalidGeometryPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"zero radius", func() { NewProjectile(core.Vec2{}, core.Vec2{}, 0) }},
		{"negative radius", func() { NewObstacle(core.Vec2{}, core.Vec2{}, 3, -1) }},
		{"tier too small", func() { NewObstacle(core.Vec2{}, core.Vec2{}, 0, 48) }},
		{"tier too large", func() { NewObstacle(core.Vec2{}, core.Vec2{}, 4, 48) }},
		{"ship projectile radius", func() { NewShip(core.Vec2{}, config.Default().Ship, 0) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestTierScale(t *testing.T) {
	for tier, want := range map[int]float64{3: 1, 2: 0.5, 1: 0.25} {
		if got := TierScale(tier); got != want {
			t.Errorf("TierScale(%d) = %g, expected %g", tier, got, want)
		}
		o := NewObstacle(core.Vec2{}, core.Vec2{}, tier, 48)
		if o.Radius != 48*want {
			t.Errorf("tier %d radius = %g, expected %g", tier, o.Radius, 48*want)
		}
	}
}

func newTestShip() *Ship {
	cfg := config.Default()
	return NewShip(testBounds.Center(), cfg.Ship, cfg.Projectile.Radius)
}

func TestShipRotate(t *testing.T) {
	s := newTestShip()
	if s.Facing != core.Up {
		t.Fatalf("initial facing = %v, expected up", s.Facing)
	}

	for range 18 {
		s.Rotate(true)
	}
	if !near(s.Facing.X, 1) || math.Abs(s.Facing.Y) > 1e-9 {
		t.Errorf("after 90 degrees clockwise facing = %v, expected (1, 0)", s.Facing)
	}

	for range 36 {
		s.Rotate(false)
	}
	if !near(s.Facing.X, -1) || math.Abs(s.Facing.Y) > 1e-9 {
		t.Errorf("after 90 degrees counter-clockwise from up facing = %v, expected (-1, 0)", s.Facing)
	}
}

func TestShipAccelerate(t *testing.T) {
	s := newTestShip()
	s.Accelerate()
	if !near(s.Vel.X, 0) || !near(s.Vel.Y, -0.15) {
		t.Errorf("velocity after one thrust = %v, expected (0, -0.15)", s.Vel)
	}

	// No cap by default.
	for range 999 {
		s.Accelerate()
	}
	if math.Abs(s.Vel.Len()-150) > 1e-6 {
		t.Errorf("speed after 1000 thrusts = %f, expected 150", s.Vel.Len())
	}
}

func TestShipMaxSpeed(t *testing.T) {
	cfg := config.Default()
	cfg.Ship.MaxSpeed = 2
	s := NewShip(testBounds.Center(), cfg.Ship, cfg.Projectile.Radius)
	for range 100 {
		s.Accelerate()
	}
	if math.Abs(s.Vel.Len()-2) > 1e-9 {
		t.Errorf("capped speed = %f, expected 2", s.Vel.Len())
	}
}

func TestShipFire(t *testing.T) {
	s := newTestShip()
	s.Vel = core.V(1, 0.5)
	s.Rotate(true)

	p := s.Fire()
	if p.Pos != s.Pos {
		t.Errorf("projectile position = %v, expected ship position %v", p.Pos, s.Pos)
	}
	want := s.Facing.Scale(3).Add(s.Vel)
	if !near(p.Vel.X, want.X) || !near(p.Vel.Y, want.Y) {
		t.Errorf("projectile velocity = %v, expected %v", p.Vel, want)
	}
	if p.Radius != config.Default().Projectile.Radius {
		t.Errorf("projectile radius = %g", p.Radius)
	}
}

func TestObstacleSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	parent := NewObstacle(core.V(100, 200), core.V(1, 1), 3, 48)

	children := parent.Split(rng, 1, 3)
	if len(children) != 2 {
		t.Fatalf("tier 3 split produced %d children, expected 2", len(children))
	}
	for _, c := range children {
		if c.Tier != 2 {
			t.Errorf("child tier = %d, expected 2", c.Tier)
		}
		if c.Pos != parent.Pos {
			t.Errorf("child position = %v, expected %v", c.Pos, parent.Pos)
		}
		if c.Radius != 24 {
			t.Errorf("child radius = %g, expected 24", c.Radius)
		}
		speed := c.Vel.Len()
		if speed < 1-1e-9 || speed > 3+1e-9 {
			t.Errorf("child speed %f outside [1, 3]", speed)
		}
	}

	grandchildren := children[0].Split(rng, 1, 3)
	if len(grandchildren) != 2 || grandchildren[0].Tier != 1 || grandchildren[0].Radius != 12 {
		t.Errorf("tier 2 split = %+v", grandchildren)
	}

	if got := grandchildren[0].Split(rng, 1, 3); len(got) != 0 {
		t.Errorf("tier 1 split produced %d children, expected none", len(got))
	}
}

func TestKindString(t *testing.T) {
	entities := []Entity{newTestShip(), NewObstacle(core.Vec2{}, core.Vec2{}, 1, 48), NewProjectile(core.Vec2{}, core.Vec2{}, 3)}
	want := []string{"ship", "obstacle", "projectile"}
	for i, e := range entities {
		if e.Kind().String() != want[i] {
			t.Errorf("entity %d kind = %q, expected %q", i, e.Kind(), want[i])
		}
	}
}
