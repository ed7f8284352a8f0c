package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
)

// newTestWorld returns a world with a ship at the center and no obstacles.
// The top-up rule is disabled unless minCount > 0.
func newTestWorld(minCount int) (*World, config.DodgeyConfig) {
	cfg := config.Default()
	cfg.Population.MinCount = minCount
	bounds := core.Bounds{W: cfg.World.Width, H: cfg.World.Height}
	return &World{
		bounds:     bounds,
		ship:       NewShip(bounds.Center(), cfg.Ship, cfg.Projectile.Radius),
		population: newTestPopulation(21, cfg),
	}, cfg
}

func TestResolveShipHit(t *testing.T) {
	w, cfg := newTestWorld(0)
	far := NewObstacle(core.V(100, 100), core.Vec2{}, 3, cfg.Obstacles.Radius)
	hit := NewObstacle(w.ship.Pos.Add(core.V(30, 0)), core.Vec2{}, 3, cfg.Obstacles.Radius)
	w.obstacles = []*Obstacle{far, hit}
	pos := w.ship.Pos

	out := w.Resolve()
	if !out.ShipDestroyed {
		t.Fatal("ship should be destroyed")
	}
	if out.ShipPos != pos {
		t.Errorf("ShipPos = %v, expected %v", out.ShipPos, pos)
	}
	if w.ship != nil {
		t.Error("ship should be absent")
	}
	if len(w.obstacles) != 2 {
		t.Errorf("ship collision should not remove obstacles, got %d", len(w.obstacles))
	}
}

func TestResolveShipMiss(t *testing.T) {
	w, cfg := newTestWorld(0)
	// Radii 24 + 48 = 72: exactly touching is not a hit.
	w.obstacles = []*Obstacle{NewObstacle(w.ship.Pos.Add(core.V(72, 0)), core.Vec2{}, 3, cfg.Obstacles.Radius)}

	if out := w.Resolve(); out.ShipDestroyed || w.ship == nil {
		t.Error("touching obstacle should not destroy the ship")
	}
}

func TestResolveSplitConservation(t *testing.T) {
	tests := []struct {
		tier          int
		wantFragments int
	}{
		{3, 2},
		{2, 2},
		{1, 0},
	}

	for _, tc := range tests {
		w, cfg := newTestWorld(0)
		target := NewObstacle(core.V(200, 200), core.Vec2{}, tc.tier, cfg.Obstacles.Radius)
		bystander := NewObstacle(core.V(1500, 900), core.Vec2{}, 3, cfg.Obstacles.Radius)
		w.obstacles = []*Obstacle{target, bystander}
		w.AddProjectile(NewProjectile(core.V(201, 200), core.Vec2{}, cfg.Projectile.Radius))

		out := w.Resolve()

		if len(out.Kills) != 1 || out.Kills[0].Tier != tc.tier {
			t.Fatalf("tier %d: kills = %+v", tc.tier, out.Kills)
		}
		if out.Fragments != tc.wantFragments {
			t.Errorf("tier %d: fragments = %d, expected %d", tc.tier, out.Fragments, tc.wantFragments)
		}
		if got, want := len(w.obstacles), 2-1+tc.wantFragments; got != want {
			t.Errorf("tier %d: obstacles = %d, expected %d", tc.tier, got, want)
		}
		if len(w.projectiles) != 0 {
			t.Errorf("tier %d: projectile should be consumed", tc.tier)
		}
		for _, o := range w.obstacles[1:] {
			if o.Tier != tc.tier-1 || o.Pos != target.Pos {
				t.Errorf("tier %d: bad fragment %+v", tc.tier, o)
			}
		}
	}
}

func TestResolveFragmentsNotHitSamePass(t *testing.T) {
	w, cfg := newTestWorld(0)
	w.obstacles = []*Obstacle{NewObstacle(core.V(500, 500), core.Vec2{}, 3, cfg.Obstacles.Radius)}
	w.AddProjectile(NewProjectile(core.V(500, 500), core.Vec2{}, cfg.Projectile.Radius))
	w.AddProjectile(NewProjectile(core.V(500, 500), core.Vec2{}, cfg.Projectile.Radius))

	out := w.Resolve()
	if len(out.Kills) != 1 {
		t.Fatalf("kills = %d, expected 1", len(out.Kills))
	}
	if len(w.projectiles) != 1 {
		t.Errorf("second projectile should survive, %d left", len(w.projectiles))
	}

	// Next pass the fragments are live.
	out = w.Resolve()
	if len(out.Kills) != 1 || out.Kills[0].Tier != 2 {
		t.Errorf("second pass kills = %+v, expected one tier 2", out.Kills)
	}
}

func TestResolveOneKillPerProjectile(t *testing.T) {
	w, cfg := newTestWorld(0)
	a := NewObstacle(core.V(500, 500), core.Vec2{}, 1, cfg.Obstacles.Radius)
	b := NewObstacle(core.V(502, 500), core.Vec2{}, 1, cfg.Obstacles.Radius)
	w.obstacles = []*Obstacle{a, b}
	w.AddProjectile(NewProjectile(core.V(501, 500), core.Vec2{}, cfg.Projectile.Radius))

	out := w.Resolve()
	if len(out.Kills) != 1 {
		t.Fatalf("kills = %d, expected 1", len(out.Kills))
	}
	if len(w.obstacles) != 1 || w.obstacles[0] != b {
		t.Error("first obstacle in order should be the one destroyed")
	}
}

func TestResolveCullsProjectiles(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		keep bool
	}{
		{"inside", core.V(10, 10), true},
		{"origin", core.V(0, 0), true},
		{"far corner is inside", core.V(1680, 1050), true},
		{"left", core.V(-0.5, 10), false},
		{"right", core.V(1680.5, 10), false},
		{"top", core.V(10, -0.5), false},
		{"bottom", core.V(10, 1050.5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, cfg := newTestWorld(0)
			w.ship = nil
			w.AddProjectile(NewProjectile(tc.pos, core.Vec2{}, cfg.Projectile.Radius))

			out := w.Resolve()
			kept := len(w.projectiles) == 1
			if kept != tc.keep {
				t.Errorf("kept = %v, expected %v", kept, tc.keep)
			}
			if !tc.keep && out.Culled != 1 {
				t.Errorf("Culled = %d, expected 1", out.Culled)
			}
		})
	}
}

func TestResolvePopulationFloor(t *testing.T) {
	w, cfg := newTestWorld(10)
	for i := range 9 {
		w.obstacles = append(w.obstacles, NewObstacle(core.V(float64(50+i*150), 60), core.Vec2{}, 3, cfg.Obstacles.Radius))
	}

	out := w.Resolve()
	if out.Spawned != 4 || len(w.obstacles) != 13 {
		t.Errorf("spawned %d, have %d, expected 4 and 13", out.Spawned, len(w.obstacles))
	}
	for _, o := range w.obstacles[9:] {
		if o.Pos.Dist(w.ship.Pos) <= cfg.Population.MinSpawnDistance {
			t.Errorf("spawned obstacle too close to ship: %v", o.Pos)
		}
	}

	// At the threshold nothing is added.
	if out := w.Resolve(); out.Spawned != 0 {
		t.Errorf("spawned %d at threshold", out.Spawned)
	}
}

func TestResolveNoTopUpWithoutShip(t *testing.T) {
	w, _ := newTestWorld(10)
	w.ship = nil
	if out := w.Resolve(); out.Spawned != 0 || len(w.obstacles) != 0 {
		t.Errorf("top-up ran without a ship: spawned %d", out.Spawned)
	}
}

func TestResolveRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	w, cfg := newTestWorld(10)
	w.obstacles = w.population.Seed(w.ship.Pos)

	for tick := 0; tick < 500 && w.ship != nil; tick++ {
		if rng.Intn(3) == 0 {
			w.ship.Rotate(rng.Intn(2) == 0)
			w.AddProjectile(w.ship.Fire())
		}
		before := len(w.obstacles)
		w.Move()
		out := w.Resolve()

		for _, p := range w.projectiles {
			if !w.bounds.ContainsInclusive(p.Pos) {
				t.Fatalf("tick %d: projectile outside play area: %v", tick, p.Pos)
			}
		}
		afterCombat := before - len(out.Kills) + out.Fragments
		if got := len(w.obstacles); got != afterCombat+out.Spawned {
			t.Fatalf("tick %d: obstacle count %d, expected %d", tick, got, afterCombat+out.Spawned)
		}
		if afterCombat < cfg.Population.MinCount && w.ship != nil && out.Spawned != cfg.Population.TopUp {
			t.Fatalf("tick %d: field at %d was not topped up", tick, afterCombat)
		}
	}
}
