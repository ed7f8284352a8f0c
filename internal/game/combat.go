package game

import "github.com/vovakirdan/dodgey/internal/core"

// World holds the live entities of a session.
// Collections are only mutated by Move, Resolve and AddProjectile.
type World struct {
	bounds      core.Bounds
	ship        *Ship // nil once destroyed
	obstacles   []*Obstacle
	projectiles []*Projectile
	population  *Population
}

// Kill records an obstacle destroyed by a projectile.
type Kill struct {
	Pos  core.Vec2
	Tier int
}

// Outcome summarizes one resolution pass.
type Outcome struct {
	ShipDestroyed bool
	ShipPos       core.Vec2 // Last ship position when ShipDestroyed
	Kills         []Kill
	Fragments     int // Obstacles created by splits
	Culled        int // Projectiles that left the play area
	Spawned       int // Obstacles added by the top-up rule
}

// Move advances every entity by one tick.
func (w *World) Move() {
	for _, o := range w.obstacles {
		o.Move(w.bounds)
	}
	for _, p := range w.projectiles {
		p.Move(w.bounds)
	}
	if w.ship != nil {
		w.ship.Move(w.bounds)
	}
}

// AddProjectile puts a fired projectile into play.
func (w *World) AddProjectile(p *Projectile) {
	w.projectiles = append(w.projectiles, p)
}

// Resolve runs collision and population rules after motion:
//  1. the ship is destroyed by the first obstacle it overlaps;
//  2. each projectile destroys the first live obstacle it overlaps,
//     fragments are staged until the pass is over;
//  3. projectiles outside the play area are dropped;
//  4. the field is topped up if it got too thin.
func (w *World) Resolve() Outcome {
	var out Outcome

	if w.ship != nil {
		for _, o := range w.obstacles {
			if o.Collides(&w.ship.Body) {
				out.ShipDestroyed = true
				out.ShipPos = w.ship.Pos
				w.ship = nil
				break
			}
		}
	}

	var staged []*Obstacle
	for _, p := range w.projectiles {
		for _, o := range w.obstacles {
			if o.dead || !o.Collides(&p.Body) {
				continue
			}
			o.dead = true
			p.dead = true
			out.Kills = append(out.Kills, Kill{Pos: o.Pos, Tier: o.Tier})
			staged = append(staged, w.population.Split(o)...)
			break
		}
	}
	w.obstacles = append(compact(w.obstacles), staged...)
	out.Fragments = len(staged)

	for _, p := range w.projectiles {
		if !p.dead && !w.bounds.ContainsInclusive(p.Pos) {
			p.dead = true
			out.Culled++
		}
	}
	w.projectiles = compact(w.projectiles)

	spawned := w.population.TopUp(len(w.obstacles), w.ship)
	w.obstacles = append(w.obstacles, spawned...)
	out.Spawned = len(spawned)

	return out
}

// deadFlagged is implemented by every entity pointer through Body.
type deadFlagged interface {
	isDead() bool
}

func (b *Body) isDead() bool { return b.dead }

// compact drops dead entries in place, keeping order.
func compact[T deadFlagged](items []T) []T {
	n := 0
	for _, it := range items {
		if !it.isDead() {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}
