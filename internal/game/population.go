package game

import (
	"math/rand"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
)

// Population creates obstacles: the initial field, top-ups when the field
// thins out, and fragments of destroyed obstacles.
type Population struct {
	rng       *rand.Rand
	bounds    core.Bounds
	obstacles config.ObstacleConfig
	rules     config.PopulationConfig
}

// NewPopulation creates a population manager drawing from rng.
func NewPopulation(rng *rand.Rand, bounds core.Bounds, obstacles config.ObstacleConfig, rules config.PopulationConfig) *Population {
	return &Population{
		rng:       rng,
		bounds:    bounds,
		obstacles: obstacles,
		rules:     rules,
	}
}

// Place draws random positions until one is farther than the minimum spawn
// distance from avoid.
func (p *Population) Place(avoid core.Vec2) core.Vec2 {
	for {
		pos := core.RandomPosition(p.rng, p.bounds)
		if pos.Dist(avoid) > p.rules.MinSpawnDistance {
			return pos
		}
	}
}

// Spawn creates n full-size obstacles placed away from avoid.
func (p *Population) Spawn(n int, avoid core.Vec2) []*Obstacle {
	out := make([]*Obstacle, 0, n)
	for range n {
		pos := p.Place(avoid)
		vel := core.RandomVelocity(p.rng, p.obstacles.MinSpeed, p.obstacles.MaxSpeed)
		out = append(out, NewObstacle(pos, vel, MaxTier, p.obstacles.Radius))
	}
	return out
}

// Seed returns the initial obstacle field around the ship.
func (p *Population) Seed(ship core.Vec2) []*Obstacle {
	return p.Spawn(p.rules.Initial, ship)
}

// TopUp returns the obstacles to add when count has dropped below the
// minimum. Nothing is added while the ship is absent, since placement
// needs a position to keep away from.
func (p *Population) TopUp(count int, ship *Ship) []*Obstacle {
	if ship == nil || count >= p.rules.MinCount {
		return nil
	}
	return p.Spawn(p.rules.TopUp, ship.Pos)
}

// Split returns the fragments of a destroyed obstacle.
// Fragments ignore the spawn distance.
func (p *Population) Split(o *Obstacle) []*Obstacle {
	return o.Split(p.rng, p.obstacles.MinSpeed, p.obstacles.MaxSpeed)
}
