// Package game implements the Dodgey simulation: a ship, splitting obstacles
// and projectiles in a wrapping play area, driven one tick at a time.
// It performs no I/O; hosts feed it input frames and consume step results.
package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
)

// Kind identifies an entity variant.
type Kind int

const (
	KindShip Kind = iota + 1
	KindObstacle
	KindProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindObstacle:
		return "obstacle"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Body is the state shared by every entity.
type Body struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Radius float64

	dead bool // Marked during a resolution pass, dropped on compaction
}

func newBody(pos, vel core.Vec2, radius float64) Body {
	if radius <= 0 || math.IsNaN(radius) {
		panic(fmt.Sprintf("game: entity radius must be positive, got %g", radius))
	}
	return Body{Pos: pos, Vel: vel, Radius: radius}
}

// Move advances the body by its velocity and wraps it into the play area.
func (b *Body) Move(bounds core.Bounds) {
	b.Pos = core.Wrap(b.Pos.Add(b.Vel), bounds)
}

// Collides reports whether two bodies overlap. Touching circles do not collide.
func (b *Body) Collides(o *Body) bool {
	return b.Pos.Dist(o.Pos) < b.Radius+o.Radius
}

// Ship is the player-controlled entity.
type Ship struct {
	Body
	Facing core.Vec2 // Unit vector, starts at core.Up

	handling         config.ShipConfig
	projectileRadius float64
}

// NewShip creates a ship at rest facing up.
func NewShip(pos core.Vec2, handling config.ShipConfig, projectileRadius float64) *Ship {
	if projectileRadius <= 0 {
		panic(fmt.Sprintf("game: projectile radius must be positive, got %g", projectileRadius))
	}
	return &Ship{
		Body:             newBody(pos, core.Vec2{}, handling.Radius),
		Facing:           core.Up,
		handling:         handling,
		projectileRadius: projectileRadius,
	}
}

// Kind returns KindShip.
func (s *Ship) Kind() Kind { return KindShip }

// Rotate turns the facing by the ship's maneuverability, clockwise on screen
// when clockwise is true.
func (s *Ship) Rotate(clockwise bool) {
	deg := s.handling.Maneuverability
	if !clockwise {
		deg = -deg
	}
	s.Facing = s.Facing.Rotate(deg)
}

// Accelerate adds one tick of thrust along the facing.
// Speed is unbounded unless a max speed is configured.
func (s *Ship) Accelerate() {
	s.Vel = s.Vel.Add(s.Facing.Scale(s.handling.Acceleration))
	if limit := s.handling.MaxSpeed; limit > 0 {
		if speed := s.Vel.Len(); speed > limit {
			s.Vel = s.Vel.Scale(limit / speed)
		}
	}
}

// Fire returns a projectile launched from the ship's position.
// The caller owns the projectile and decides where it lives.
func (s *Ship) Fire() *Projectile {
	vel := s.Facing.Scale(s.handling.ProjectileSpeed).Add(s.Vel)
	return NewProjectile(s.Pos, vel, s.projectileRadius)
}

// Obstacle tiers.
const (
	MinTier = 1
	MaxTier = 3
)

// TierScale returns the size factor of a tier relative to the largest one.
// It panics for tiers outside MinTier..MaxTier.
func TierScale(tier int) float64 {
	switch tier {
	case 3:
		return 1
	case 2:
		return 0.5
	case 1:
		return 0.25
	default:
		panic(fmt.Sprintf("game: obstacle tier must be in %d..%d, got %d", MinTier, MaxTier, tier))
	}
}

// Obstacle is a drifting rock that splits when shot.
type Obstacle struct {
	Body
	Tier int

	baseRadius float64 // Radius of a MaxTier obstacle
}

// NewObstacle creates an obstacle of the given tier. baseRadius is the radius
// of a MaxTier obstacle; smaller tiers scale it down.
func NewObstacle(pos, vel core.Vec2, tier int, baseRadius float64) *Obstacle {
	return &Obstacle{
		Body:       newBody(pos, vel, baseRadius*TierScale(tier)),
		Tier:       tier,
		baseRadius: baseRadius,
	}
}

// Kind returns KindObstacle.
func (o *Obstacle) Kind() Kind { return KindObstacle }

// Split returns the fragments left when the obstacle is destroyed: two
// obstacles one tier down at its position with fresh random velocities,
// or none for the smallest tier.
func (o *Obstacle) Split(rng *rand.Rand, minSpeed, maxSpeed int) []*Obstacle {
	if o.Tier <= MinTier {
		return nil
	}
	children := make([]*Obstacle, 2)
	for i := range children {
		children[i] = NewObstacle(o.Pos, core.RandomVelocity(rng, minSpeed, maxSpeed), o.Tier-1, o.baseRadius)
	}
	return children
}

// Projectile flies in a straight line and is not wrapped.
type Projectile struct {
	Body
}

// NewProjectile creates a projectile.
func NewProjectile(pos, vel core.Vec2, radius float64) *Projectile {
	return &Projectile{Body: newBody(pos, vel, radius)}
}

// Kind returns KindProjectile.
func (p *Projectile) Kind() Kind { return KindProjectile }

// Move advances the projectile without wrapping.
func (p *Projectile) Move(core.Bounds) {
	p.Pos = p.Pos.Add(p.Vel)
}

// Entity is the contract shared by all variants.
type Entity interface {
	Kind() Kind
	Move(bounds core.Bounds)
}

var (
	_ Entity = (*Ship)(nil)
	_ Entity = (*Obstacle)(nil)
	_ Entity = (*Projectile)(nil)
)
