// Package config provides YAML-based tuning for the simulation: world size,
// ship handling, obstacle population and session timing.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DodgeyConfig contains all tuning for a session.
type DodgeyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Population PopulationConfig `yaml:"population"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Session    SessionConfig    `yaml:"session"`
}

// WorldConfig defines the play area in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines ship handling.
type ShipConfig struct {
	Radius          float64 `yaml:"radius"`
	Maneuverability float64 `yaml:"maneuverability"`  // Degrees per tick
	Acceleration    float64 `yaml:"acceleration"`     // Units per tick squared
	ProjectileSpeed float64 `yaml:"projectile_speed"` // Launch speed relative to the ship
	MaxSpeed        float64 `yaml:"max_speed"`        // 0 = uncapped
}

// ProjectileConfig defines projectile geometry.
type ProjectileConfig struct {
	Radius float64 `yaml:"radius"`
}

// ObstacleConfig defines obstacle geometry and speed band.
type ObstacleConfig struct {
	Radius   float64 `yaml:"radius"` // Radius of a tier-3 obstacle
	MinSpeed int     `yaml:"min_speed"`
	MaxSpeed int     `yaml:"max_speed"`
}

// PopulationConfig defines seeding and replenishment.
type PopulationConfig struct {
	Initial          int     `yaml:"initial"`            // Obstacles seeded before the first tick
	MinCount         int     `yaml:"min_count"`          // Top-up threshold
	TopUp            int     `yaml:"top_up"`             // Obstacles added when below threshold
	MinSpawnDistance float64 `yaml:"min_spawn_distance"` // Required distance from the ship
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	DestroyAward int `yaml:"destroy_award"`
}

// SessionConfig defines state machine timing and messages.
type SessionConfig struct {
	LingerTicks  int    `yaml:"linger_ticks"`
	DeathMessage string `yaml:"death_message"`
}

// Validate checks invariants the simulation relies on.
func (c DodgeyConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive, got %gx%g", ErrInvalid, c.World.Width, c.World.Height)
	case c.Ship.Radius <= 0:
		return fmt.Errorf("%w: ship radius must be positive", ErrInvalid)
	case c.Projectile.Radius <= 0:
		return fmt.Errorf("%w: projectile radius must be positive", ErrInvalid)
	case c.Obstacles.Radius <= 0:
		return fmt.Errorf("%w: obstacle radius must be positive", ErrInvalid)
	case c.Obstacles.MinSpeed < 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed:
		return fmt.Errorf("%w: obstacle speed band [%d, %d]", ErrInvalid, c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed)
	case c.Ship.MaxSpeed < 0:
		return fmt.Errorf("%w: ship max_speed must not be negative", ErrInvalid)
	case c.Population.Initial < 0 || c.Population.MinCount < 0 || c.Population.TopUp < 0:
		return fmt.Errorf("%w: population counts must not be negative", ErrInvalid)
	case c.Session.LingerTicks < 0:
		return fmt.Errorf("%w: linger_ticks must not be negative", ErrInvalid)
	}

	// From any point of the area the farthest corner is at least half the
	// diagonal away, so placement sampling always terminates below it.
	halfDiag := math.Hypot(c.World.Width, c.World.Height) / 2
	if c.Population.MinSpawnDistance < 0 || c.Population.MinSpawnDistance >= halfDiag {
		return fmt.Errorf("%w: min_spawn_distance %g must be in [0, %g)", ErrInvalid, c.Population.MinSpawnDistance, halfDiag)
	}
	return nil
}
