package config

import (
	_ "embed"
)

//go:embed defaults/dodgey.yaml
var defaultDodgeyYAML []byte

// Default returns the built-in tuning. It matches defaults/dodgey.yaml.
func Default() DodgeyConfig {
	return DodgeyConfig{
		World: WorldConfig{
			Width:  1680,
			Height: 1050,
		},
		Ship: ShipConfig{
			Radius:          24,
			Maneuverability: 5,
			Acceleration:    0.15,
			ProjectileSpeed: 3,
			MaxSpeed:        0,
		},
		Projectile: ProjectileConfig{
			Radius: 3,
		},
		Obstacles: ObstacleConfig{
			Radius:   48,
			MinSpeed: 1,
			MaxSpeed: 3,
		},
		Population: PopulationConfig{
			Initial:          6,
			MinCount:         10,
			TopUp:            4,
			MinSpawnDistance: 300,
		},
		Scoring: ScoringConfig{
			DestroyAward: 100,
		},
		Session: SessionConfig{
			LingerTicks:  200,
			DeathMessage: "You died, game will close shortly",
		},
	}
}

// DefaultYAML returns the embedded default YAML with its comments.
func DefaultYAML() []byte {
	return defaultDodgeyYAML
}
