package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default simulation configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Craft: CraftConfig{
			TurnRate:        100,
			Acceleration:    200,
			Damping:         0.99,
			CollisionRadius: 15,
			NoseOffset:      15,
		},
		Obstacles: ObstacleConfig{
			InitialCount: 5,
			Vertices:     8,
			LargeRadius:  30,
			SmallRadius:  15,
			Jitter:       0.5,
			MinSpeed:     50,
			MaxSpeed:     100,
			MaxSpin:      5,
		},
		Projectiles: ProjectileConfig{
			Speed:    400,
			Lifetime: 2.0,
		},
		Spawn: SpawnConfig{
			Interval: 5.0,
			Level:    2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
