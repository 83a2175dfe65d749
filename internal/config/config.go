// Package config provides YAML-based game configuration loading for the
// asteroids simulation.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all tunable parameters of the simulation.
type AsteroidsConfig struct {
	Playfield   PlayfieldConfig  `yaml:"playfield"`
	Craft       CraftConfig      `yaml:"craft"`
	Obstacles   ObstacleConfig   `yaml:"obstacles"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Spawn       SpawnConfig      `yaml:"spawn"`
}

// PlayfieldConfig defines the toroidal world extent in playfield units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CraftConfig defines the player craft.
type CraftConfig struct {
	TurnRate        float64 `yaml:"turn_rate"`        // Degrees per second
	Acceleration    float64 `yaml:"acceleration"`     // Units per second squared
	Damping         float64 `yaml:"damping"`          // Velocity multiplier applied once per update call
	CollisionRadius float64 `yaml:"collision_radius"` // Approximate hit circle
	NoseOffset      float64 `yaml:"nose_offset"`      // Distance from center to the firing tip
}

// ObstacleConfig defines obstacle generation.
type ObstacleConfig struct {
	InitialCount int     `yaml:"initial_count"`
	Vertices     int     `yaml:"vertices"`
	LargeRadius  float64 `yaml:"large_radius"` // Base radius for level 2
	SmallRadius  float64 `yaml:"small_radius"` // Base radius for level 1
	Jitter       float64 `yaml:"jitter"`       // Max vertex radius perturbation as a fraction of base
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MaxSpin      float64 `yaml:"max_spin"` // Degrees per second, applied as [-max, max)
}

// ProjectileConfig defines fired projectiles.
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"` // Seconds
}

// SpawnConfig defines the periodic obstacle spawner.
type SpawnConfig struct {
	Interval float64 `yaml:"interval"` // Simulated seconds between spawns
	Level    int     `yaml:"level"`
}

// BaseRadius returns the outline base radius for an obstacle level.
func (c ObstacleConfig) BaseRadius(level int) float64 {
	if level >= 2 {
		return c.LargeRadius
	}
	return c.SmallRadius
}

// Validate checks that the configuration describes a playable world.
func (c AsteroidsConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive extent, got %vx%v",
			c.Playfield.Width, c.Playfield.Height))
	}
	if c.Craft.Damping < 0 || c.Craft.Damping > 1 {
		errs = append(errs, fmt.Errorf("craft damping must be within [0, 1], got %v", c.Craft.Damping))
	}
	if c.Craft.CollisionRadius < 0 {
		errs = append(errs, fmt.Errorf("craft collision radius must not be negative, got %v", c.Craft.CollisionRadius))
	}
	if c.Obstacles.Vertices < 3 {
		errs = append(errs, fmt.Errorf("obstacles need at least 3 vertices, got %d", c.Obstacles.Vertices))
	}
	if c.Obstacles.InitialCount < 0 {
		errs = append(errs, fmt.Errorf("initial obstacle count must not be negative, got %d", c.Obstacles.InitialCount))
	}
	if c.Obstacles.LargeRadius <= 0 || c.Obstacles.SmallRadius <= 0 {
		errs = append(errs, errors.New("obstacle radii must be positive"))
	}
	if c.Obstacles.Jitter < 0 || c.Obstacles.Jitter >= 1 {
		errs = append(errs, fmt.Errorf("obstacle jitter must be within [0, 1), got %v", c.Obstacles.Jitter))
	}
	if c.Obstacles.MinSpeed < 0 || c.Obstacles.MaxSpeed < c.Obstacles.MinSpeed {
		errs = append(errs, fmt.Errorf("obstacle speed range [%v, %v) is invalid",
			c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed))
	}
	if c.Projectiles.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("projectile lifetime must be positive, got %v", c.Projectiles.Lifetime))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn interval must be positive, got %v", c.Spawn.Interval))
	}
	if c.Spawn.Level < 1 || c.Spawn.Level > 2 {
		errs = append(errs, fmt.Errorf("spawn level must be 1 or 2, got %d", c.Spawn.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid asteroids config: %w", errors.Join(errs...))
	}
	return nil
}
