package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// craftHull is the craft triangle in local coordinates, nose pointing up.
var craftHull = []core.Vec2{
	{X: 0, Y: -15},
	{X: 10, Y: 10},
	{X: -10, Y: 10},
}

// Craft is the player-controlled ship.
type Craft struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // Degrees, 0 = up, clockwise

	TurnRate   float64 // Degrees per second
	Accel      float64 // Units per second squared
	Damping    float64 // Velocity multiplier per Advance call
	Radius     float64 // Collision radius
	NoseOffset float64 // Distance from Pos to the firing tip
}

// NewCraft creates a stationary craft at pos facing up.
func NewCraft(pos core.Vec2, cfg config.CraftConfig) Craft {
	return Craft{
		Pos:        pos,
		TurnRate:   cfg.TurnRate,
		Accel:      cfg.Acceleration,
		Damping:    cfg.Damping,
		Radius:     cfg.CollisionRadius,
		NoseOffset: cfg.NoseOffset,
	}
}

// Rotate adds deg to the heading. The heading is not normalized; only its
// trigonometric functions are ever used.
func (c *Craft) Rotate(deg float64) {
	c.Heading += deg
}

// Thrust accelerates along the current heading for dt seconds.
// There is no speed cap.
func (c *Craft) Thrust(dt float64) {
	c.Vel = c.Vel.Add(core.FromHeading(c.Heading).Scale(c.Accel * dt))
}

// Advance moves the craft by its velocity, applies the per-call damping
// and wraps the position onto the playfield.
func (c *Craft) Advance(dt float64, field core.Playfield) {
	c.Pos = c.Pos.Add(c.Vel.Scale(dt))
	// Damping is per call, not per second: deceleration depends on frame rate.
	c.Vel = c.Vel.Scale(c.Damping)
	c.Pos = field.Wrap(c.Pos)
}

// Nose returns the world position of the craft's tip, where projectiles spawn.
func (c Craft) Nose() core.Vec2 {
	return c.Pos.Add(core.V(0, -c.NoseOffset).Rotate(c.Heading))
}

// Outline returns the craft triangle in world coordinates.
func (c Craft) Outline() []core.Vec2 {
	out := make([]core.Vec2, len(craftHull))
	for i, v := range craftHull {
		out[i] = c.Pos.Add(v.Rotate(c.Heading))
	}
	return out
}
