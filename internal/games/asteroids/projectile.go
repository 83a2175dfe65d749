package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Projectile is a short-lived shot travelling in a straight line.
type Projectile struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Life float64 // Seconds remaining
}

// NewProjectile fires a projectile from pos along angleDeg (0 = up).
func NewProjectile(pos core.Vec2, angleDeg, speed, lifetime float64) Projectile {
	return Projectile{
		Pos:  pos,
		Vel:  core.FromHeading(angleDeg).Scale(speed),
		Life: lifetime,
	}
}

// Advance moves the projectile, wraps it and burns dt of its lifetime.
// Returns true once the projectile has expired.
func (p *Projectile) Advance(dt float64, field core.Playfield) bool {
	p.Pos = field.Wrap(p.Pos.Add(p.Vel.Scale(dt)))
	p.Life -= dt
	return p.Life <= 0
}
