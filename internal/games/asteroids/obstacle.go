package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Obstacle levels.
const (
	LevelSmall = 1
	LevelLarge = 2
)

// ObstacleSpec describes an obstacle to be created: where and how large.
type ObstacleSpec struct {
	Pos   core.Vec2
	Level int
}

// Obstacle is a drifting, spinning irregular polygon.
type Obstacle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // Degrees
	Spin    float64 // Degrees per second
	Level   int

	hull   []core.Vec2 // Local outline, fixed at construction
	radius float64     // Farthest hull vertex from the center
}

// NewObstacle builds an obstacle at pos. The outline, velocity and spin are
// drawn from rng in that order, so a seeded rng reproduces the same obstacle.
func NewObstacle(pos core.Vec2, level int, cfg config.ObstacleConfig, rng *rand.Rand) Obstacle {
	base := cfg.BaseRadius(level)
	n := cfg.Vertices

	hull := make([]core.Vec2, n)
	for i := range hull {
		angle := float64(i) * 2 * math.Pi / float64(n)
		r := base + (rng.Float64()*2-1)*cfg.Jitter*base
		hull[i] = core.V(r*math.Cos(angle), r*math.Sin(angle))
	}

	speed := cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed)
	dir := rng.Float64() * 2 * math.Pi
	spin := (rng.Float64()*2 - 1) * cfg.MaxSpin

	return newObstacleWithHull(pos, level, hull, core.V(math.Cos(dir), math.Sin(dir)).Scale(speed), spin)
}

func newObstacleWithHull(pos core.Vec2, level int, hull []core.Vec2, vel core.Vec2, spin float64) Obstacle {
	o := Obstacle{
		Pos:   pos,
		Vel:   vel,
		Spin:  spin,
		Level: level,
		hull:  hull,
	}
	for _, v := range hull {
		o.radius = math.Max(o.radius, v.Len())
	}
	return o
}

// Advance moves and spins the obstacle, then wraps it onto the playfield.
func (o *Obstacle) Advance(dt float64, field core.Playfield) {
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))
	o.Heading += o.Spin * dt
	o.Pos = field.Wrap(o.Pos)
}

// Radius returns the collision radius: the max distance from the center
// to any outline vertex. The outline never changes, so it is cached.
func (o Obstacle) Radius() float64 {
	return o.radius
}

// Fragment returns the obstacles this one breaks into when destroyed:
// two of the next lower level at its position, or none at the lowest level.
// It does not modify any collection.
func (o Obstacle) Fragment() []ObstacleSpec {
	if o.Level <= LevelSmall {
		return nil
	}
	child := ObstacleSpec{Pos: o.Pos, Level: o.Level - 1}
	return []ObstacleSpec{child, child}
}

// Outline returns the polygon in world coordinates.
func (o Obstacle) Outline() []core.Vec2 {
	out := make([]core.Vec2, len(o.hull))
	for i, v := range o.hull {
		out[i] = o.Pos.Add(v.Rotate(o.Heading))
	}
	return out
}
