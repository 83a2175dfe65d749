package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// WorldSnapshot is a read-only copy of everything the presentation layer
// needs to draw one frame.
type WorldSnapshot struct {
	Frame       uint64
	Elapsed     float64
	Phase       Phase
	Destroyed   int
	Playfield   core.Playfield
	Craft       CraftView
	Obstacles   []ObstacleView
	Projectiles []ProjectileView
}

// CraftView is the drawable state of the craft.
type CraftView struct {
	Pos     core.Vec2
	Heading float64
	Outline []core.Vec2
}

// ObstacleView is the drawable state of one obstacle.
type ObstacleView struct {
	Pos     core.Vec2
	Heading float64
	Level   int
	Radius  float64
	Outline []core.Vec2
}

// ProjectileView is the drawable state of one projectile.
type ProjectileView struct {
	Pos  core.Vec2
	Life float64
}

// Snapshot captures the current world state.
func (w *World) Snapshot() WorldSnapshot {
	snap := WorldSnapshot{
		Frame:     w.frames,
		Elapsed:   w.elapsed,
		Phase:     w.phase,
		Destroyed: w.destroyed,
		Playfield: w.field,
		Craft: CraftView{
			Pos:     w.craft.Pos,
			Heading: w.craft.Heading,
			Outline: w.craft.Outline(),
		},
		Obstacles:   make([]ObstacleView, len(w.obstacles)),
		Projectiles: make([]ProjectileView, len(w.projectiles)),
	}

	for i, o := range w.obstacles {
		snap.Obstacles[i] = ObstacleView{
			Pos:     o.Pos,
			Heading: o.Heading,
			Level:   o.Level,
			Radius:  o.Radius(),
			Outline: o.Outline(),
		}
	}
	for i, p := range w.projectiles {
		snap.Projectiles[i] = ProjectileView{Pos: p.Pos, Life: p.Life}
	}
	return snap
}
