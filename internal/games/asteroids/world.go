package asteroids

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// timerEpsilon absorbs floating point drift when summing many small dt values.
const timerEpsilon = 1e-9

// Phase is the simulation state.
type Phase int

const (
	// Running is the initial phase; the world advances on every Step.
	Running Phase = iota
	// GameOver is terminal: Step no longer changes anything.
	GameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Intents is the per-frame player input consumed by the simulation.
type Intents struct {
	TurnLeft  bool
	TurnRight bool
	Thrust    bool
	Fire      bool
}

// IntentsFrom extracts simulation intents from a platform input frame.
func IntentsFrom(in core.InputFrame) Intents {
	return Intents{
		TurnLeft:  in.Has(core.ActionTurnLeft),
		TurnRight: in.Has(core.ActionTurnRight),
		Thrust:    in.Has(core.ActionThrust),
		Fire:      in.Has(core.ActionFire),
	}
}

// World is the simulation loop. It exclusively owns the craft, the obstacle
// and projectile collections, and all timers. It is not safe for
// concurrent use; the host drives it from a single goroutine.
type World struct {
	cfg   config.AsteroidsConfig
	field core.Playfield
	rng   *rand.Rand

	craft       Craft
	obstacles   []Obstacle
	projectiles []Projectile

	phase      Phase
	armed      bool    // Fire toggle: flips on every frame fire is asserted
	spawnTimer float64 // Seconds since the last periodic spawn
	elapsed    float64 // Simulated seconds while running
	frames     uint64
	destroyed  int
}

// NewWorld creates a running world with the craft centered and the initial
// obstacles placed at random positions drawn from rng.
func NewWorld(cfg config.AsteroidsConfig, rng *rand.Rand) *World {
	field := core.Playfield{W: cfg.Playfield.Width, H: cfg.Playfield.Height}
	w := &World{
		cfg:         cfg,
		field:       field,
		rng:         rng,
		craft:       NewCraft(field.Center(), cfg.Craft),
		obstacles:   make([]Obstacle, 0, cfg.Obstacles.InitialCount*4),
		projectiles: make([]Projectile, 0, 16),
		phase:       Running,
		armed:       true,
	}

	for i := 0; i < cfg.Obstacles.InitialCount; i++ {
		w.SpawnObstacle(w.randomPosition(), LevelLarge)
	}
	return w
}

// Step advances the world by dt seconds with the given intents and returns
// the resulting phase. Once GameOver is reached nothing changes any more.
// Negative dt is treated as zero.
func (w *World) Step(in Intents, dt float64) Phase {
	if w.phase == GameOver {
		return w.phase
	}
	if dt < 0 {
		dt = 0
	}
	w.frames++
	w.elapsed += dt

	if in.TurnLeft {
		w.craft.Rotate(-w.craft.TurnRate * dt)
	}
	if in.TurnRight {
		w.craft.Rotate(w.craft.TurnRate * dt)
	}
	if in.Thrust {
		w.craft.Thrust(dt)
	}

	// Holding fire alternates shot / no shot on consecutive frames.
	if in.Fire {
		if w.armed {
			w.Fire()
			w.armed = false
		} else {
			w.armed = true
		}
	}

	w.spawnTimer += dt
	if w.spawnTimer+timerEpsilon >= w.cfg.Spawn.Interval {
		w.spawnTimer = 0
		w.SpawnObstacle(w.randomPosition(), w.cfg.Spawn.Level)
	}

	w.craft.Advance(dt, w.field)
	w.advanceProjectiles(dt)
	for i := range w.obstacles {
		w.obstacles[i].Advance(dt, w.field)
	}

	w.ResolveProjectileHits()
	w.ResolveCraftHit()

	return w.phase
}

// advanceProjectiles moves every projectile and drops the expired ones.
func (w *World) advanceProjectiles(dt float64) {
	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		if !p.Advance(dt, w.field) {
			kept = append(kept, p)
		}
	}
	w.projectiles = kept
}

// ResolveProjectileHits runs the projectile/obstacle collision pass.
func (w *World) ResolveProjectileHits() HitReport {
	var report HitReport
	w.projectiles, w.obstacles, report = resolveProjectileHits(w.projectiles, w.obstacles, w.newObstacle)
	w.destroyed += report.Destroyed
	return report
}

// ResolveCraftHit runs the craft/obstacle collision pass and switches to
// GameOver on the first overlap. Returns whether the craft was hit.
func (w *World) ResolveCraftHit() bool {
	if craftHit(w.craft, w.obstacles) < 0 {
		return false
	}
	w.phase = GameOver
	return true
}

// Fire emits a projectile from the craft's nose along its heading,
// bypassing the fire toggle.
func (w *World) Fire() {
	w.projectiles = append(w.projectiles, NewProjectile(
		w.craft.Nose(),
		w.craft.Heading,
		w.cfg.Projectiles.Speed,
		w.cfg.Projectiles.Lifetime,
	))
}

// AddProjectile appends an existing projectile to the world.
func (w *World) AddProjectile(p Projectile) {
	w.projectiles = append(w.projectiles, p)
}

// SpawnObstacle creates an obstacle of the given level at pos.
func (w *World) SpawnObstacle(pos core.Vec2, level int) Obstacle {
	o := w.newObstacle(ObstacleSpec{Pos: w.field.Wrap(pos), Level: level})
	w.obstacles = append(w.obstacles, o)
	return o
}

func (w *World) newObstacle(spec ObstacleSpec) Obstacle {
	return NewObstacle(spec.Pos, spec.Level, w.cfg.Obstacles, w.rng)
}

func (w *World) randomPosition() core.Vec2 {
	return core.V(w.rng.Float64()*w.field.W, w.rng.Float64()*w.field.H)
}

// Phase returns the current simulation phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Playfield returns the world extent.
func (w *World) Playfield() core.Playfield {
	return w.field
}

// Craft returns a copy of the craft.
func (w *World) Craft() Craft {
	return w.craft
}

// Obstacles returns a copy of the obstacle collection in insertion order.
func (w *World) Obstacles() []Obstacle {
	return slices.Clone(w.obstacles)
}

// Projectiles returns a copy of the projectile collection in insertion order.
func (w *World) Projectiles() []Projectile {
	return slices.Clone(w.projectiles)
}

// Elapsed returns the simulated seconds spent running.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Frames returns the number of frames stepped while running.
func (w *World) Frames() uint64 {
	return w.frames
}

// Destroyed returns how many obstacles projectiles have destroyed.
func (w *World) Destroyed() int {
	return w.destroyed
}
