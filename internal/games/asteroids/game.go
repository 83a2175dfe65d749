// Package asteroids implements a wraparound space shooter.
// The player steers a craft on a toroidal playfield, shooting drifting
// obstacles that break into smaller pieces, and loses on the first contact.
package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// GameID is the registry identifier of this game.
const GameID = "asteroids"

// Game adapts the World simulation to the registry.Game interface and adds
// the platform-facing concerns: pause, restart and rendering.
type Game struct {
	world   *World
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new game instance using the configured config path.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the game with a fresh world seeded from runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.cfg == (config.AsteroidsConfig{}) {
		cfg, err := config.LoadAsteroids(configPath)
		if err != nil {
			cfg = config.DefaultAsteroidsConfig()
		}
		g.cfg = cfg
	}

	g.world = NewWorld(g.cfg, rand.New(rand.NewSource(runtime.Seed)))
	g.paused = false
}

// Step advances the game by one frame of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.world == nil || g.world.Phase() == GameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(IntentsFrom(in), dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:    g.world.Destroyed(),
		GameOver: g.world.Phase() == GameOver,
		Paused:   g.paused,
	}
}

// World exposes the underlying simulation.
func (g *Game) World() *World {
	return g.world
}

// Config returns the simulation config in use.
func (g *Game) Config() config.AsteroidsConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
