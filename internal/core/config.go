package core

import "time"

// Host defaults applied by RuntimeConfig.Normalized.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the host hands to a game on Reset: the terminal
// size, the tick rate it will be driven at, and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Ticks per second requested from the host loop
	Seed     int64 // 0 asks the host for a time-based seed
}

// DefaultConfig returns the runtime used when the terminal size is unknown.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultScreenW,
		ScreenH:  DefaultScreenH,
		TickRate: DefaultTickRate,
	}
}

// Normalized returns a copy with non-positive sizes and rates replaced by
// the defaults. The seed is left alone.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// TickInterval returns the nominal time between ticks.
func (c RuntimeConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Normalized().TickRate)
}

// GameState is the status a game reports to the host after each step.
type GameState struct {
	Score    int // Obstacles destroyed this session
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
