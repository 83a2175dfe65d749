// Package tui hosts a registry game in the terminal with Bubble Tea.
// It owns the tick loop, key handling and styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// maxFrameDelta caps a single step so a stalled terminal does not move
// entities further than one playfield extent.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks. The first tick and
// any clock step backwards fall back to the nominal interval.
func frameDelta(prev, now time.Time, nominal time.Duration) float64 {
	if prev.IsZero() || !now.After(prev) {
		return nominal.Seconds()
	}
	return core.ClampF(now.Sub(prev).Seconds(), 0, maxFrameDelta)
}
