package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// holdWindow is how long a held action stays asserted after its last key
// event. It bridges the gap between terminal key repeats.
const holdWindow = 150 * time.Millisecond

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	held      map[core.Action]time.Time // Last key event per held action
	pulse     core.InputFrame           // One-shot actions for the next tick
	lastTick  time.Time
	gameState core.GameState
	quitting  bool
}

// NewModel creates a model for game. A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		held:   make(map[core.Action]time.Time),
		pulse:  core.NewInputFrame(),
	}
}

// playHeight reserves the bottom line for the help bar.
func playHeight(h int) int {
	return max(h-1, 1)
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case isHeld(action):
		m.held[action] = now
	default:
		m.pulse.Set(action)
	}
	return m, nil
}

// frameInput collects the actions asserted for the tick at now.
func (m Model) frameInput(now time.Time) core.InputFrame {
	in := m.pulse.Clone()
	for a, at := range m.held {
		if now.Sub(at) <= holdWindow {
			in.Set(a)
		} else {
			delete(m.held, a)
		}
	}
	return in
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.TickInterval())
	m.lastTick = now

	if m.pulse.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = now.UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.pulse.Clear()
		clear(m.held)
		m.logger.Info("restart", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickInterval())
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.frameInput(now), dt)
	m.gameState = result.State
	m.pulse.Clear()

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over", "score", m.gameState.Score)
	}

	return m, tickCmd(m.config.TickInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
