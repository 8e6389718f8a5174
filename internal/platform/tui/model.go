package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configure a session model.
type Options struct {
	Game    config.FlappyConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; runs are not recorded without it
	Logger  *log.Logger    // Optional; discards output when nil
	Player  string
}

// Model is the Bubble Tea model for one flappy session.
type Model struct {
	sim    *flappy.Simulation
	screen *core.Screen
	store  *storage.Store
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	board  leaderboard
	config core.RuntimeConfig
	player string

	paused     bool
	showScores bool
	quitting   bool
	lastRunID  string
}

// NewModel creates a session with a fresh simulation in the Start state.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = opts.Game.Timing.TickInterval
	}

	sim, err := flappy.NewWithConfig(opts.Game, flappy.NewRandomHeights(cfg.Seed))
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create simulation: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return Model{
		sim:    sim,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)), // Last row holds help
		store:  opts.Store,
		logger: logger.With("player", opts.Player, "seed", cfg.Seed),
		keys:   DefaultKeyMap(),
		help:   h,
		board:  newLeaderboard(opts.Store, cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		player: opts.Player,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session started")
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("session ended", "score", m.sim.Score(), "high_score", m.sim.HighScore())
		return m, tea.Quit

	case core.ActionPrimary:
		if m.showScores || m.paused {
			return m, nil
		}
		if from := primaryCommand(m.sim); from == flappy.StateOver {
			m.lastRunID = ""
		}

	case core.ActionPause:
		// Only a running round pauses. The timer keeps firing while paused.
		if m.sim.State() == flappy.StatePlaying || m.paused {
			m.paused = !m.paused
		}

	case core.ActionScores:
		m.showScores = !m.showScores
		if m.showScores {
			m.board.refresh()
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNone:
	}

	return m, nil
}

// handleResize processes window resize events. The simulation is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	m.board.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation once unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.showScores {
		before := m.sim.State()
		if after := m.sim.Tick(); before == flappy.StatePlaying && after == flappy.StateOver {
			m.recordRun()
		}
	}
	return m, tickCmd(m.config.TickInterval)
}

// recordRun stores and logs a finished round.
func (m *Model) recordRun() {
	snap := m.sim.Snapshot()
	logger := m.logger.With("score", snap.Score, "ticks", snap.Tick, "high_score", snap.HighScore)

	if m.store == nil {
		logger.Info("run finished")
		return
	}

	id, err := m.store.SaveRun(m.player, snap.Score, snap.Tick)
	if err != nil {
		logger.Error("cannot record run", "err", err)
		return
	}
	m.lastRunID = id
	logger.Info("run finished", "run", id)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showScores {
		return m.board.View() + "\n" + helpBarStyle.Render(m.help.View(m.keys))
	}

	flappy.Render(m.sim.Snapshot(), m.screen)
	if m.paused {
		drawPaused(m.screen)
	}

	return RenderScreen(m.screen) + "\n" + helpBarStyle.Render(m.help.View(m.keys))
}

// Simulation exposes the session's simulation for inspection.
func (m Model) Simulation() *flappy.Simulation {
	return m.sim
}

// LastRunID returns the ID of the most recently recorded run, or "" once
// the round has been reset.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
