package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/audio"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/registry"
	"github.com/vovakirdan/neon-runner/internal/storage"
)

// helpHeight is the number of rows below the playfield used by the key help.
const helpHeight = 1

// Options configures a terminal session.
type Options struct {
	Logger *log.Logger
	Store  *storage.Store      // Run ledger; nil disables recording
	Sound  *audio.SoundManager // nil runs silent
}

// Model is the Bubble Tea model for running an edition.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	goingBack  bool // True if user pressed back (not quit)
}

// NewModel creates a new Bubble Tea model for the given game and subscribes
// the sound manager and the ledger recorder to its events.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	if obs, ok := game.(registry.Observable); ok {
		if opts.Sound != nil {
			obs.Subscribe(opts.Sound)
		}
		if opts.Store != nil {
			obs.Subscribe(storage.NewRecorder(opts.Store, game.ID(), opts.Logger))
		}
	}

	if keeper, ok := game.(registry.HighScoreKeeper); ok && opts.Store != nil {
		best, err := opts.Store.Best(game.ID())
		if err != nil {
			opts.Logger.Warn("cannot read session best", "game", game.ID(), "err", err)
		}
		keeper.SetHighScore(best)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		opts:       opts,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
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

// handleKey folds a key press into the pending input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Mute) {
		if m.opts.Sound != nil {
			m.opts.Sound.SetMuted(!m.opts.Sound.Muted())
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.silence()
		return m, tea.Quit
	case core.ActionBack:
		m.goingBack = true
		m.silence()
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen buffer. The canvas is scaled to any size,
// so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.inputFrame.Empty() {
		m.opts.Logger.Debug("input", "actions", m.inputFrame.Actions())
	}
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// silence stops the looping cues when leaving the game screen.
func (m Model) silence() {
	if m.opts.Sound == nil {
		return
	}
	m.opts.Sound.StopSlide()
	m.opts.Sound.StopAmbient()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + mutedStyle.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsGoingBack returns true if user wants to go back to menu.
func (m Model) IsGoingBack() bool {
	return m.goingBack
}

// Run starts the Bubble Tea program for the given game.
// Returns true if the user asked to go back to the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (goBack bool, err error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
