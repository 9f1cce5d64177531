// Package runner implements the Neon Runner gameplay core: a falling square
// that rides scrolling platforms, collects orbs and dodges obstacles while the
// scroll speed ramps up. The three editions share one Session and differ only
// in the configuration they run with.
package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
	"github.com/vovakirdan/neon-runner/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// airJumpOff disables air jumps regardless of the loaded config.
var airJumpOff bool

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetAirJump enables or disables jumping while airborne for games created
// afterwards. Enabled leaves the config file in charge.
func SetAirJump(enabled bool) {
	airJumpOff = !enabled
}

// SetLogger sets the logger used by every runner game.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is the frame driver for one edition. It maps input to the session,
// runs one tick per Step and fans the resulting events out to listeners.
type Game struct {
	edition   config.Edition
	session   *Session
	runtime   core.RuntimeConfig
	paused    bool
	listeners []core.Listener
	bestSeen  int // High score handed in from outside, such as the run ledger
}

// New creates a game for the given edition. Reset must be called before use.
func New(edition config.Edition) *Game {
	return &Game{edition: edition}
}

// ID returns the edition name.
func (g *Game) ID() string {
	return string(g.edition)
}

// Title returns the display name for this edition.
func (g *Game) Title() string {
	switch g.edition {
	case config.EditionGlow:
		return "Neon Runner: Glow"
	case config.EditionCosmos:
		return "Neon Runner: Cosmos"
	default:
		return "Neon Runner"
	}
}

// SetHighScore raises the high score to at least v. It can be called before
// Reset, and every later Reset keeps it.
func (g *Game) SetHighScore(v int) {
	g.bestSeen = max(g.bestSeen, v)
	if g.session != nil && g.session.HighScore() < g.bestSeen {
		g.session.SetHighScore(g.bestSeen)
	}
}

// Reset builds a fresh idle session. The high score of a previous session
// survives, so a terminal resize does not forget the best run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath, g.edition)
	if err != nil {
		logger.Warn("falling back to default config", "path", configPath, "err", err)
		cfg = config.DefaultRunnerConfig()
		config.ApplyEdition(&cfg, g.edition)
	}
	if airJumpOff {
		cfg.Player.AirJump = false
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	high := g.bestSeen
	if g.session != nil {
		high = max(high, g.session.HighScore())
	}
	g.session = NewSession(cfg, seed)
	g.session.SetHighScore(high)
	g.paused = false
}

// Subscribe registers a listener for gameplay events. Listeners are called
// synchronously at the end of every Step, in subscription order.
func (g *Game) Subscribe(l core.Listener) {
	g.listeners = append(g.listeners, l)
}

// Session exposes the underlying session for inspection.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies the input for this frame and advances the session one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := g.session
	action := in.Has(core.ActionJump)

	switch s.Phase() {
	case PhaseIdle:
		if action {
			s.Start()
		}
	case PhaseRunning:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if action && !g.paused {
			s.Jump()
		}
	case PhaseGameOver:
		if action || in.Has(core.ActionRestart) {
			s.Restart()
		}
	}

	if !g.paused {
		s.Tick()
	}

	events := s.DrainEvents()
	g.dispatch(events)
	return core.StepResult{State: g.State(), Events: events}
}

// dispatch logs run boundaries and notifies every listener of each event.
func (g *Game) dispatch(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventRunStarted:
			logger.Info("run started", "edition", g.edition)
		case core.EventGameOver:
			logger.Info("run ended",
				"edition", g.edition,
				"score", ev.Score,
				"multiplier", ev.Multiplier,
				"cause", ev.Cause,
				"new_best", ev.NewBest)
		}
		for _, l := range g.listeners {
			g.notify(l, ev)
		}
	}
}

// notify calls one listener, containing any panic it raises.
func (g *Game) notify(l core.Listener, ev core.Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("listener panicked", "event", ev.Kind, "panic", r)
		}
	}()
	l.Notify(ev)
}

// State returns the current game state. Score is the live base score while
// running and the published final score after the run ends.
func (g *Game) State() core.GameState {
	s := g.session
	score := s.Score()
	if s.Phase() == PhaseGameOver {
		score = s.LastFinalScore()
	}
	return core.GameState{
		Score:     score,
		HighScore: s.HighScore(),
		Started:   s.Phase() != PhaseIdle,
		GameOver:  s.Phase() == PhaseGameOver,
		Paused:    g.paused,
	}
}

// Register every edition with the registry
func init() {
	for _, e := range config.Editions() {
		registry.Register(string(e), func() registry.Game {
			return New(e)
		})
	}
}
