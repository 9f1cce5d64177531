package runner

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Phase is the run phase of a session.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first start input
	PhaseRunning               // Ticks advance the world
	PhaseGameOver              // Run ended, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns all mutable gameplay state: the player, the three entity
// pools, the cosmetic layers and the run counters. It is driven one tick at a
// time by Tick and by the input methods Start, Jump and Restart. A Session is
// not safe for concurrent use; the frame driver owns it.
type Session struct {
	cfg       config.RunnerConfig
	ramp      config.SpeedRamp
	scheduler Scheduler
	rng       *rand.Rand

	player    Player
	platforms *Pool[*Platform]
	orbs      *Pool[*Orb]
	obstacles *Pool[*Obstacle]
	particles *ParticleSystem
	backdrop  *Backdrop

	phase      Phase
	score      int // Base score of the current run
	multiplier int
	finalScore int // Score published at the end of the last run
	highScore  int
	speed      float64
	frame      int
	sliding    bool
	cause      core.EndCause

	events []core.Event // Emitted since the last DrainEvents
}

// NewSession creates an idle session. seed drives every random placement.
func NewSession(cfg config.RunnerConfig, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:        cfg,
		ramp:       config.NewSpeedRamp(cfg.Speed),
		scheduler:  NewScheduler(cfg),
		rng:        rng,
		player:     NewPlayer(cfg.Player),
		platforms:  NewPool[*Platform](8),
		orbs:       NewPool[*Orb](4),
		obstacles:  NewPool[*Obstacle](4),
		particles:  NewParticleSystem(cfg.Particles),
		backdrop:   NewBackdrop(cfg.Backdrop, cfg.Canvas, rand.New(rand.NewSource(seed+1))),
		phase:      PhaseIdle,
		multiplier: 1,
	}
	s.speed = s.ramp.Initial()
	return s
}

// Start begins the first run. It only acts in PhaseIdle.
func (s *Session) Start() bool {
	if s.phase != PhaseIdle {
		return false
	}
	s.phase = PhaseRunning
	s.emit(core.EventRunStarted)
	return true
}

// Jump applies the lift impulse. It acts whenever a run is active, airborne
// or not, unless air jumps are disabled in the config, in which case the
// player must be riding a platform.
func (s *Session) Jump() bool {
	if s.phase != PhaseRunning {
		return false
	}
	if !s.cfg.Player.AirJump && !s.sliding {
		return false
	}
	s.player.Jump()
	s.emit(core.EventJump)
	return true
}

// Restart reinitializes the run state and begins a new run. It only acts in
// PhaseGameOver. The high score is kept.
func (s *Session) Restart() bool {
	if s.phase != PhaseGameOver {
		return false
	}
	s.player = NewPlayer(s.cfg.Player)
	s.score = 0
	s.multiplier = 1
	s.speed = s.ramp.Initial()
	s.frame = 0
	s.sliding = false
	s.cause = core.CauseNone
	s.clearWorld()
	s.backdrop.Regenerate()

	s.phase = PhaseRunning
	s.emit(core.EventRunStarted)
	return true
}

// End terminates the running run. The pools are emptied, the frame counter
// and speed return to their initial values, the final score is published and
// the high score is raised iff the final score beats it.
func (s *Session) End(cause core.EndCause) {
	if s.phase != PhaseRunning {
		return
	}
	s.phase = PhaseGameOver
	s.cause = cause
	frames := s.frame
	s.clearWorld()
	s.frame = 0
	s.speed = s.ramp.Initial()

	if s.sliding {
		s.sliding = false
		s.emit(core.EventSlideStop)
	}

	s.finalScore = s.FinalScore()
	newBest := s.finalScore > s.highScore
	if newBest {
		s.highScore = s.finalScore
	}

	s.events = append(s.events, core.Event{
		Kind:       core.EventGameOver,
		Frame:      frames,
		Score:      s.finalScore,
		Multiplier: s.multiplier,
		HighScore:  s.highScore,
		NewBest:    newBest,
		Cause:      cause,
	})
}

// Tick advances a running session by one frame: cosmetics, player physics,
// pool scrolling and culling, scheduled spawns, collision resolution, then
// the frame counter and speed ramp. A terminal condition ends the run and the
// tick immediately. Outside PhaseRunning, Tick does nothing.
func (s *Session) Tick() {
	if s.phase != PhaseRunning {
		return
	}

	s.particles.Update()
	s.backdrop.Advance(s.speed)

	if s.player.Advance(s.cfg.Canvas.Height) {
		s.End(core.CauseFloor)
		return
	}

	s.advancePools()
	for _, k := range s.scheduler.Due(s.frame) {
		s.spawn(k)
	}

	if cause := s.resolveCollisions(); cause != core.CauseNone {
		s.End(cause)
		return
	}

	s.frame++
	s.speed = s.ramp.Next(s.speed)
}

// FinalScore returns the score the current run would publish if it ended now.
func (s *Session) FinalScore() int {
	if s.cfg.Scoring.Mode == config.ScoringMultiplier {
		return s.score * s.multiplier
	}
	return s.score
}

// DrainEvents returns and forgets the events emitted since the last call.
func (s *Session) DrainEvents() []core.Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// clearWorld drops every scrolling and cosmetic entity.
func (s *Session) clearWorld() {
	s.platforms.Clear()
	s.orbs.Clear()
	s.obstacles.Clear()
	s.particles.Clear()
}

// emit records an event stamped with the current counters.
func (s *Session) emit(kind core.EventKind) {
	s.events = append(s.events, core.Event{
		Kind:       kind,
		Frame:      s.frame,
		Score:      s.score,
		Multiplier: s.multiplier,
		HighScore:  s.highScore,
	})
}

// Phase returns the current run phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the base score of the current or last run.
func (s *Session) Score() int { return s.score }

// Multiplier returns the current multiplier.
func (s *Session) Multiplier() int { return s.multiplier }

// LastFinalScore returns the score published when the last run ended.
func (s *Session) LastFinalScore() int { return s.finalScore }

// HighScore returns the best final score of this session.
func (s *Session) HighScore() int { return s.highScore }

// SetHighScore carries a high score over from a previous session.
func (s *Session) SetHighScore(v int) { s.highScore = v }

// Speed returns the current scroll speed.
func (s *Session) Speed() float64 { return s.speed }

// Frame returns the frame counter of the current run.
func (s *Session) Frame() int { return s.frame }

// Sliding reports whether the player rested on a platform last tick.
func (s *Session) Sliding() bool { return s.sliding }

// Cause returns why the last run ended.
func (s *Session) Cause() core.EndCause { return s.cause }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Platforms returns the live platforms, oldest first.
func (s *Session) Platforms() []*Platform { return s.platforms.Items() }

// Orbs returns the live orbs, oldest first.
func (s *Session) Orbs() []*Orb { return s.orbs.Items() }

// Obstacles returns the live obstacles, oldest first.
func (s *Session) Obstacles() []*Obstacle { return s.obstacles.Items() }

// Particles returns the live landing sparks.
func (s *Session) Particles() []Particle { return s.particles.Items() }

// Decorations returns the backdrop layer.
func (s *Session) Decorations() []Decoration { return s.backdrop.Items() }

// Config returns the configuration the session runs with.
func (s *Session) Config() config.RunnerConfig { return s.cfg }
