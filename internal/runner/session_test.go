package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// newTestSession returns a started session for the given edition.
func newTestSession(t *testing.T, edition config.Edition, mutate func(*config.RunnerConfig)) *Session {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	config.ApplyEdition(&cfg, edition)
	if mutate != nil {
		mutate(&cfg)
	}
	s := NewSession(cfg, 42)
	if !s.Start() {
		t.Fatal("Start() = false on a new session")
	}
	return s
}

func countKind(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestSessionPhases(t *testing.T) {
	s := NewSession(config.DefaultRunnerConfig(), 1)

	if s.Phase() != PhaseIdle {
		t.Fatalf("Phase() = %v, expected idle", s.Phase())
	}
	if s.Jump() {
		t.Error("Jump() = true while idle, expected false")
	}
	if s.Restart() {
		t.Error("Restart() = true while idle, expected false")
	}

	s.Tick()
	if s.Frame() != 0 {
		t.Errorf("Frame() after idle Tick = %d, expected 0", s.Frame())
	}

	s.Start()
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() after Start = %v, expected running", s.Phase())
	}
	if s.Start() {
		t.Error("Start() = true while running, expected false")
	}

	s.End(core.CauseFloor)
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase() after End = %v, expected game_over", s.Phase())
	}
	if s.Jump() {
		t.Error("Jump() = true after game over, expected false")
	}
}

func TestSessionHundredTicks(t *testing.T) {
	s := newTestSession(t, config.EditionClassic, func(c *config.RunnerConfig) {
		c.Player.Gravity = 0
		c.Player.X = 0
	})

	for i := 0; i < 100; i++ {
		s.Tick()
	}

	if s.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected running", s.Phase())
	}
	if s.Frame() != 100 {
		t.Errorf("Frame() = %d, expected 100", s.Frame())
	}
	if math.Abs(s.Speed()-2.05) > 1e-9 {
		t.Errorf("Speed() = %v, expected 2.05", s.Speed())
	}
	if len(s.Platforms()) != 1 {
		t.Errorf("platforms = %d, expected 1", len(s.Platforms()))
	}
	if len(s.Orbs()) != 1 || len(s.Obstacles()) != 1 {
		t.Errorf("orbs, obstacles = %d, %d, expected 1, 1", len(s.Orbs()), len(s.Obstacles()))
	}

	s.Tick()
	if len(s.Platforms()) != 2 {
		t.Errorf("platforms after tick 101 = %d, expected 2", len(s.Platforms()))
	}
	if len(s.Orbs()) != 1 || len(s.Obstacles()) != 1 {
		t.Errorf("orbs, obstacles after tick 101 = %d, %d, expected 1, 1", len(s.Orbs()), len(s.Obstacles()))
	}
}

func TestSessionSpawnBand(t *testing.T) {
	s := newTestSession(t, config.EditionClassic, func(c *config.RunnerConfig) {
		c.Player.Gravity = 0
		c.Player.X = 0
		c.Platforms.Every = 1
	})

	for i := 0; i < 50; i++ {
		s.Tick()
	}
	for _, p := range s.Platforms() {
		if p.Y < 50 || p.Y > 500 {
			t.Errorf("platform Y = %v, expected within [50, 500]", p.Y)
		}
	}
}

func TestSessionMultiplierOrbs(t *testing.T) {
	s := newTestSession(t, config.EditionGlow, nil)
	s.platforms.Push(&Platform{X: 150, Y: 320, Width: 80, Height: 10})
	for i := 0; i < 3; i++ {
		s.orbs.Push(&Orb{X: 210, Y: 310, Radius: 10})
	}
	s.DrainEvents()

	s.Tick()
	events := s.DrainEvents()

	if s.Multiplier() != 4 {
		t.Errorf("Multiplier() = %d, expected 4", s.Multiplier())
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
	if n := countKind(events, core.EventPickup); n != 3 {
		t.Errorf("pickup events = %d, expected 3", n)
	}
	if n := countKind(events, core.EventSlideStart); n != 1 {
		t.Errorf("slide start events = %d, expected 1", n)
	}
	if s.Player().Y != 300 || !s.Sliding() {
		t.Errorf("player Y = %v sliding = %v, expected 300 and true", s.Player().Y, s.Sliding())
	}

	s.Tick()
	if s.Score() != 2 || s.Multiplier() != 4 {
		t.Errorf("(Score, Multiplier) = (%d, %d), expected (2, 4)", s.Score(), s.Multiplier())
	}

	s.End(core.CauseCollision)
	if s.LastFinalScore() != 8 {
		t.Errorf("LastFinalScore() = %d, expected 8", s.LastFinalScore())
	}
}

func TestSessionOrbCollectedOnce(t *testing.T) {
	s := newTestSession(t, config.EditionClassic, nil)
	s.platforms.Push(&Platform{X: 150, Y: 320, Width: 80, Height: 10})
	s.orbs.Push(&Orb{X: 210, Y: 310, Radius: 10})

	s.Tick()
	s.Tick()

	events := s.DrainEvents()
	if n := countKind(events, core.EventPickup); n != 1 {
		t.Errorf("pickup events = %d, expected 1", n)
	}
	if s.Score() != 52 {
		t.Errorf("Score() = %d, expected 52", s.Score())
	}
}

func TestSessionObstacleEndsTick(t *testing.T) {
	s := newTestSession(t, config.EditionClassic, nil)
	s.platforms.Push(&Platform{X: 150, Y: 320, Width: 80, Height: 10})
	s.orbs.Push(&Orb{X: 210, Y: 310, Radius: 10})
	s.obstacles.Push(&Obstacle{X: 195, Y: 295, Width: 30, Height: 30})
	s.DrainEvents()

	s.Tick()

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game_over", s.Phase())
	}
	if s.Cause() != core.CauseCollision {
		t.Errorf("Cause() = %v, expected collision", s.Cause())
	}
	if s.LastFinalScore() != 51 {
		t.Errorf("LastFinalScore() = %d, expected 51", s.LastFinalScore())
	}
	if s.Frame() != 0 || s.Speed() != 2 {
		t.Errorf("(Frame, Speed) = (%d, %v), expected (0, 2)", s.Frame(), s.Speed())
	}
	if len(s.Platforms())+len(s.Orbs())+len(s.Obstacles())+len(s.Particles()) != 0 {
		t.Error("pools not empty after game over")
	}
	if s.Sliding() {
		t.Error("Sliding() = true after game over")
	}

	events := s.DrainEvents()
	if n := countKind(events, core.EventSlideStop); n != 1 {
		t.Errorf("slide stop events = %d, expected 1", n)
	}
	last := events[len(events)-1]
	if last.Kind != core.EventGameOver {
		t.Fatalf("last event = %v, expected GameOver", last.Kind)
	}
	if last.Score != 51 || last.Cause != core.CauseCollision || !last.NewBest || last.HighScore != 51 {
		t.Errorf("game over event = %+v, expected score 51, collision, new best 51", last)
	}
}

func TestSessionFloorBreach(t *testing.T) {
	s := newTestSession(t, config.EditionClassic, nil)
	s.platforms.Push(&Platform{X: 300, Y: 200, Width: 80, Height: 10})
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	s.player.Y = 585

	s.Tick()

	if s.Phase() != PhaseGameOver || s.Cause() != core.CauseFloor {
		t.Fatalf("(Phase, Cause) = (%v, %v), expected (game_over, floor)", s.Phase(), s.Cause())
	}
	if len(s.Platforms()) != 0 || len(s.Orbs()) != 0 || len(s.Obstacles()) != 0 {
		t.Error("pools not empty after floor breach")
	}
	if s.Frame() != 0 || s.Speed() != 2 {
		t.Errorf("(Frame, Speed) = (%d, %v), expected (0, 2)", s.Frame(), s.Speed())
	}
}

func TestSessionHighScoreStrict(t *testing.T) {
	tests := []struct {
		name     string
		prior    int
		newBest  bool
		expected int
	}{
		{"beaten", 50, true, 51},
		{"tied", 51, false, 51},
		{"not reached", 80, false, 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, config.EditionClassic, nil)
			s.SetHighScore(tc.prior)
			s.score = 51
			s.End(core.CauseFloor)

			events := s.DrainEvents()
			last := events[len(events)-1]
			if last.NewBest != tc.newBest {
				t.Errorf("NewBest = %v, expected %v", last.NewBest, tc.newBest)
			}
			if s.HighScore() != tc.expected {
				t.Errorf("HighScore() = %d, expected %d", s.HighScore(), tc.expected)
			}
		})
	}
}

func TestSessionRestart(t *testing.T) {
	s := newTestSession(t, config.EditionGlow, nil)
	s.score = 10
	s.multiplier = 3
	s.Jump()
	s.End(core.CauseFloor)
	s.DrainEvents()

	if !s.Restart() {
		t.Fatal("Restart() = false after game over")
	}
	if s.Phase() != PhaseRunning {
		t.Errorf("Phase() = %v, expected running", s.Phase())
	}
	p := s.Player()
	if p.Y != 300 || p.DY != 0 {
		t.Errorf("player (Y, DY) = (%v, %v), expected (300, 0)", p.Y, p.DY)
	}
	if s.Score() != 0 || s.Multiplier() != 1 {
		t.Errorf("(Score, Multiplier) = (%d, %d), expected (0, 1)", s.Score(), s.Multiplier())
	}
	if s.HighScore() != 30 {
		t.Errorf("HighScore() = %d, expected 30", s.HighScore())
	}
	if events := s.DrainEvents(); countKind(events, core.EventRunStarted) != 1 {
		t.Errorf("events = %v, expected one RunStarted", events)
	}
}

func TestSessionJump(t *testing.T) {
	s := newTestSession(t, config.EditionClassic, nil)
	s.Tick()

	if !s.Jump() {
		t.Fatal("Jump() = false while airborne with air jumps on")
	}
	if s.Player().DY != -10 {
		t.Errorf("DY after Jump = %v, expected -10", s.Player().DY)
	}

	grounded := newTestSession(t, config.EditionClassic, func(c *config.RunnerConfig) {
		c.Player.AirJump = false
	})
	if grounded.Jump() {
		t.Error("Jump() = true while airborne with air jumps off")
	}

	grounded.platforms.Push(&Platform{X: 150, Y: 320, Width: 80, Height: 10})
	grounded.Tick()
	if !grounded.Jump() {
		t.Error("Jump() = false while sliding with air jumps off")
	}
}

func TestSessionPoolsStayOrdered(t *testing.T) {
	s := newTestSession(t, config.EditionCosmos, nil)

	restarts := 0
	for tick := range 1500 {
		switch s.Phase() {
		case PhaseGameOver:
			s.Restart()
			restarts++
		case PhaseRunning:
			if tick%25 == 0 {
				s.Jump()
			}
		}
		s.Tick()
		s.DrainEvents()

		for i := 1; i < len(s.Platforms()); i++ {
			if a, b := s.Platforms()[i-1], s.Platforms()[i]; a.X > b.X {
				t.Fatalf("tick %d: platforms out of order at %d: %v > %v", tick, i, a.X, b.X)
			}
		}
		for i := 1; i < len(s.Orbs()); i++ {
			if a, b := s.Orbs()[i-1], s.Orbs()[i]; a.X > b.X {
				t.Fatalf("tick %d: orbs out of order at %d: %v > %v", tick, i, a.X, b.X)
			}
		}
		for i := 1; i < len(s.Obstacles()); i++ {
			if a, b := s.Obstacles()[i-1], s.Obstacles()[i]; a.X > b.X {
				t.Fatalf("tick %d: obstacles out of order at %d: %v > %v", tick, i, a.X, b.X)
			}
		}
	}
	t.Logf("%d restarts over 1500 ticks", restarts)
}

func TestSessionCosmosOscillation(t *testing.T) {
	s := newTestSession(t, config.EditionCosmos, func(c *config.RunnerConfig) {
		c.Player.Gravity = 0
		c.Player.X = 0
	})
	if len(s.Decorations()) == 0 {
		t.Fatal("cosmos session has no decorations")
	}

	s.Tick()
	startY := s.Platforms()[0].Y
	s.Tick()
	if d := math.Abs(s.Platforms()[0].Y - startY); d == 0 || d > 0.5+1e-9 {
		t.Errorf("platform drift = %v, expected in (0, 0.5]", d)
	}
}
