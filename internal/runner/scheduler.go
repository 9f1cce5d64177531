package runner

import "github.com/vovakirdan/neon-runner/internal/config"

// Kind identifies one of the scrolling entity streams.
type Kind int

const (
	KindPlatform Kind = iota
	KindOrb
	KindObstacle
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindOrb:
		return "orb"
	case KindObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Scheduler gates spawning on the frame counter. Each kind spawns whenever
// the frame is a multiple of its cadence, independently of what is alive.
type Scheduler struct {
	cadence [3]int // Indexed by Kind
}

// NewScheduler creates a scheduler from the pool cadences in cfg.
func NewScheduler(cfg config.RunnerConfig) Scheduler {
	return Scheduler{
		cadence: [3]int{
			KindPlatform: cfg.Platforms.Every,
			KindOrb:      cfg.Orbs.Every,
			KindObstacle: cfg.Obstacles.Every,
		},
	}
}

// Due returns the kinds to spawn on this frame, in platform, orb, obstacle
// order. Frame 0 spawns every kind.
func (s Scheduler) Due(frame int) []Kind {
	var due []Kind
	for k, every := range s.cadence {
		if every > 0 && frame%every == 0 {
			due = append(due, Kind(k))
		}
	}
	return due
}

// spawn appends a new entity of kind k at the right edge of the canvas.
func (s *Session) spawn(k Kind) {
	x := s.cfg.Canvas.Width
	y := s.spawnY()

	switch k {
	case KindPlatform:
		dir := 1.0
		if s.rng.Intn(2) == 0 {
			dir = -1
		}
		s.platforms.Push(&Platform{
			X:      x,
			Y:      y,
			Width:  s.cfg.Platforms.Width,
			Height: s.cfg.Platforms.Height,
			Dir:    dir,
		})
	case KindOrb:
		s.orbs.Push(&Orb{X: x, Y: y, Radius: s.cfg.Orbs.Radius})
	case KindObstacle:
		s.obstacles.Push(&Obstacle{
			X:      x,
			Y:      y,
			Width:  s.cfg.Obstacles.Width,
			Height: s.cfg.Obstacles.Height,
		})
	}
}

// spawnY returns a uniform random height inside the spawn band.
func (s *Session) spawnY() float64 {
	minY, maxY := s.cfg.Spawn.MinY, s.cfg.SpawnMaxY()
	return minY + s.rng.Float64()*(maxY-minY)
}

// advancePools scrolls, drifts and culls every pool for one tick.
func (s *Session) advancePools() {
	s.platforms.Advance(s.speed)
	if s.cfg.Platforms.Oscillate {
		for _, p := range s.platforms.Items() {
			p.Oscillate(s.cfg.Platforms.Oscillation, s.cfg.Spawn.MinY, s.cfg.SpawnMaxY())
		}
	}
	s.platforms.Cull()

	s.orbs.Advance(s.speed)
	s.orbs.Cull()

	s.obstacles.Advance(s.speed + s.cfg.Obstacles.SpeedDelta)
	s.obstacles.Cull()
}
