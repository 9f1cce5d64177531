package runner

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Particle is a short-lived spark thrown off when the player lands.
type Particle struct {
	X, Y   float64 // Center
	VX, VY float64 // Velocity per tick
	Size   float64 // Radius, shrinks every tick
	Color  core.Color
}

// ParticleSystem owns the live landing sparks.
type ParticleSystem struct {
	items []Particle
	cfg   config.ParticleConfig
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{
		items: make([]Particle, 0, 64),
		cfg:   cfg,
	}
}

// Burst spawns the configured number of sparks at (x, y).
func (ps *ParticleSystem) Burst(x, y float64, rng *rand.Rand) {
	for i := 0; i < ps.cfg.Burst; i++ {
		ps.items = append(ps.items, Particle{
			X:     x,
			Y:     y,
			VX:    (rng.Float64()*2 - 1) * ps.cfg.Spread,
			VY:    (rng.Float64()*2 - 1) * ps.cfg.Spread,
			Size:  ps.cfg.MinSize + rng.Float64()*(ps.cfg.MaxSize-ps.cfg.MinSize),
			Color: core.ColorSpark,
		})
	}
}

// Update moves and shrinks every spark, dropping those below the cull size.
func (ps *ParticleSystem) Update() {
	live := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.VX
		p.Y += p.VY
		p.Size *= ps.cfg.Decay
		if p.Size > ps.cfg.CullSize {
			live = append(live, p)
		}
	}
	ps.items = live
}

// Items returns the live sparks.
func (ps *ParticleSystem) Items() []Particle {
	return ps.items
}

// Len returns the number of live sparks.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Clear removes every spark.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}
