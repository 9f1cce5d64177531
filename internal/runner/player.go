package runner

import (
	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Player is the falling square controlled by the action key.
type Player struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	DY            float64 // Vertical velocity (positive = down)
	Gravity       float64 // Added to DY every tick
	Lift          float64 // DY after a jump (negative)
}

// NewPlayer creates a player at its configured start position, at rest.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		X:       cfg.X,
		Y:       cfg.Y,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Gravity: cfg.Gravity,
		Lift:    cfg.Lift,
	}
}

// Box returns the collision box of the player.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Center returns the center point of the player.
func (p *Player) Center() (float64, float64) {
	return p.Box().Center()
}

// Advance integrates one tick of gravity. Hitting the ceiling stops the
// player; the returned flag reports that the bottom edge passed floor.
func (p *Player) Advance(floor float64) (breach bool) {
	p.DY += p.Gravity
	p.Y += p.DY

	if p.Y < 0 {
		p.Y = 0
		p.DY = 0
	}
	return p.Y+p.Height > floor
}

// Jump replaces the vertical velocity with the lift impulse.
func (p *Player) Jump() {
	p.DY = p.Lift
}

// LandOn rests the player on a surface whose top edge is at top.
func (p *Player) LandOn(top float64) {
	p.Y = top - p.Height
	p.DY = 0
}
