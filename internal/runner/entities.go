package runner

import "github.com/vovakirdan/neon-runner/internal/core"

// Platform is a scrolling ledge the player can land on.
type Platform struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Dir           float64 // Vertical drift direction (+1 down, -1 up)
}

// Box returns the collision box of the platform.
func (p *Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Shift moves the platform left by dx.
func (p *Platform) Shift(dx float64) {
	p.X -= dx
}

// Trailing returns the x-coordinate of the right edge.
func (p *Platform) Trailing() float64 {
	return p.X + p.Width
}

// Oscillate drifts the platform vertically by step, reversing direction at
// either bound of [minY, maxY].
func (p *Platform) Oscillate(step, minY, maxY float64) {
	p.Y += p.Dir * step
	if p.Y <= minY {
		p.Y = minY
		p.Dir = 1
	} else if p.Y >= maxY {
		p.Y = maxY
		p.Dir = -1
	}
}

// Orb is a collectible. X and Y are its center.
type Orb struct {
	X, Y   float64
	Radius float64
}

// Shift moves the orb left by dx.
func (o *Orb) Shift(dx float64) {
	o.X -= dx
}

// Trailing returns the x-coordinate of the right edge.
func (o *Orb) Trailing() float64 {
	return o.X + o.Radius
}

// Obstacle ends the run on contact.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
}

// Box returns the collision box of the obstacle.
func (o *Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// Shift moves the obstacle left by dx.
func (o *Obstacle) Shift(dx float64) {
	o.X -= dx
}

// Trailing returns the x-coordinate of the right edge.
func (o *Obstacle) Trailing() float64 {
	return o.X + o.Width
}
