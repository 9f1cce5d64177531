package runner

import (
	"math/rand"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Sprite is the render data of a decoration.
type Sprite struct {
	X, Y  float64
	Glyph rune
	Color core.Color
}

// Decoration is a purely cosmetic background entity. Decorations never take
// part in collision or scoring.
type Decoration interface {
	// Advance moves the decoration for one tick given the scroll speed.
	Advance(speed float64)
	// Sprite returns what to draw and where.
	Sprite() Sprite
}

// Star is a twinkling point that drifts at a fraction of the scroll speed.
type Star struct {
	x, y  float64
	depth float64 // Parallax factor in (0, 1)
	phase int
	width float64
	minY  float64
	maxY  float64
	rng   *rand.Rand
}

// Advance drifts the star and wraps it to the right edge.
func (s *Star) Advance(speed float64) {
	s.x -= speed * s.depth
	s.phase++
	if s.x < 0 {
		s.x += s.width
		s.y = s.minY + s.rng.Float64()*(s.maxY-s.minY)
	}
}

// Sprite returns the star glyph, brighter for nearer stars.
func (s *Star) Sprite() Sprite {
	glyph, color := '.', core.ColorDim
	switch {
	case s.depth > 0.4:
		glyph, color = '+', core.ColorBright
	case s.depth > 0.2:
		glyph, color = '·', core.ColorWhite
	}
	// Twinkle
	if (s.phase/20)%7 == 0 && s.depth > 0.2 {
		color = core.ColorGray
	}
	return Sprite{X: s.x, Y: s.y, Glyph: glyph, Color: color}
}

// Planet is a slow, large body near the horizon.
type Planet struct {
	x, y  float64
	width float64
	color core.Color
}

// Advance drifts the planet very slowly.
func (p *Planet) Advance(speed float64) {
	p.x -= speed * 0.05
	if p.x < -20 {
		p.x += p.width + 40
	}
}

// Sprite returns the planet glyph.
func (p *Planet) Sprite() Sprite {
	return Sprite{X: p.x, Y: p.y, Glyph: '●', Color: p.color}
}

// Galaxy is a distant spiral that barely moves.
type Galaxy struct {
	x, y  float64
	width float64
	spin  int
}

var galaxyFrames = []rune{'✦', '✧', '✶', '✧'}

// Advance drifts the galaxy and turns it.
func (g *Galaxy) Advance(speed float64) {
	g.x -= speed * 0.02
	if g.x < -20 {
		g.x += g.width + 40
	}
	g.spin++
}

// Sprite returns the current galaxy frame.
func (g *Galaxy) Sprite() Sprite {
	return Sprite{X: g.x, Y: g.y, Glyph: galaxyFrames[(g.spin/30)%len(galaxyFrames)], Color: core.ColorPurple}
}

// Backdrop is the parallax layer of stars, planets and galaxies.
type Backdrop struct {
	items  []Decoration
	cfg    config.BackdropConfig
	canvas config.CanvasConfig
	rng    *rand.Rand
}

// NewBackdrop creates and populates a backdrop.
func NewBackdrop(cfg config.BackdropConfig, canvas config.CanvasConfig, rng *rand.Rand) *Backdrop {
	b := &Backdrop{cfg: cfg, canvas: canvas, rng: rng}
	b.Regenerate()
	return b
}

// Regenerate replaces every decoration with a fresh random layout.
func (b *Backdrop) Regenerate() {
	b.items = b.items[:0]
	if !b.cfg.Enabled {
		return
	}

	w, h := b.canvas.Width, b.canvas.Height
	planetColors := []core.Color{core.ColorOrange, core.ColorBlue, core.ColorMagenta}

	for i := 0; i < b.cfg.Galaxies; i++ {
		b.items = append(b.items, &Galaxy{
			x:     b.rng.Float64() * w,
			y:     b.rng.Float64() * h * 0.5,
			width: w,
			spin:  b.rng.Intn(120),
		})
	}
	for i := 0; i < b.cfg.Planets; i++ {
		b.items = append(b.items, &Planet{
			x:     b.rng.Float64() * w,
			y:     h*0.2 + b.rng.Float64()*h*0.6,
			width: w,
			color: planetColors[i%len(planetColors)],
		})
	}
	for i := 0; i < b.cfg.Stars; i++ {
		b.items = append(b.items, &Star{
			x:     b.rng.Float64() * w,
			y:     b.rng.Float64() * h,
			depth: 0.1 + b.rng.Float64()*0.4,
			phase: b.rng.Intn(140),
			width: w,
			minY:  0,
			maxY:  h,
			rng:   b.rng,
		})
	}
}

// Advance moves every decoration one tick.
func (b *Backdrop) Advance(speed float64) {
	for _, d := range b.items {
		d.Advance(speed)
	}
}

// Items returns the decorations back to front.
func (b *Backdrop) Items() []Decoration {
	return b.items
}
