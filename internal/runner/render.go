package runner

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/neon-runner/internal/config"
	"github.com/vovakirdan/neon-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	GlowChar     = '░'
	PlatformChar = '▀'
	OrbChar      = '●'
	ObstacleChar = '▓'
	SparkChar    = '*'
	FloorChar    = '▁'
)

// hudHeight is the number of rows reserved above the playfield.
const hudHeight = 1

var numbers = message.NewPrinter(language.English)

// formatScore renders a score with thousands separators.
func formatScore(v int) string {
	return numbers.Sprintf("%d", v)
}

// viewport maps canvas units to screen cells below the HUD.
type viewport struct {
	sx, sy float64 // Cells per canvas unit
}

func newViewport(dst *core.Screen, canvas config.CanvasConfig) viewport {
	return viewport{
		sx: float64(dst.Width()) / canvas.Width,
		sy: float64(dst.Height()-hudHeight) / canvas.Height,
	}
}

// point returns the cell containing canvas point (x, y).
func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), hudHeight + int(math.Floor(y*v.sy))
}

// rect returns the cells covered by a canvas box, never smaller than one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.point(b.X, b.Y)
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := hudHeight + int(math.Ceil(b.Bottom()*v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.session
	cfg := s.Config()
	vp := newViewport(dst, cfg.Canvas)

	for _, d := range s.Decorations() {
		sp := d.Sprite()
		x, y := vp.point(sp.X, sp.Y)
		dst.SetColored(x, y, sp.Glyph, sp.Color)
	}

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), FloorChar, core.ColorRed)

	for _, p := range s.Platforms() {
		dst.DrawRect(vp.rect(p.Box()), PlatformChar, core.ColorTeal)
	}
	for _, o := range s.Orbs() {
		r := vp.rect(core.NewBox(o.X-o.Radius, o.Y-o.Radius, o.Radius*2, o.Radius*2))
		if cfg.Effects.Glow {
			dst.DrawRect(grow(r), GlowChar, core.ColorGold)
		}
		dst.DrawRect(r, OrbChar, core.ColorGold)
	}
	for _, o := range s.Obstacles() {
		dst.DrawRect(vp.rect(o.Box()), ObstacleChar, core.ColorCrimson)
	}
	for _, p := range s.Particles() {
		x, y := vp.point(p.X, p.Y)
		dst.SetColored(x, y, SparkChar, p.Color)
	}

	if s.Phase() != PhaseGameOver {
		g.drawPlayer(dst, vp)
	}

	g.drawHUD(dst)

	switch {
	case s.Phase() == PhaseIdle:
		g.drawCenteredMessage(dst, g.Title(), "Press SPACE to start", "")
	case s.Phase() == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", g.finalLine(), "SPACE or R to restart")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", "")
	}
}

// grow returns r expanded by one cell on every side.
func grow(r core.Rect) core.Rect {
	return core.NewRect(r.X-1, r.Y-1, r.W+2, r.H+2)
}

// playerColor returns the player color, cycling through the glow palette
// when color cycling is on.
func (g *Game) playerColor() core.Color {
	if !g.session.Config().Effects.ColorCycle {
		return core.ColorPink
	}
	return core.GlowCycle[(g.session.Frame()/8)%len(core.GlowCycle)]
}

// drawPlayer renders the player, with a halo in glowing editions.
func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	p := g.session.Player()
	r := vp.rect(p.Box())
	c := g.playerColor()
	if g.session.Config().Effects.Glow {
		dst.DrawRect(grow(r), GlowChar, c)
	}
	dst.DrawRect(r, PlayerChar, c)
}

// drawHUD writes score, multiplier and best score on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	left := fmt.Sprintf(" Score: %s ", formatScore(s.Score()))
	if s.Config().Scoring.Mode == config.ScoringMultiplier {
		left += fmt.Sprintf("x%d ", s.Multiplier())
	}
	dst.DrawTextColored(1, 0, left, core.ColorBright)

	right := fmt.Sprintf(" Best: %s ", formatScore(s.HighScore()))
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorGold)
}

// finalLine describes the run that just ended.
func (g *Game) finalLine() string {
	s := g.session
	line := "Score: " + formatScore(s.LastFinalScore())
	if s.Config().Scoring.Mode == config.ScoringMultiplier {
		line += fmt.Sprintf("  (x%d)", s.Multiplier())
	}
	return line + "  Best: " + formatScore(s.HighScore())
}

// drawCenteredMessage draws a message box in the center of the screen.
// An empty footer is omitted.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle, footer string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle)), len([]rune(footer))) + 4
	boxH := 5
	if footer != "" {
		boxH = 6
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorViolet)

	dst.DrawTextCentered(boxY+1, title, core.ColorIce)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
	if footer != "" {
		dst.DrawTextCentered(boxY+4, footer, core.ColorGray)
	}
}
