package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-runner/internal/core"
)

// Neon palette shared by the game screen and the menus.
const (
	neonPink    = lipgloss.Color("#f72585")
	neonTeal    = lipgloss.Color("#00f5d4")
	neonGold    = lipgloss.Color("#ffcc00")
	neonCrimson = lipgloss.Color("#ff0044")
	neonPurple  = lipgloss.Color("#9d4edd")
	neonDim     = lipgloss.Color("238")
	neonMuted   = lipgloss.Color("241")
)

// palette maps each core.Color index to a terminal color.
// ColorDefault has no entry and renders unstyled.
var palette = [core.NumColors]lipgloss.TerminalColor{
	core.ColorPink:    neonPink,
	core.ColorTeal:    neonTeal,
	core.ColorGold:    neonGold,
	core.ColorCrimson: neonCrimson,
	core.ColorRed:     lipgloss.Color("1"),
	core.ColorSpark:   lipgloss.Color("11"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorMagenta: lipgloss.Color("5"),
	core.ColorViolet:  lipgloss.Color("13"),
	core.ColorPurple:  neonPurple,
	core.ColorBlue:    lipgloss.Color("4"),
	core.ColorAzure:   lipgloss.Color("12"),
	core.ColorCyan:    lipgloss.Color("6"),
	core.ColorIce:     lipgloss.Color("14"),
	core.ColorWhite:   lipgloss.Color("7"),
	core.ColorBright:  lipgloss.Color("15"),
	core.ColorGray:    lipgloss.Color("245"),
	core.ColorDim:     neonDim,
}

var cellStyles = func() (out [core.NumColors]lipgloss.Style) {
	for i, c := range palette {
		out[i] = lipgloss.NewStyle()
		if c != nil {
			out[i] = out[i].Foreground(c)
		}
	}
	return out
}()

// Shared text styles for menus and overlays.
var (
	neonTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(neonPink)
	accentStyle    = lipgloss.NewStyle().Foreground(neonTeal)
	mutedStyle     = lipgloss.NewStyle().Foreground(neonMuted)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(cellStyles) {
		return cellStyles[core.ColorDefault]
	}
	return cellStyles[c]
}

// RenderScreen turns a Screen buffer into styled terminal text. Runs of
// same-colored cells share one style so each row emits few escape codes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		run = run[:0]
		current := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current {
				sb.WriteString(styleFor(current).Render(string(run)))
				run, current = run[:0], cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(current).Render(string(run)))
		}
	}
	return sb.String()
}
