package core

// Color is a palette index for a screen cell. The terminal platform maps each
// index to a concrete terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPink          // Player
	ColorTeal          // Platforms
	ColorGold          // Orbs
	ColorCrimson       // Obstacles
	ColorRed           // Floor line
	ColorSpark         // Landing particles
	ColorOrange
	ColorMagenta
	ColorViolet
	ColorPurple
	ColorBlue
	ColorAzure
	ColorCyan
	ColorIce
	ColorWhite
	ColorBright
	ColorGray
	ColorDim

	NumColors int = iota
)

// GlowCycle is the palette the player cycles through in glowing editions.
var GlowCycle = []Color{
	ColorPink,
	ColorViolet,
	ColorPurple,
	ColorAzure,
	ColorIce,
	ColorTeal,
}
