package config

import "fmt"

// Edition names one of the three shipped variants of the runner.
// All editions share the gameplay loop and differ in reward rule and
// cosmetic layers.
type Edition string

const (
	EditionClassic Edition = "classic" // Flat orb bonus, no effects
	EditionGlow    Edition = "glow"    // Multiplier orbs, color cycling and glow
	EditionCosmos  Edition = "cosmos"  // Glow plus oscillating platforms and a starfield
)

// Editions returns all editions in release order.
func Editions() []Edition {
	return []Edition{EditionClassic, EditionGlow, EditionCosmos}
}

// ParseEdition converts a CLI string to an Edition.
func ParseEdition(s string) (Edition, error) {
	for _, e := range Editions() {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("config: unknown edition %q", s)
}

// ApplyEdition modifies the config to match an edition's feature set.
// Geometry and physics from the loaded file are left untouched.
func ApplyEdition(cfg *RunnerConfig, e Edition) {
	switch e {
	case EditionClassic:
		cfg.Scoring.Mode = ScoringFlat
		cfg.Platforms.Oscillate = false
		cfg.Backdrop.Enabled = false
		cfg.Effects = EffectsConfig{}
	case EditionGlow:
		cfg.Scoring.Mode = ScoringMultiplier
		cfg.Platforms.Oscillate = false
		cfg.Backdrop.Enabled = false
		cfg.Effects = EffectsConfig{ColorCycle: true, Glow: true}
	case EditionCosmos:
		cfg.Scoring.Mode = ScoringMultiplier
		cfg.Platforms.Oscillate = true
		cfg.Backdrop.Enabled = true
		cfg.Effects = EffectsConfig{ColorCycle: true, Glow: true}
	}
}
