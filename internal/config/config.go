// Package config provides YAML-based runner configuration loading, edition
// presets and the scroll speed ramp.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the runner.
type RunnerConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Player    PlayerConfig   `yaml:"player"`
	Speed     SpeedConfig    `yaml:"speed"`
	Spawn     SpawnConfig    `yaml:"spawn"`
	Platforms PlatformConfig `yaml:"platforms"`
	Orbs      OrbConfig      `yaml:"orbs"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Particles ParticleConfig `yaml:"particles"`
	Backdrop  BackdropConfig `yaml:"backdrop"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Effects   EffectsConfig  `yaml:"effects"`
}

// CanvasConfig defines the logical playfield, independent of terminal size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player body and its physics.
type PlayerConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"` // Start height, restored on restart
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"`
	Lift    float64 `yaml:"lift"`     // Jump velocity (negative = up)
	AirJump bool    `yaml:"air_jump"` // Allow jumping while airborne
}

// SpeedConfig defines the linear scroll speed ramp.
type SpeedConfig struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"` // Added after every running tick
}

// SpawnConfig defines the vertical band new entities are placed in.
type SpawnConfig struct {
	MinY         float64 `yaml:"min_y"`
	BottomMargin float64 `yaml:"bottom_margin"` // Band ends at canvas height minus this
}

// PlatformConfig defines platform geometry and cadence.
type PlatformConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Every       int     `yaml:"every"`       // Spawn cadence in ticks
	Oscillate   bool    `yaml:"oscillate"`   // Vertical drift inside the spawn band
	Oscillation float64 `yaml:"oscillation"` // Drift per tick
}

// OrbConfig defines orb geometry, cadence and reward.
type OrbConfig struct {
	Radius float64 `yaml:"radius"`
	Every  int     `yaml:"every"`
	Bonus  int     `yaml:"bonus"` // Flat score bonus when scoring is "flat"
}

// ObstacleConfig defines obstacle geometry and cadence.
type ObstacleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Every      int     `yaml:"every"`
	SpeedDelta float64 `yaml:"speed_delta"` // Added to scroll speed
}

// ParticleConfig defines the landing burst.
type ParticleConfig struct {
	Burst    int     `yaml:"burst"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	Spread   float64 `yaml:"spread"` // Max absolute velocity on each axis
	Decay    float64 `yaml:"decay"`  // Size factor applied per tick
	CullSize float64 `yaml:"cull_size"`
}

// BackdropConfig defines the cosmetic parallax layer.
type BackdropConfig struct {
	Enabled  bool `yaml:"enabled"`
	Stars    int  `yaml:"stars"`
	Planets  int  `yaml:"planets"`
	Galaxies int  `yaml:"galaxies"`
}

// ScoringMode selects the orb reward rule.
type ScoringMode string

const (
	ScoringFlat       ScoringMode = "flat"       // Orb adds a flat bonus to score
	ScoringMultiplier ScoringMode = "multiplier" // Orb increments the end-of-run multiplier
)

// ScoringConfig defines how runs are scored.
type ScoringConfig struct {
	Mode        ScoringMode `yaml:"mode"`
	LandingBase int         `yaml:"landing_base"` // Points per platform contact tick
}

// EffectsConfig toggles purely visual layers.
type EffectsConfig struct {
	ColorCycle bool `yaml:"color_cycle"` // Cycle player color
	Glow       bool `yaml:"glow"`        // Halo around the player and orbs
}

// SpawnMaxY returns the lower edge of the spawn band.
func (c RunnerConfig) SpawnMaxY() float64 {
	return c.Canvas.Height - c.Spawn.BottomMargin
}

// Validate checks that the configuration can drive a run.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Platforms.Every <= 0 || c.Orbs.Every <= 0 || c.Obstacles.Every <= 0 {
		errs = append(errs, errors.New("spawn cadences must be positive"))
	}
	if c.Spawn.MinY > c.SpawnMaxY() {
		errs = append(errs, fmt.Errorf("spawn band is empty: [%v, %v]", c.Spawn.MinY, c.SpawnMaxY()))
	}
	switch c.Scoring.Mode {
	case ScoringFlat, ScoringMultiplier:
	default:
		errs = append(errs, fmt.Errorf("unknown scoring mode %q", c.Scoring.Mode))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}
