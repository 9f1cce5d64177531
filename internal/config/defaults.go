package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			X:       200,
			Y:       300,
			Width:   20,
			Height:  20,
			Gravity: 0.6,
			Lift:    -10,
			AirJump: true,
		},
		Speed: SpeedConfig{
			Initial:   2,
			Increment: 0.0005,
		},
		Spawn: SpawnConfig{
			MinY:         50,
			BottomMargin: 100,
		},
		Platforms: PlatformConfig{
			Width:       80,
			Height:      10,
			Every:       100,
			Oscillation: 0.5,
		},
		Orbs: OrbConfig{
			Radius: 10,
			Every:  200,
			Bonus:  50,
		},
		Obstacles: ObstacleConfig{
			Width:      30,
			Height:     30,
			Every:      300,
			SpeedDelta: 1,
		},
		Particles: ParticleConfig{
			Burst:    5,
			MinSize:  2,
			MaxSize:  7,
			Spread:   1,
			Decay:    0.95,
			CullSize: 0.5,
		},
		Backdrop: BackdropConfig{
			Stars:    60,
			Planets:  2,
			Galaxies: 1,
		},
		Scoring: ScoringConfig{
			Mode:        ScoringFlat,
			LandingBase: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `config dump`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
