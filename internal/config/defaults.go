package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is the fallback when the embedded
// file cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Gameplay: GameplayConfig{
			Lives:       3,
			PauseBuffer: 0.5,
			BrickPoints: 10,
		},
		Shake: ShakeConfig{
			Strength: 1.0,
			Duration: 0.2,
		},
		Powerups: PowerupConfig{
			SpawnFrequency: 10.0,
			SpawnChance:    700,
			EffectDuration: 5.0,
			FallSpeed:      8.0,
		},
		Bricks: BrickLayout{
			Rows:    5,
			Cols:    10,
			Width:   6,
			Height:  1,
			Spacing: 1,
			Top:     3,
		},
		Paddle: PaddleConfig{
			Width:     10,
			RowOffset: 2,
		},
		Ball: BallConfig{
			Speed: 18.0,
		},
		UI: UIConfig{
			Color: "yellow",
		},
		Input: InputConfig{
			KeyHold:     0.15,
			PointerStep: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
