// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains every tunable of the game. It is passed to the
// coordinator at construction instead of being written field by field.
type BreakoutConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay"`
	Shake    ShakeConfig    `yaml:"shake"`
	Powerups PowerupConfig  `yaml:"powerups"`
	Bricks   BrickLayout    `yaml:"bricks"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	UI       UIConfig       `yaml:"ui"`
	Input    InputConfig    `yaml:"input"`
}

// GameplayConfig defines lives, scoring and pause handling.
type GameplayConfig struct {
	Lives       int     `yaml:"lives"`
	PauseBuffer float64 `yaml:"pause_buffer"` // Seconds between pause toggles
	BrickPoints int     `yaml:"brick_points"` // Points for a bottom-row brick
}

// ShakeConfig defines the screen shake triggered by losing a life.
type ShakeConfig struct {
	Strength float64 `yaml:"strength"` // Max horizontal offset in cells
	Duration float64 `yaml:"duration"` // Seconds
}

// PowerupConfig defines timed random powerup spawning and effects.
type PowerupConfig struct {
	SpawnFrequency float64 `yaml:"spawn_frequency"` // Minimum seconds between spawns
	SpawnChance    int     `yaml:"spawn_chance"`    // 1 in N chance per eligible frame
	EffectDuration float64 `yaml:"effect_duration"` // Seconds an effect lasts
	FallSpeed      float64 `yaml:"fall_speed"`      // Cells per second
}

// BrickLayout defines the brick grid.
type BrickLayout struct {
	Rows    int `yaml:"rows"`
	Cols    int `yaml:"cols"`
	Width   int `yaml:"width"`   // Cells
	Height  int `yaml:"height"`  // Cells
	Spacing int `yaml:"spacing"` // Gap between bricks in cells
	Top     int `yaml:"top"`     // Row of the first brick line
}

// PaddleConfig defines the paddle.
type PaddleConfig struct {
	Width     int `yaml:"width"`
	RowOffset int `yaml:"row_offset"` // Rows above the bottom edge
}

// BallConfig defines the ball.
type BallConfig struct {
	Speed float64 `yaml:"speed"` // Cells per second
}

// UIConfig defines the status text presentation.
type UIConfig struct {
	Font  string `yaml:"font"`  // Path to a banner font, empty for the built-in one
	Color string `yaml:"color"` // Status text color name
}

// InputConfig defines how terminal key events become held keys.
type InputConfig struct {
	KeyHold     float64 `yaml:"key_hold"`     // Seconds a key counts as held after an event
	PointerStep float64 `yaml:"pointer_step"` // Cells the pointer moves per arrow key event
}

// Validate reports configuration values the game cannot run with.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.PauseBuffer < 0 {
		errs = append(errs, fmt.Errorf("gameplay.pause_buffer must not be negative, got %g", c.Gameplay.PauseBuffer))
	}
	if c.Shake.Strength < 0 || c.Shake.Duration < 0 {
		errs = append(errs, errors.New("shake.strength and shake.duration must not be negative"))
	}
	if c.Powerups.SpawnChance <= 0 {
		errs = append(errs, fmt.Errorf("powerups.spawn_chance must be positive, got %d", c.Powerups.SpawnChance))
	}
	if c.Powerups.SpawnFrequency < 0 {
		errs = append(errs, fmt.Errorf("powerups.spawn_frequency must not be negative, got %g", c.Powerups.SpawnFrequency))
	}
	if c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0 {
		errs = append(errs, fmt.Errorf("bricks grid must be at least 1x1, got %dx%d", c.Bricks.Rows, c.Bricks.Cols))
	}
	if c.Bricks.Width <= 0 || c.Bricks.Height <= 0 {
		errs = append(errs, errors.New("bricks.width and bricks.height must be positive"))
	}
	if c.Paddle.Width <= 0 {
		errs = append(errs, fmt.Errorf("paddle.width must be positive, got %d", c.Paddle.Width))
	}
	if c.Ball.Speed <= 0 {
		errs = append(errs, fmt.Errorf("ball.speed must be positive, got %g", c.Ball.Speed))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI flag value into a preset.
// An empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}
