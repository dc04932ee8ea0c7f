package core

import "time"

// RuntimeConfig contains configuration passed to the game at construction.
// The game uses it to size the playfield and to seed its random source.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host loop
	Seed     int64 // RNG seed for reproducible gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameInterval returns the nominal time between frames.
func (c RuntimeConfig) FrameInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int  // Current score
	Lives         int  // Remaining lives
	GameOver      bool // No lives left
	LevelComplete bool // Every brick destroyed
	Paused        bool // Whether the game is paused
}

// Finished reports whether the game reached a terminal state.
func (s GameState) Finished() bool {
	return s.GameOver || s.LevelComplete
}
