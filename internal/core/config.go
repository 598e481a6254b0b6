package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Turns    int           // Pieces placed since the last reset
	Elapsed  time.Duration // Session clock
	Finished bool          // Finish dialog is open
	Exit     bool          // Player chose to leave the game
}

// RoundResult is a completed round, reported once when it ends.
type RoundResult struct {
	Turns   int
	Elapsed time.Duration
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState

	// Round is set on the tick a round ends (reset or exit from the
	// finish dialog).
	Round *RoundResult
}
