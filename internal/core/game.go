package core

// Game is the interface the platform drives.
// Games contain pure logic with no dependency on Bubble Tea; the platform
// handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier for this game, used in round records.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg RuntimeConfig)

	// Resize adapts the layout to a new screen size without losing state.
	Resize(w, h int)

	// Step consumes one frame of input and returns the resulting state.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState

	// Close releases background resources such as clocks.
	Close()
}
