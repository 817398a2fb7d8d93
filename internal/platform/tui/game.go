package tui

import "github.com/vovakirdan/tui-invaders/internal/core"

// Game is what the frame driver runs. Games contain pure logic with no
// Bubble Tea dependency; the platform handles input mapping, timing,
// sound and rendering.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Factory creates a fresh game for a new session.
type Factory func() Game
