package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in terminal cells
	ScreenH  int   // Screen height in terminal cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState is the externally visible status of a game.
type GameState struct {
	Score    int
	Round    int
	Lives    int
	Paused   bool // Waiting on a pause screen after a life was lost
	GameOver bool // Waiting on the final score screen
}

// Verdict is the control-flow outcome of processing one frame of input.
// Every loop level (the frame loop and the pause screen) consumes it.
type Verdict int

const (
	VerdictContinue Verdict = iota // Keep running the current loop
	VerdictResume                  // Leave the pause screen
	VerdictQuit                    // Terminate at the next safe point
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictContinue:
		return "Continue"
	case VerdictResume:
		return "Resume"
	case VerdictQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Step after each simulation tick.
// Sounds and events are data; the platform decides how to play or log them.
type StepResult struct {
	State   GameState
	Verdict Verdict
	Sounds  []Sound
	Events  []Event
}
