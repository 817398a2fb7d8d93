package invaders

// Phase is the round/lives state machine position.
type Phase int

const (
	PhasePlaying  Phase = iota // Frames advance normally
	PhasePaused                // A life was lost; waiting for Enter
	PhaseGameOver              // Lives ran out; waiting for Enter to start over
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// pauseScreen holds the two lines shown while the game is blocked.
type pauseScreen struct {
	main string
	sub  string
}
