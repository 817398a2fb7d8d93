package core

// Sound identifies a one-shot sound clip.
type Sound int

const (
	SoundNewRound Sound = iota
	SoundBreach
	SoundAlienHit
	SoundPlayerHit
	SoundPlayerFire
	SoundAlienFire
	SoundCount
)

// String returns the clip name.
func (s Sound) String() string {
	switch s {
	case SoundNewRound:
		return "new_round"
	case SoundBreach:
		return "breach"
	case SoundAlienHit:
		return "alien_hit"
	case SoundPlayerHit:
		return "player_hit"
	case SoundPlayerFire:
		return "player_fire"
	case SoundAlienFire:
		return "alien_fire"
	default:
		return "unknown"
	}
}

// EventKind classifies a gameplay event emitted by a step.
type EventKind int

const (
	EventAlienDestroyed EventKind = iota
	EventPlayerHit
	EventBreach
	EventRoundCleared
	EventPaused
	EventResumed
	EventGameOver
	EventGameReset
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAlienDestroyed:
		return "alien_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventBreach:
		return "breach"
	case EventRoundCleared:
		return "round_cleared"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	case EventGameReset:
		return "game_reset"
	default:
		return "unknown"
	}
}

// Event records something that happened during a step, with the
// bookkeeping values after it was applied.
type Event struct {
	Kind  EventKind
	Round int
	Score int
	Lives int
}
