// Package audio plays the game's sound effects through the system speaker
// using beep. Every clip is synthesized once at startup and replayed from
// memory.
package audio

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Sink receives the sounds a frame asked for.
type Sink interface {
	Play(s core.Sound)
}

// Mute is a Sink that drops every sound. Used for SSH sessions, --mute and
// machines without an audio device.
type Mute struct{}

// Play does nothing.
func (Mute) Play(core.Sound) {}

// Open returns a ready-to-use sink. When audio is disabled or the speaker
// cannot be initialized it returns Mute, so the caller never has to care.
// The returned close function is always safe to call.
func Open(cfg config.AudioConfig, logger *log.Logger) (Sink, func()) {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Mute{}, func() {}
	}

	engine := NewEngine(cfg)
	if err := engine.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing silently", "err", err)
		return Mute{}, func() {}
	}

	logger.Debug("audio ready", "sample_rate", cfg.SampleRate, "volume", cfg.Volume)
	return engine, engine.Close
}
