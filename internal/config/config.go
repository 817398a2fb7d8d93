// Package config provides YAML-based platform settings for the game:
// frame rate, input latching, audio, score storage, logging and the SSH
// server. Gameplay constants are fixed and not configurable.
package config

import "time"

// Config contains every setting read from the YAML file.
type Config struct {
	TickRate int           `yaml:"tick_rate"` // Frames per second
	Seed     int64         `yaml:"seed"`      // 0 picks a seed from the clock
	Input    InputConfig   `yaml:"input"`
	Audio    AudioConfig   `yaml:"audio"`
	Storage  StorageConfig `yaml:"storage"`
	Log      LogConfig     `yaml:"log"`
	SSH      SSHConfig     `yaml:"ssh"`
}

// InputConfig defines how key presses become held directions.
type InputConfig struct {
	// HoldTicks is how many frames a Left/Right press stays held.
	// Terminals report presses and auto-repeats, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// AudioConfig defines the sound engine parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"` // Hz
}

// StorageConfig defines where high scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines the process logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards logs while the TUI runs
}

// SSHConfig defines the multi-session SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}
