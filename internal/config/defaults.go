package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration used when no file and no
// embedded default can be read.
func Default() Config {
	return Config{
		TickRate: 60,
		Seed:     0,
		Input: InputConfig{
			HoldTicks: 12,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Storage: StorageConfig{
			DBPath: "~/.invaders/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:     ":2222",
			HostKey:     ".ssh/invaders_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
