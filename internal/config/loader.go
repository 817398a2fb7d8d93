package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Limits enforced by Validate.
const (
	MinTickRate  = 10
	MaxTickRate  = 240
	MaxHoldTicks = 120
)

// Load reads the configuration.
// Search order: customPath -> ~/.invaders/config.yaml -> ./configs/invaders.yaml -> embedded default
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with and clamps the
// ones that merely have a sensible range.
func (c *Config) Validate() error {
	if c.TickRate < MinTickRate || c.TickRate > MaxTickRate {
		return fmt.Errorf("config: tick_rate %d out of range [%d, %d]", c.TickRate, MinTickRate, MaxTickRate)
	}
	if c.Log.Level == "" {
		c.Log.Level = Default().Log.Level
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	if c.Audio.SampleRate < 0 {
		return fmt.Errorf("config: audio.sample_rate %d is negative", c.Audio.SampleRate)
	}
	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = Default().Audio.SampleRate
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = Default().Storage.DBPath
	}

	c.Input.HoldTicks = core.Clamp(c.Input.HoldTicks, 1, MaxHoldTicks)
	c.Audio.Volume = min(max(c.Audio.Volume, 0), 1)
	if c.SSH.IdleTimeout < 0 {
		c.SSH.IdleTimeout = 0
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// UserConfigPath returns the per-user config file, or empty if home is
// unavailable.
func UserConfigPath() string {
	return userConfigPath("config.yaml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", filename)
}
