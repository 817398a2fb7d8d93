package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings the game would run with, after the settings file
and command line flags are applied.

With --init, write the default settings to the user config file so they can
be edited. An existing file is never overwritten.

Examples:
  invaders config
  invaders config --fps 30 --mute
  invaders config --init`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the default settings to "+displayPath(config.UserConfigPath()))
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagInit {
		return writeDefaultConfig(config.UserConfigPath())
	}

	settings, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := settings.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func writeDefaultConfig(path string) error {
	if path == "" {
		return fmt.Errorf("cannot locate home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}

	fmt.Printf("Wrote default settings to %s\n", path)
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "~/.invaders/config.yaml"
	}
	return path
}
