package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagDirect bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Space Invaders",
	Long: `Open the title menu and play.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire
  Enter            - Continue after losing a life / play again
  Esc/B            - Back to the title menu (while paused)
  Q/Ctrl+C         - Quit

Examples:
  invaders play
  invaders play --direct --seed 42
  invaders play --log-file ./invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDirect, "direct", false, "Skip the title menu")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	settings, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file
	logger, closeLog, err := newLogger(settings.Log, io.Discard, "invaders")
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.TickRate,
		Seed:     settings.Seed,
	}

	store := openStore(settings.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	sounds, closeAudio := audio.Open(settings.Audio, logger.WithPrefix("audio"))
	defer closeAudio()

	opts := tui.Options{
		Store:     store,
		Sounds:    sounds,
		Logger:    logger,
		HoldTicks: settings.Input.HoldTicks,
	}

	if flagDirect {
		return tui.RunGame(invaders.New(), cfg, opts)
	}
	return tui.Run(newGame, cfg, opts)
}

func newGame() tui.Game {
	return invaders.New()
}
