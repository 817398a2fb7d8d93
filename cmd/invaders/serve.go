package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the title menu and its own
game. Scores are stored per-server (all users share the same leaderboard).
Sessions are silent.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the settings (generated on first start)

Examples:
  invaders serve                           # Listen on :2222
  invaders serve --ssh :23234              # Listen on port 23234
  invaders serve --host-key ./my_host_key  # Use specific host key
  invaders serve --idle-timeout 5m

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle sessions after this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		settings.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		settings.SSH.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		settings.SSH.IdleTimeout = flagIdleTimeout
	}

	logger, closeLog, err := newLogger(settings.Log, os.Stderr, "invaders-ssh")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(settings.Storage.DBPath, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		SSH:       settings.SSH,
		TickRate:  settings.TickRate,
		HoldTicks: settings.Input.HoldTicks,
	}, newGame, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting invaders SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// port returns the port part of a listen address.
func port(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i+1:]
	}
	return addr
}
