package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgey/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Dodgey SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session. After a round ends the player
sees a summary and can play again. Runs are stored per-server under the SSH
user name (all users share the same history).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dodgey/host_key

Examples:
  dodgey serve                           # Listen on :23234 with auto-generated key
  dodgey serve --ssh :2222               # Listen on port 2222
  dodgey serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a steering key press stays active")
}

func runServe(_ *cobra.Command, _ []string) {
	game, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = game
	cfg.TickRate = flagFPS
	cfg.HoldTicks = flagHold

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("dodgey-ssh"))
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting Dodgey SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}
