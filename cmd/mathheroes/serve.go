package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-heroes/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	serveFlags      gameFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Math Heroes SSH server",
	Long: `Start an SSH server so players can connect and play.

Each SSH connection gets its own session with the intro and mode picker.
Scores and unlocks are stored per server, so every player shares them.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mathheroes/host_key

Examples:
  mathheroes serve                           # Listen on :23234 with auto-generated key
  mathheroes serve --ssh :2222               # Listen on port 2222
  mathheroes serve --host-key ./my_host_key  # Use specific host key
  mathheroes serve --db ./heroes.db          # Use specific database

Players can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
	serveFlags.register(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger(current, false)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(current, logger)
	if store != nil {
		defer store.Close()
	}

	if err := serveFlags.configureGames(store, logger); err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = current.FPS

	server, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Math Heroes SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}
