package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileflip/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TileFlip SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent puzzle.
Records are stored per-server (all users share best times and bookmarks).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tileflip/host_key

Examples:
  tileflip serve                           # Listen on :23234 with auto-generated key
  tileflip serve --ssh :2222               # Listen on port 2222
  tileflip serve --host-key ./my_host_key  # Use specific host key
  tileflip serve --db ./records.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger, closeLog := newLogger(os.Stderr, "tileflip-ssh")
	defer closeLog()

	records, closeRecords := openRecords(cfg.Storage.Path, logger, true)
	defer closeRecords()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		IdleTimeout: cfg.Server.IdleTimeout(),
		Game:        cfg,
		Records:     records,
		Logger:      logger,
	})
	if err != nil {
		closeRecords()
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting TileFlip SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeRecords()
		fatalf("server: %v", err)
	}
}
