// tileflip is a terminal tile-flipping puzzle: move the cursor over an N×N
// grid, every tile you step on flips, and the puzzle is solved when all
// tiles share one color.
//
// Usage:
//
//	tileflip play                          - Play a random puzzle
//	tileflip play --size 7 --seed 777      - Play a specific puzzle
//	tileflip serve                         - Start SSH server for remote play
//	tileflip records                       - Show best times per size
//	tileflip bookmark add <size> <name> <seed>
//	tileflip bookmark list <size>
//	tileflip clear                         - Erase all records
//	tileflip sizes                         - Show size presets and limits
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.tileflip/config.yaml)
//	--db <path>         - Records database (default: ~/.tileflip/records.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileflip/internal/config"
	"github.com/vovakirdan/tileflip/internal/storage"
	"github.com/vovakirdan/tileflip/internal/tileflip"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "tileflip",
	Short:   "TileFlip - flip every tile to one color",
	Version: tileflip.Version,
	Long: `TileFlip is a grid toggle puzzle for the terminal.

Move the cursor across the grid. Every tile you move onto flips color.
The puzzle is solved when all tiles share one color. Each puzzle comes
from a seed, so the same size and seed always give the same grid.

Available commands:
  play      - Play a puzzle
  serve     - Start SSH server for remote play
  records   - Show best times and bookmark counts
  bookmark  - Add or list seed bookmarks
  clear     - Erase all best times and bookmarks
  sizes     - Show size presets and limits

Examples:
  tileflip play
  tileflip play --size 7 --seed 777
  tileflip serve --ssh :2222
  tileflip bookmark add 5 fast 777`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(bookmarkCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(sizesCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("%v", err)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg
}

// newLogger builds the logger. Output goes to --log-file when set and to
// fallback otherwise. The returned function closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fatalf("cannot open log file: %v", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatalf("invalid --log-level %q: %v", flagLogLevel, err)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn
}

// openRecords opens the records database. With fallback set, a database
// that cannot be opened is replaced by in-memory records for this run.
func openRecords(path string, logger *log.Logger, fallback bool) (*tileflip.RecordStore, func()) {
	store, err := storage.Open(path)
	if err == nil {
		records, loadErr := tileflip.NewRecordStore(store)
		if loadErr == nil {
			return records, func() { store.Close() }
		}
		store.Close()
		err = loadErr
	}

	if !fallback {
		fatalf("%v", err)
	}
	logger.Warn("records database unavailable, records will not persist", "path", path, "error", err)
	records, memErr := tileflip.NewRecordStore(tileflip.NewMemoryBackend())
	if memErr != nil {
		fatalf("%v", memErr)
	}
	return records, func() {}
}
