package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tileflip/internal/platform/tui"
)

var (
	flagSize int
	flagSeed int32
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a puzzle",
	Long: `Start an interactive TileFlip game.

Controls:
  ↑ w p / ↓ s ; / ← a l / → d '  - Move (flips the tile you land on)
  space q                        - New puzzle
  r e f enter                    - Retry the same seed
  [ ]                            - Previous / next size preset
  +                              - Custom size
  n                              - Bookmark the current seed
  b                              - Pick a bookmarked seed
  ` + "`" + `                              - Clear all records
  ?                              - More help
  esc ctrl+c                     - Quit

Examples:
  tileflip play
  tileflip play --size 9
  tileflip play --size 5 --seed 777
  tileflip play --log-file tileflip.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Grid size (default from config)")
	playCmd.Flags().Int32Var(&flagSeed, "seed", 0, "Puzzle seed (random if not set)")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	// The game owns the terminal, so logs only go to --log-file.
	logger, closeLog := newLogger(io.Discard, "tileflip")
	defer closeLog()

	records, closeRecords := openRecords(cfg.Storage.Path, logger, true)
	defer closeRecords()

	// Get terminal size early so the first frame fits
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config:  cfg,
		Records: records,
		Size:    flagSize,
		Seed:    flagSeed,
		HasSeed: cmd.Flags().Changed("seed"),
		Width:   width,
		Height:  height,
		Logger:  logger,
	}

	if err := tui.Run(opts); err != nil {
		closeRecords()
		fatalf("%v", err)
	}
}
