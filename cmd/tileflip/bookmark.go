package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileflip/internal/tileflip"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Add or list seed bookmarks",
	Long: `Bookmarks are named seeds stored per grid size. Load them in game
with the b key.

Examples:
  tileflip bookmark add 5 fast 777
  tileflip bookmark list 5`,
}

var bookmarkAddCmd = &cobra.Command{
	Use:   "add <size> <name> <seed>",
	Short: "Bookmark a seed for a grid size",
	Args:  cobra.ExactArgs(3),
	Run:   runBookmarkAdd,
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list <size>",
	Short: "List the bookmarks for a grid size",
	Args:  cobra.ExactArgs(1),
	Run:   runBookmarkList,
}

func init() {
	bookmarkCmd.AddCommand(bookmarkAddCmd)
	bookmarkCmd.AddCommand(bookmarkListCmd)
}

func runBookmarkAdd(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	size, err := parseSize(args[0], cfg.Game)
	if err != nil {
		fatalf("%v", err)
	}
	name := args[1]
	if name == "" {
		fatalf("bookmark name cannot be empty")
	}
	seed, err := parseSeed(args[2])
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog := newLogger(io.Discard, "tileflip")
	defer closeLog()
	records, closeRecords := openRecords(cfg.Storage.Path, logger, false)
	defer closeRecords()

	if err := records.AddBookmark(size, name, seed); err != nil {
		closeRecords()
		fatalf("%v", err)
	}
	fmt.Printf("Bookmarked %dx%d seed %d as %q\n", size, size, seed, name)
}

func runBookmarkList(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	size, err := parseSize(args[0], cfg.Game)
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog := newLogger(io.Discard, "tileflip")
	defer closeLog()
	records, closeRecords := openRecords(cfg.Storage.Path, logger, false)
	defer closeRecords()

	marks := records.Bookmarks(size)
	if len(marks) == 0 {
		fmt.Printf("No bookmarks for %dx%d.\n", size, size)
		return
	}

	fmt.Printf("Bookmarks - %dx%d\n", size, size)
	fmt.Println(bookmarkTable(marks).Render())
	fmt.Printf("Play one with 'tileflip play --size %d --seed <seed>'.\n", size)
}

// bookmarkTable builds one row per bookmark in insertion order.
func bookmarkTable(marks []tileflip.Bookmark) *table.Table {
	t := newTable("#", "Name", "Seed")
	for i, b := range marks {
		t.Row(strconv.Itoa(i+1), b.Name, strconv.FormatInt(int64(b.Seed), 10))
	}
	return t
}
