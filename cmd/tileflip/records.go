package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileflip/internal/storage"
	"github.com/vovakirdan/tileflip/internal/tileflip"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show best times and bookmark counts",
	Long: `Display the best time and the number of bookmarked seeds for
every grid size that has records.

With --raw, prints the stored JSON documents instead. Their layout
matches the browser version of the game, so they can be copied into
its local storage.

Examples:
  tileflip records
  tileflip records --raw
  tileflip records --db ./records.db`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

var flagRaw bool

func init() {
	recordsCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the stored JSON documents")
}

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// newTable returns a table styled like the rest of the CLI output.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

func runRecords(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagRaw {
		runRecordsRaw(cfg.Storage.Path)
		return
	}

	logger, closeLog := newLogger(io.Discard, "tileflip")
	defer closeLog()

	records, closeRecords := openRecords(cfg.Storage.Path, logger, false)
	defer closeRecords()

	sizes := records.Sizes()
	if len(sizes) == 0 {
		fmt.Println("No records yet.")
		fmt.Println()
		fmt.Println("Run 'tileflip play' to set the first best time!")
		return
	}

	fmt.Println(recordsTable(records, sizes).Render())
}

// recordsTable builds one row per size.
func recordsTable(records *tileflip.RecordStore, sizes []int) *table.Table {
	t := newTable("Size", "Best", "Bookmarks")
	for _, size := range sizes {
		best, ok := records.BestTime(size)
		t.Row(
			fmt.Sprintf("%dx%d", size, size),
			tileflip.FormatBest(best, ok),
			strconv.Itoa(len(records.Bookmarks(size))),
		)
	}
	return t
}

// runRecordsRaw prints every stored document with its update time.
func runRecordsRaw(path string) {
	store, err := storage.Open(path)
	if err != nil {
		fatalf("%v", err)
	}
	defer store.Close()

	entries, err := store.Entries()
	if err != nil {
		store.Close()
		fatalf("%v", err)
	}

	fmt.Printf("Database: %s\n", store.Path())
	if len(entries) == 0 {
		fmt.Println("No records stored.")
		return
	}

	t := newTable("Key", "Updated", "Value")
	for _, e := range entries {
		updated := "-"
		if !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		t.Row(e.Key, updated, e.Value)
	}
	fmt.Println(t.Render())
}
