package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Erase all best times and bookmarks",
	Long: `Erase every best time and every bookmark for all grid sizes.
Asks for confirmation unless --yes is given.`,
	Args: cobra.NoArgs,
	Run:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Do not ask for confirmation")
}

func runClear(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	if !flagYes && !confirm(os.Stdin, "Clear all best times and bookmarks? [y/N] ") {
		fmt.Println("Cancelled.")
		return
	}

	logger, closeLog := newLogger(io.Discard, "tileflip")
	defer closeLog()
	records, closeRecords := openRecords(cfg.Storage.Path, logger, false)
	defer closeRecords()

	if err := records.Clear(); err != nil {
		closeRecords()
		fatalf("%v", err)
	}
	fmt.Println("All records cleared.")
}

// confirm asks a yes/no question on stdout and reads the answer from r.
func confirm(r io.Reader, question string) bool {
	fmt.Print(question)
	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
