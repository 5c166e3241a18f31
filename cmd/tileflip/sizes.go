package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "Show grid size presets and limits",
	Long:  `Shows the size presets cycled with [ and ] in game, and the limits for custom sizes.`,
	Args:  cobra.NoArgs,
	Run:   runSizes,
}

func runSizes(_ *cobra.Command, _ []string) {
	game := loadConfig().Game

	presets := make([]string, len(game.Sizes))
	for i, size := range game.Sizes {
		mark := " "
		if size == game.DefaultSize {
			mark = "*"
		}
		presets[i] = fmt.Sprintf("%s%dx%d", mark, size, size)
	}

	fmt.Println("Size presets (* = default):")
	fmt.Println()
	fmt.Printf("  %s\n", strings.Join(presets, "  "))
	fmt.Println()
	fmt.Printf("Custom sizes: %d to %d\n", game.MinSize, game.MaxSize)
	if game.LargeSizeWarning > 0 {
		fmt.Printf("Sizes above %d ask for confirmation.\n", game.LargeSizeWarning)
	}
	fmt.Println()
	fmt.Println("Run 'tileflip play --size <n>' to play a size.")
}
