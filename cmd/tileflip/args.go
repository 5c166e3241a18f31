package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tileflip/internal/config"
	"github.com/vovakirdan/tileflip/internal/tileflip"
)

// parseSize parses a grid size argument and checks it against the limits.
func parseSize(arg string, game config.GameConfig) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("size %q is not a whole number", arg)
	}
	if !game.Allows(size) {
		return 0, fmt.Errorf("%w: %d (must be between %d and %d)",
			tileflip.ErrInvalidSize, size, game.MinSize, game.MaxSize)
	}
	return size, nil
}

// parseSeed parses a seed argument as a 32-bit signed integer.
func parseSeed(arg string) (int32, error) {
	seed, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("seed %q must be an integer between %d and %d", arg, int32(-1<<31), int32(1<<31-1))
	}
	return int32(seed), nil
}
