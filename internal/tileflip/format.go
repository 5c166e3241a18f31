package tileflip

import (
	"fmt"
	"math/rand"
	"time"
)

// Version is the game version shown by hosts.
const Version = "v1.0"

// DefaultSeedMax is the exclusive upper bound for freshly drawn seeds.
const DefaultSeedMax = 1_000_000

// FormatTime renders d as mm:ss.cc (centiseconds, truncated).
func FormatTime(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms / 1000) % 60
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

// FormatBest renders a best time, or a placeholder when there is none.
func FormatBest(d time.Duration, ok bool) string {
	if !ok {
		return "--:--:--"
	}
	return FormatTime(d)
}

// RandomSeed draws a seed in [1, max). Zero is excluded because it produces
// a degenerate all-light grid. A max below 2 falls back to DefaultSeedMax.
func RandomSeed(rng *rand.Rand, max int32) int32 {
	if max < 2 {
		max = DefaultSeedMax
	}
	return 1 + rng.Int31n(max-1)
}
