// Package tui provides the Bubble Tea host for TileFlip.
// It maps keys to session calls, draws the board and serves games over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to redraw the running stopwatch.
// Gen identifies the tick chain that produced it; ticks from a chain that
// was superseded by a reset or resize are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a command that sends one tick for chain gen after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
