package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tileflip/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// Each direction has an arrow, a WASD key and a right-hand home-row key.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	NewPuzzle   key.Binding
	Retry       key.Binding
	Clear       key.Binding
	PrevSize    key.Binding
	NextSize    key.Binding
	CustomSize  key.Binding
	AddBookmark key.Binding
	Bookmarks   key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.NewPuzzle, k.Retry, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NewPuzzle, k.Retry, k.PrevSize, k.NextSize, k.CustomSize},
		{k.AddBookmark, k.Bookmarks, k.Clear},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "p"),
			key.WithHelp("↑/w/p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", ";"),
			key.WithHelp("↓/s/;", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "l"),
			key.WithHelp("←/a/l", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "'"),
			key.WithHelp("→/d/'", "right"),
		),
		NewPuzzle: key.NewBinding(
			key.WithKeys(" ", "space", "q"),
			key.WithHelp("space/q", "new puzzle"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r", "e", "f", "enter"),
			key.WithHelp("r/e/f/enter", "retry"),
		),
		Clear: key.NewBinding(
			key.WithKeys("`"),
			key.WithHelp("`", "clear records"),
		),
		PrevSize: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "smaller"),
		),
		NextSize: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "larger"),
		),
		CustomSize: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "custom size"),
		),
		AddBookmark: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "bookmark seed"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmarks"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionUp},
		{k.Down, core.ActionDown},
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.NewPuzzle, core.ActionNewPuzzle},
		{k.Retry, core.ActionRetry},
		{k.Clear, core.ActionClearRecords},
		{k.PrevSize, core.ActionPrevSize},
		{k.NextSize, core.ActionNextSize},
		{k.CustomSize, core.ActionCustomSize},
		{k.AddBookmark, core.ActionAddBookmark},
		{k.Bookmarks, core.ActionBookmarks},
		{k.Help, core.ActionHelp},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// confirmKeys are used by yes/no prompts.
var (
	confirmYes = key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes"))
	confirmNo  = key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n/esc", "no"))
)
