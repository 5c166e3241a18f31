package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileflip/internal/tileflip"
)

// Picker layout constants
const (
	pickerMarkWidth = 2
	pickerSeedWidth = 10
	pickerMinName   = 12
	pickerMaxName   = 32
	pickerMaxRows   = 12
)

// BookmarkKeyMap defines the key bindings for the bookmark picker.
type BookmarkKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Load  key.Binding
	Close key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BookmarkKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Load, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k BookmarkKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultBookmarkKeyMap returns default key bindings.
func DefaultBookmarkKeyMap() BookmarkKeyMap {
	return BookmarkKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load seed"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
	}
}

// bookmarkPicker lists the bookmarks of one grid size in a table.
// The bookmark matching the current seed is marked with "*".
type bookmarkPicker struct {
	size       int
	marks      []tileflip.Bookmark
	table      table.Model
	headerRows int
}

// newBookmarkPicker creates a picker with the cursor on the active bookmark.
func newBookmarkPicker(size int, marks []tileflip.Bookmark, active, width, height int) bookmarkPicker {
	nameWidth := pickerMinName
	for _, b := range marks {
		nameWidth = max(nameWidth, lipgloss.Width(b.Name))
	}
	nameWidth = min(nameWidth, pickerMaxName)

	columns := []table.Column{
		{Title: "", Width: pickerMarkWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Seed", Width: pickerSeedWidth},
	}

	rows := make([]table.Row, len(marks))
	for i, b := range marks {
		mark := ""
		if i == active {
			mark = "*"
		}
		rows[i] = table.Row{mark, b.Name, fmt.Sprintf("%d", b.Seed)}
	}

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)

	// The table height includes its header, so size it after styling.
	headerRows := lipgloss.Height(s.Header.Render("Name"))
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithStyles(s),
		table.WithHeight(pickerHeight(len(marks), height)+headerRows),
	)

	if active >= 0 {
		t.SetCursor(active)
	}

	return bookmarkPicker{size: size, marks: marks, table: t, headerRows: headerRows}
}

// pickerHeight returns how many bookmark rows fit on the terminal.
func pickerHeight(rows, termHeight int) int {
	h := min(rows, pickerMaxRows)
	// Leave room for title, header, borders and footer
	return max(min(h, termHeight-8), 1)
}

// Selected returns the highlighted bookmark.
func (p bookmarkPicker) Selected() (tileflip.Bookmark, bool) {
	i := p.table.Cursor()
	if i < 0 || i >= len(p.marks) {
		return tileflip.Bookmark{}, false
	}
	return p.marks[i], true
}

// Update passes navigation keys to the table.
func (p bookmarkPicker) Update(msg tea.Msg) (bookmarkPicker, tea.Cmd) {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

// Resize adapts the table to a new terminal height.
func (p *bookmarkPicker) Resize(height int) {
	p.table.SetHeight(pickerHeight(len(p.marks), height) + p.headerRows)
}

// View renders the picker centered in width x height.
func (p bookmarkPicker) View(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("BOOKMARKS - %dx%d", p.size, p.size)),
		tableStyle.Render(p.table.View()),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
