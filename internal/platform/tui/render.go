package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tileflip/internal/core"
	"github.com/vovakirdan/tileflip/internal/tileflip"
)

// Screen rows above the board: title, grid info, stopwatch, blank.
const hudRows = 4

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorTileLight:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorTileDark:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorCursorLight: lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Background(lipgloss.Color("252")).Bold(true),
	core.ColorCursorDark:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("238")).Bold(true),
	core.ColorFrame:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorFrameWon:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColorTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorDim:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWin:         lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
	core.ColorWarn:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

// Footer styles.
var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardArea returns the part of the screen the board is centered in.
// The bottom two rows are left for the banner.
func boardArea(s *core.Screen) core.Rect {
	return core.NewRect(0, hudRows, s.Width(), core.Max(s.Height()-hudRows-2, 0))
}

// drawGame draws the HUD, the board and the banner for a snapshot.
func drawGame(s *core.Screen, snap tileflip.Snapshot) {
	s.DrawTextCentered(0, "TileFlip "+tileflip.Version, core.ColorTitle)

	info := fmt.Sprintf("%dx%d  seed %d", snap.Size, snap.Size, snap.Seed)
	if snap.Active >= 0 {
		info += fmt.Sprintf("  * %s", snap.Bookmarks[snap.Active].Name)
	}
	s.DrawTextCentered(1, info, core.ColorDim)

	timer := fmt.Sprintf("Time %s   Best %s",
		tileflip.FormatTime(snap.Elapsed), tileflip.FormatBest(snap.Best, snap.HasBest))
	s.DrawTextCentered(2, timer, core.ColorDefault)

	area := boardArea(s)
	layout := core.LayoutBoard(area, snap.Size)
	if !layout.Fits() {
		drawTooSmall(s, area, snap.Size)
		return
	}
	drawBoard(s, layout, snap)

	banner := s.Height() - 1
	switch snap.State {
	case tileflip.StateWon:
		s.DrawTextCentered(banner, "Solved! r retries this seed, space starts a new one", core.ColorWin)
	case tileflip.StateIdle:
		s.DrawTextCentered(banner, "Moving onto a tile flips it. Make every tile the same color.", core.ColorDim)
	}
}

// drawBoard draws the framed grid with the cursor.
func drawBoard(s *core.Screen, layout core.BoardLayout, snap tileflip.Snapshot) {
	frame := core.ColorFrame
	if snap.State == tileflip.StateWon {
		frame = core.ColorFrameWon
	}
	s.DrawBox(layout.Frame, frame)

	for y := 0; y < snap.Size; y++ {
		for x := 0; x < snap.Size; x++ {
			dark := snap.Cell(x, y)
			cursor := x == snap.CursorX && y == snap.CursorY
			color := core.TileColor(dark, cursor)

			px, py := layout.Tile(x, y)
			for i, r := range tileGlyphs(dark, cursor, layout.TileW) {
				s.SetColored(px+i, py, r, color)
			}
		}
	}
}

// tileGlyphs returns the runes for one tile.
func tileGlyphs(dark, cursor bool, width int) []rune {
	if width >= core.WideTile {
		switch {
		case cursor:
			return []rune("[]")
		case dark:
			return []rune("██")
		default:
			return []rune("░░")
		}
	}
	switch {
	case cursor && dark:
		return []rune("◆")
	case cursor:
		return []rune("◇")
	case dark:
		return []rune("█")
	default:
		return []rune("░")
	}
}

// drawTooSmall explains that the board does not fit.
func drawTooSmall(s *core.Screen, area core.Rect, size int) {
	_, cy := area.Center()
	w, h := core.MinBoardSize(size)
	s.DrawTextCentered(cy-1, fmt.Sprintf("Terminal too small for a %dx%d board", size, size), core.ColorWarn)
	s.DrawTextCentered(cy, fmt.Sprintf("needs %d columns and %d rows", w, h+hudRows+2+footerRows), core.ColorDim)
	s.DrawTextCentered(cy+1, "press [ for a smaller grid", core.ColorDim)
}
