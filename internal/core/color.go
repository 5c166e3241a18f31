package core

// Color represents the style class of a screen cell.
// The platform layer maps each class to a terminal style.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorTileLight
	ColorTileDark
	ColorCursorLight // cursor over a light tile
	ColorCursorDark  // cursor over a dark tile
	ColorFrame
	ColorFrameWon
	ColorTitle
	ColorDim
	ColorWin
	ColorWarn
)

// TileColor returns the color for a tile, taking the cursor into account.
func TileColor(dark, cursor bool) Color {
	switch {
	case cursor && dark:
		return ColorCursorDark
	case cursor:
		return ColorCursorLight
	case dark:
		return ColorTileDark
	default:
		return ColorTileLight
	}
}
