package core

// Tile widths in columns. Wide tiles fit a bracket cursor.
const (
	WideTile    = 2
	CompactTile = 1
)

// BoardLayout describes where a grid of tiles is placed on the screen.
type BoardLayout struct {
	Frame Rect // board including its one-character border
	TileW int  // columns per tile; 0 when the board does not fit
}

// Fits returns true if the board can be drawn.
func (l BoardLayout) Fits() bool {
	return l.TileW > 0
}

// Tile returns the screen position of the left column of tile (x, y).
func (l BoardLayout) Tile(x, y int) (int, int) {
	return l.Frame.X + 1 + x*l.TileW, l.Frame.Y + 1 + y
}

// LayoutBoard centers a gridSize x gridSize board inside area, using wide
// tiles when they fit and compact tiles otherwise.
func LayoutBoard(area Rect, gridSize int) BoardLayout {
	for _, tw := range []int{WideTile, CompactTile} {
		w := gridSize*tw + 2
		h := gridSize + 2
		if w > area.W || h > area.H {
			continue
		}
		cx, cy := area.Center()
		return BoardLayout{
			Frame: NewRect(cx-w/2, cy-h/2, w, h),
			TileW: tw,
		}
	}
	return BoardLayout{}
}

// MinBoardSize returns the smallest area (width, height) a board needs.
func MinBoardSize(gridSize int) (int, int) {
	return gridSize*CompactTile + 2, gridSize + 2
}
