package tileflip

// MoveResult is the outcome of a cursor move request.
type MoveResult int

const (
	Rejected MoveResult = iota
	Moved
)

// String returns a human-readable name for the result.
func (r MoveResult) String() string {
	if r == Moved {
		return "moved"
	}
	return "rejected"
}

// Cursor tracks a single position inside a size×size grid.
// Out-of-bounds moves are rejected silently; the position is never clamped.
type Cursor struct {
	x, y int
	size int
}

// NewCursor creates a cursor centered on a grid of the given size.
func NewCursor(size int) Cursor {
	var c Cursor
	c.Recenter(size)
	return c
}

// Recenter resets the cursor to (size/2, size/2) and adopts the new bounds.
func (c *Cursor) Recenter(size int) {
	c.size = size
	c.x = size / 2
	c.y = size / 2
}

// Position returns the current (x, y).
func (c Cursor) Position() (int, int) {
	return c.x, c.y
}

// InBounds returns true if (x, y) is inside the cursor's grid.
func (c Cursor) InBounds(x, y int) bool {
	return x >= 0 && x < c.size && y >= 0 && y < c.size
}

// Move shifts the cursor by (dx, dy) if the destination is in bounds.
func (c *Cursor) Move(dx, dy int) MoveResult {
	nx, ny := c.x+dx, c.y+dy
	if !c.InBounds(nx, ny) {
		return Rejected
	}
	c.x, c.y = nx, ny
	return Moved
}
