package tileflip

import "time"

// Snapshot is a read-only copy of everything a host needs to draw a frame.
type Snapshot struct {
	Size      int
	Seed      int32
	Cells     []bool // row-major
	CursorX   int
	CursorY   int
	State     State
	Elapsed   time.Duration
	Best      time.Duration
	HasBest   bool
	Bookmarks []Bookmark
	Active    int // index of the bookmark matching Seed, -1 if none
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	x, y := s.cursor.Position()
	best, hasBest := s.BestTime()
	marks := s.Bookmarks()

	return Snapshot{
		Size:      s.grid.Size(),
		Seed:      s.grid.Seed(),
		Cells:     s.grid.Cells(),
		CursorX:   x,
		CursorY:   y,
		State:     s.state,
		Elapsed:   s.Elapsed(),
		Best:      best,
		HasBest:   hasBest,
		Bookmarks: marks,
		Active:    ActiveBookmark(marks, s.grid.Seed()),
	}
}

// Cell returns the color at (x, y); out-of-range coordinates report false.
func (s Snapshot) Cell(x, y int) bool {
	if x < 0 || x >= s.Size || y < 0 || y >= s.Size {
		return false
	}
	return s.Cells[y*s.Size+x]
}
