package tileflip

import (
	"fmt"
	"time"
)

// State is the lifecycle state of a Session.
type State int

const (
	StateIdle    State = iota // constructed or reset, timer stopped
	StateRunning              // first accepted move started the timer
	StateWon                  // terminal until Reset or Resize
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// SessionConfig configures a new Session.
type SessionConfig struct {
	Size    int
	Seed    int32
	MaxSize int          // configured maximum grid size; 0 means MaxGridSize
	Clock   Clock        // nil means SystemClock
	Records *RecordStore // nil disables best times and bookmarks
}

// MoveOutcome describes what a Move request did.
type MoveOutcome struct {
	Moved   bool // cursor moved and the destination tile flipped
	Started bool // this move started the timer
	Won     bool // this move solved the puzzle
	NewBest bool // the winning time became the best for this size
}

// Session is one play-through: grid, cursor, timer and win state.
// A Session is not safe for concurrent use; hosts drive it from a single
// event loop.
type Session struct {
	grid    *Grid
	cursor  Cursor
	state   State
	maxSize int
	clock   Clock
	records *RecordStore

	started time.Time
	elapsed time.Duration // frozen value once won
}

// NewSession validates the size and generates the grid for the seed.
func NewSession(cfg SessionConfig) (*Session, error) {
	if err := ValidateSize(cfg.Size, cfg.MaxSize); err != nil {
		return nil, err
	}

	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	s := &Session{
		maxSize: cfg.MaxSize,
		clock:   clock,
		records: cfg.Records,
	}
	if err := s.rebuild(cfg.Size, cfg.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) rebuild(size int, seed int32) error {
	grid, err := NewGrid(size, seed)
	if err != nil {
		return err
	}
	s.grid = grid
	s.cursor.Recenter(size)
	s.state = StateIdle
	s.started = time.Time{}
	s.elapsed = 0
	return nil
}

// Move requests a cursor move by (dx, dy). Accepted moves flip the
// destination tile, start the timer on the first move and check for a win.
// Rejected moves and moves after a win change nothing.
//
// The returned error is non-nil only when the session was won but the time
// could not be recorded; it wraps ErrStorageUnavailable.
func (s *Session) Move(dx, dy int) (MoveOutcome, error) {
	var out MoveOutcome
	if s.state == StateWon {
		return out, nil
	}
	if s.cursor.Move(dx, dy) == Rejected {
		return out, nil
	}
	out.Moved = true

	x, y := s.cursor.Position()
	if err := s.grid.Flip(x, y); err != nil {
		panic(fmt.Sprintf("tileflip: cursor escaped grid: %v", err))
	}

	now := s.clock.Now()
	if s.state == StateIdle {
		s.state = StateRunning
		s.started = now
		out.Started = true
	}

	if !s.grid.IsUniform() {
		return out, nil
	}

	s.elapsed = now.Sub(s.started).Truncate(time.Millisecond)
	s.state = StateWon
	out.Won = true

	if s.records == nil {
		return out, nil
	}
	improved, err := s.records.ReportTime(s.grid.Size(), s.elapsed)
	if err != nil {
		return out, fmt.Errorf("tileflip: record %dx%d win: %w", s.grid.Size(), s.grid.Size(), err)
	}
	out.NewBest = improved
	return out, nil
}

// Reset regenerates the grid with seed at the current size and returns the
// session to idle. Valid from any state.
func (s *Session) Reset(seed int32) {
	if err := s.rebuild(s.grid.Size(), seed); err != nil {
		panic(fmt.Sprintf("tileflip: reset with validated size failed: %v", err))
	}
}

// Resize replaces the session with a new grid of the given size and seed.
// On ErrInvalidSize the session is left unchanged.
func (s *Session) Resize(size int, seed int32) error {
	if err := ValidateSize(size, s.maxSize); err != nil {
		return err
	}
	return s.rebuild(size, seed)
}

// Size returns the current grid size.
func (s *Session) Size() int {
	return s.grid.Size()
}

// Seed returns the seed of the current grid.
func (s *Session) Seed() int32 {
	return s.grid.Seed()
}

// MaxSize returns the largest size Resize accepts.
func (s *Session) MaxSize() int {
	if s.maxSize <= 0 || s.maxSize > MaxGridSize {
		return MaxGridSize
	}
	return s.maxSize
}

// Cell returns the color of the cell at (x, y).
func (s *Session) Cell(x, y int) (bool, error) {
	return s.grid.Cell(x, y)
}

// Cells returns a row-major copy of the grid cells.
func (s *Session) Cells() []bool {
	return s.grid.Cells()
}

// Cursor returns the cursor position.
func (s *Session) Cursor() (int, int) {
	return s.cursor.Position()
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Won returns true once the grid has been made uniform.
func (s *Session) Won() bool {
	return s.state == StateWon
}

// Elapsed returns the time since the first accepted move, frozen on win
// and zero while idle.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case StateRunning:
		return s.clock.Now().Sub(s.started)
	case StateWon:
		return s.elapsed
	default:
		return 0
	}
}

// BestTime returns the best time for the current size.
func (s *Session) BestTime() (time.Duration, bool) {
	if s.records == nil {
		return 0, false
	}
	return s.records.BestTime(s.grid.Size())
}

// Bookmarks returns the bookmarks for the current size.
func (s *Session) Bookmarks() []Bookmark {
	if s.records == nil {
		return nil
	}
	return s.records.Bookmarks(s.grid.Size())
}

// Records returns the record store, which may be nil.
func (s *Session) Records() *RecordStore {
	return s.records
}
