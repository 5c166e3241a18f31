package tileflip

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Persisted keys. The names and JSON layout match the browser version of
// the game so exported records can be imported unchanged.
const (
	BestTimesKey = "tileFlipBestTimes"
	BookmarksKey = "tileFlipBookmarks"
)

// Bookmark is a named seed for a grid size.
type Bookmark struct {
	Name string `json:"name"`
	Seed int32  `json:"value"`
}

// UnmarshalJSON accepts the seed either as a number or as a numeric string.
// Older records stored whatever the player typed into the seed field.
func (b *Bookmark) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.Name = raw.Name
	if len(raw.Value) == 0 {
		return fmt.Errorf("bookmark %q: missing seed", raw.Name)
	}

	var text string
	if raw.Value[0] == '"' {
		if err := json.Unmarshal(raw.Value, &text); err != nil {
			return err
		}
	} else {
		text = string(raw.Value)
	}

	seed, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return fmt.Errorf("bookmark %q: invalid seed %s: %w", raw.Name, raw.Value, err)
	}
	b.Seed = int32(seed)
	return nil
}

// RecordStore holds best times and seed bookmarks keyed by grid size.
// It is loaded once from a Backend and written back synchronously after
// every mutation. All methods are safe for concurrent use.
type RecordStore struct {
	mu        sync.Mutex
	backend   Backend
	best      map[int]int64 // milliseconds
	bookmarks map[int][]Bookmark
}

// NewRecordStore loads records from the backend.
func NewRecordStore(backend Backend) (*RecordStore, error) {
	s := &RecordStore{
		backend:   backend,
		best:      make(map[int]int64),
		bookmarks: make(map[int][]Bookmark),
	}

	var best map[string]int64
	if err := s.load(BestTimesKey, &best); err != nil {
		return nil, err
	}
	for k, v := range best {
		size, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: best times: invalid size key %q", ErrStorageUnavailable, k)
		}
		s.best[size] = v
	}

	var marks map[string][]Bookmark
	if err := s.load(BookmarksKey, &marks); err != nil {
		return nil, err
	}
	for k, v := range marks {
		size, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: bookmarks: invalid size key %q", ErrStorageUnavailable, k)
		}
		s.bookmarks[size] = v
	}

	return s, nil
}

func (s *RecordStore) load(key string, dst any) error {
	raw, ok, err := s.backend.Get(key)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, key, err)
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

// BestTime returns the best time recorded for a grid size.
func (s *RecordStore) BestTime(size int) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms, ok := s.best[size]
	if !ok {
		return 0, false
	}
	return time.Duration(ms) * time.Millisecond, true
}

// ReportTime records elapsed as the best time for size if there is no
// record yet or elapsed is strictly lower. Ties keep the existing record.
// Returns true if the record was updated.
func (s *RecordStore) ReportTime(size int, elapsed time.Duration) (bool, error) {
	ms := elapsed.Milliseconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.best[size]
	if had && ms >= prev {
		return false, nil
	}

	s.best[size] = ms
	if err := s.saveBest(); err != nil {
		if had {
			s.best[size] = prev
		} else {
			delete(s.best, size)
		}
		return false, err
	}
	return true, nil
}

// AddBookmark appends a bookmark for size. Names and seeds are not deduplicated.
func (s *RecordStore) AddBookmark(size int, name string, seed int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.bookmarks[size]
	next := make([]Bookmark, len(prev), len(prev)+1)
	copy(next, prev)
	s.bookmarks[size] = append(next, Bookmark{Name: name, Seed: seed})

	if err := s.saveBookmarks(); err != nil {
		if had {
			s.bookmarks[size] = prev
		} else {
			delete(s.bookmarks, size)
		}
		return err
	}
	return nil
}

// Bookmarks returns a copy of the bookmarks for size in insertion order.
func (s *RecordStore) Bookmarks(size int) []Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()

	marks := s.bookmarks[size]
	out := make([]Bookmark, len(marks))
	copy(out, marks)
	return out
}

// Sizes returns every grid size that has a best time or a bookmark, ascending.
func (s *RecordStore) Sizes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]bool)
	for size := range s.best {
		seen[size] = true
	}
	for size, marks := range s.bookmarks {
		if len(marks) > 0 {
			seen[size] = true
		}
	}

	sizes := make([]int, 0, len(seen))
	for size := range seen {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Clear erases best times and bookmarks for every size.
// On failure the in-memory records are left untouched, and best times
// already removed from the backend are written back.
func (s *RecordStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Remove(BestTimesKey); err != nil {
		return fmt.Errorf("%w: remove %s: %v", ErrStorageUnavailable, BestTimesKey, err)
	}

	if err := s.backend.Remove(BookmarksKey); err != nil {
		err = fmt.Errorf("%w: remove %s: %v", ErrStorageUnavailable, BookmarksKey, err)
		if len(s.best) > 0 {
			if restoreErr := s.saveBest(); restoreErr != nil {
				return errors.Join(err, restoreErr)
			}
		}
		return err
	}

	s.best = make(map[int]int64)
	s.bookmarks = make(map[int][]Bookmark)
	return nil
}

func (s *RecordStore) saveBest() error {
	out := make(map[string]int64, len(s.best))
	for size, ms := range s.best {
		out[strconv.Itoa(size)] = ms
	}
	return s.save(BestTimesKey, out)
}

func (s *RecordStore) saveBookmarks() error {
	out := make(map[string][]Bookmark, len(s.bookmarks))
	for size, marks := range s.bookmarks {
		out[strconv.Itoa(size)] = marks
	}
	return s.save(BookmarksKey, out)
}

func (s *RecordStore) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("tileflip: encode %s: %w", key, err)
	}
	if err := s.backend.Set(key, string(data)); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, key, err)
	}
	return nil
}

// ActiveBookmark returns the index of the first bookmark with the given
// seed, or -1 if none matches.
func ActiveBookmark(marks []Bookmark, seed int32) int {
	for i, b := range marks {
		if b.Seed == seed {
			return i
		}
	}
	return -1
}
