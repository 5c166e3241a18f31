package tui

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tileflip/internal/config"
	"github.com/vovakirdan/tileflip/internal/tileflip"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// brokenBackend loads fine but rejects every write.
type brokenBackend struct {
	*tileflip.MemoryBackend
}

func (brokenBackend) Set(string, string) error { return errors.New("disk full") }

func (brokenBackend) Remove(string) error { return errors.New("disk full") }

func newTestModel(t *testing.T, size int, seed int32, backend tileflip.Backend) (Model, *fakeClock) {
	t.Helper()
	if backend == nil {
		backend = tileflip.NewMemoryBackend()
	}
	records, err := tileflip.NewRecordStore(backend)
	if err != nil {
		t.Fatalf("NewRecordStore() failed: %v", err)
	}
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m, err := NewModel(Options{
		Config:  config.Default(),
		Records: records,
		Size:    size,
		Seed:    seed,
		HasSeed: true,
		Width:   80,
		Height:  30,
		Clock:   clock,
		Rand:    rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, clock
}

// press feeds messages to the model and returns it with the last command.
func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m, cmd
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runeKey(r))
	}
	return msgs
}

var enterKey = tea.KeyMsg{Type: tea.KeyEnter}

func TestNewModelRejectsSizeOutsideConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Game.MaxSize = 20

	_, err := NewModel(Options{Config: cfg, Size: 30, HasSeed: true, Seed: 1})
	if !errors.Is(err, tileflip.ErrInvalidSize) {
		t.Errorf("NewModel() error = %v, want ErrInvalidSize", err)
	}
}

func TestNewModelDrawsRandomSeed(t *testing.T) {
	m, err := NewModel(Options{Config: config.Default(), Rand: rand.New(rand.NewSource(7))})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	s := m.Session()
	if s.Size() != 5 {
		t.Errorf("Size() = %d, want default 5", s.Size())
	}
	if s.Seed() < 1 || s.Seed() >= 1_000_000 {
		t.Errorf("Seed() = %d, want in [1, 1000000)", s.Seed())
	}
}

func TestModelFirstMoveStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, 3, 12345, nil)

	m, cmd := press(t, m, runeKey('w'))
	if x, y := m.Session().Cursor(); x != 1 || y != 0 {
		t.Errorf("cursor = (%d, %d), want (1, 0)", x, y)
	}
	if m.Session().State() != tileflip.StateRunning {
		t.Errorf("state = %v, want running", m.Session().State())
	}
	if cmd == nil {
		t.Fatal("first move should start the tick chain")
	}

	// A second move does not start another chain.
	_, cmd = press(t, m, runeKey('d'))
	if cmd != nil {
		t.Error("later moves should not start another tick chain")
	}
}

func TestModelRejectedMoveChangesNothing(t *testing.T) {
	m, _ := newTestModel(t, 3, 12345, nil)
	before := m.Session().Cells()

	m, _ = press(t, m, runeKey('w'), runeKey('w'))
	if x, y := m.Session().Cursor(); x != 1 || y != 0 {
		t.Errorf("cursor = (%d, %d), want (1, 0)", x, y)
	}
	after := m.Session().Cells()
	changed := 0
	for i := range before {
		if before[i] != after[i] {
			changed++
		}
	}
	if changed != 1 {
		t.Errorf("%d cells changed, want 1 (the rejected move must not flip)", changed)
	}
}

func TestModelTickChain(t *testing.T) {
	m, clock := newTestModel(t, 3, 186, nil)

	m, _ = press(t, m, runeKey('w'))
	gen := m.tickGen

	_, cmd := press(t, m, TickMsg{Gen: gen})
	if cmd == nil {
		t.Error("live chain should schedule the next tick")
	}
	_, cmd = press(t, m, TickMsg{Gen: gen - 1})
	if cmd != nil {
		t.Error("stale chain should stop")
	}

	// Winning stops the chain.
	clock.Advance(time.Second)
	won, _ := press(t, m, runeKey('s'))
	if !won.Session().Won() {
		t.Fatal("expected up then down to solve seed 186")
	}
	_, cmd = press(t, won, TickMsg{Gen: won.tickGen})
	if cmd != nil {
		t.Error("tick after a win should stop the chain")
	}

	// Retry supersedes the running chain.
	m, _ = press(t, m, runeKey('r'))
	_, cmd = press(t, m, TickMsg{Gen: gen})
	if cmd != nil {
		t.Error("tick from before the retry should stop")
	}
}

func TestModelWinRecordsBestTime(t *testing.T) {
	m, clock := newTestModel(t, 3, 186, nil)

	m, _ = press(t, m, runeKey('w'))
	clock.Advance(1234 * time.Millisecond)
	m, _ = press(t, m, runeKey('s'))

	if !m.Session().Won() {
		t.Fatal("expected the session to be won")
	}
	best, ok := m.Session().BestTime()
	if !ok || best != 1234*time.Millisecond {
		t.Errorf("BestTime() = %v, %v, want 1.234s", best, ok)
	}
	status, warn := m.Status()
	if warn || !strings.Contains(status, "00:01.23") || !strings.Contains(status, "New best") {
		t.Errorf("status = %q (warn %v)", status, warn)
	}

	// Moves after the win are ignored.
	m, _ = press(t, m, runeKey('w'))
	if x, y := m.Session().Cursor(); x != 1 || y != 1 {
		t.Errorf("cursor moved after win to (%d, %d)", x, y)
	}
}

func TestModelWinNotRecordedWarns(t *testing.T) {
	m, _ := newTestModel(t, 3, 39, brokenBackend{tileflip.NewMemoryBackend()})

	m, _ = press(t, m, runeKey('w'))
	if !m.Session().Won() {
		t.Fatal("expected seed 39 to be solved by one move up")
	}
	status, warn := m.Status()
	if !warn || !strings.Contains(status, "not recorded") {
		t.Errorf("status = %q (warn %v), want a not-recorded warning", status, warn)
	}
	if _, ok := m.Session().BestTime(); ok {
		t.Error("failed write should not leave a best time behind")
	}
}

func TestModelRetryRegeneratesSeed(t *testing.T) {
	m, _ := newTestModel(t, 3, 12345, nil)
	want, _ := tileflip.NewGrid(3, 12345)

	m, _ = press(t, m, runeKey('w'), runeKey('a'), runeKey('r'))

	s := m.Session()
	if s.State() != tileflip.StateIdle || s.Elapsed() != 0 {
		t.Errorf("after retry state = %v elapsed = %v", s.State(), s.Elapsed())
	}
	if x, y := s.Cursor(); x != 1 || y != 1 {
		t.Errorf("cursor = (%d, %d), want centered", x, y)
	}
	got := s.Cells()
	for i, c := range want.Cells() {
		if got[i] != c {
			t.Fatalf("cell %d differs after retry", i)
		}
	}
}

func TestModelNewPuzzle(t *testing.T) {
	m, _ := newTestModel(t, 4, 12345, nil)

	m, _ = press(t, m, runeKey('w'), runeKey(' '))
	s := m.Session()
	if s.Size() != 4 {
		t.Errorf("Size() = %d, want 4", s.Size())
	}
	if s.Seed() < 1 || s.Seed() >= 1_000_000 {
		t.Errorf("Seed() = %d out of range", s.Seed())
	}
	if s.State() != tileflip.StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
}

func TestModelSizePresets(t *testing.T) {
	m, _ := newTestModel(t, 5, 1, nil)

	m, _ = press(t, m, runeKey(']'))
	if got := m.Session().Size(); got != 6 {
		t.Errorf("after ] size = %d, want 6", got)
	}
	m, _ = press(t, m, runeKey('['), runeKey('['))
	if got := m.Session().Size(); got != 4 {
		t.Errorf("after [[ size = %d, want 4", got)
	}
}

func TestModelCustomSize(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		wantSize int
		wantWarn bool
	}{
		{"valid", append(typeText("7"), enterKey), 7, false},
		{"not a number", append(typeText("abc"), enterKey), 5, true},
		{"too small", append(typeText("1"), enterKey), 5, true},
		{"too large", append(typeText("101"), enterKey), 5, true},
		{"large confirmed", append(typeText("90"), enterKey, runeKey('y')), 90, false},
		{"large declined", append(typeText("90"), enterKey, runeKey('n')), 5, false},
		{"cancelled", append(typeText("7"), tea.KeyMsg{Type: tea.KeyEsc}), 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t, 5, 1, nil)
			m, _ = press(t, m, runeKey('+'))
			if m.mode != modeSizeInput {
				t.Fatalf("mode = %v, want size prompt", m.mode)
			}
			m, _ = press(t, m, tc.keys...)

			if m.mode != modePlay {
				t.Errorf("mode = %v, want play", m.mode)
			}
			if got := m.Session().Size(); got != tc.wantSize {
				t.Errorf("size = %d, want %d", got, tc.wantSize)
			}
			if _, warn := m.Status(); warn != tc.wantWarn {
				t.Errorf("warn = %v, want %v", warn, tc.wantWarn)
			}
		})
	}
}

func TestModelBookmarkFlow(t *testing.T) {
	m, _ := newTestModel(t, 5, 777, nil)

	m, _ = press(t, m, runeKey('n'))
	m, _ = press(t, m, typeText("fast")...)
	m, _ = press(t, m, enterKey)

	marks := m.Session().Bookmarks()
	if len(marks) != 1 || marks[0] != (tileflip.Bookmark{Name: "fast", Seed: 777}) {
		t.Fatalf("Bookmarks() = %+v", marks)
	}

	// Move to another puzzle, then load the bookmark back.
	m, _ = press(t, m, runeKey(' '))
	m, _ = press(t, m, runeKey('b'))
	if m.mode != modeBookmarks {
		t.Fatalf("mode = %v, want bookmark picker", m.mode)
	}
	if !strings.Contains(m.View(), "fast") {
		t.Error("picker view should list the bookmark")
	}
	m, _ = press(t, m, enterKey)

	if m.mode != modePlay {
		t.Errorf("mode = %v, want play", m.mode)
	}
	if got := m.Session().Seed(); got != 777 {
		t.Errorf("Seed() = %d, want 777", got)
	}
}

func TestModelEmptyBookmarkName(t *testing.T) {
	m, _ := newTestModel(t, 5, 777, nil)

	m, _ = press(t, m, runeKey('n'), enterKey)
	if len(m.Session().Bookmarks()) != 0 {
		t.Error("empty name should not be saved")
	}
	if _, warn := m.Status(); !warn {
		t.Error("empty name should warn")
	}
}

func TestModelPickerWithoutBookmarks(t *testing.T) {
	m, _ := newTestModel(t, 5, 777, nil)

	m, _ = press(t, m, runeKey('b'))
	if m.mode != modePlay {
		t.Errorf("mode = %v, picker should not open without bookmarks", m.mode)
	}
}

func TestModelClearRecords(t *testing.T) {
	for _, answer := range []rune{'y', 'n'} {
		t.Run(string(answer), func(t *testing.T) {
			m, _ := newTestModel(t, 5, 777, nil)
			records := m.Session().Records()
			if err := records.AddBookmark(5, "keep", 1); err != nil {
				t.Fatal(err)
			}

			m, _ = press(t, m, runeKey('`'))
			if m.mode != modeConfirmClear {
				t.Fatalf("mode = %v, want clear confirmation", m.mode)
			}
			m, _ = press(t, m, runeKey(answer))

			cleared := len(records.Bookmarks(5)) == 0
			if cleared != (answer == 'y') {
				t.Errorf("answer %q: cleared = %v", answer, cleared)
			}
			if m.mode != modePlay {
				t.Errorf("mode = %v, want play", m.mode)
			}
		})
	}
}

func TestModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t, 3, 1, nil)
		m, cmd := press(t, m, msg)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", msg)
		}
		if m.View() != "" {
			t.Errorf("%s: view should be empty after quitting", msg)
		}
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, 3, 12345, nil)

	view := m.View()
	for _, want := range []string{"TileFlip " + tileflip.Version, "3x3  seed 12345", "Best --:--:--"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 10, Height: 8})
	if !strings.Contains(m.View(), "small") {
		t.Error("tiny terminal should show the too-small message")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t, 3, 1, nil)
	m, _ = press(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	m, _ = press(t, m, runeKey('?'))
	if m.help.ShowAll {
		t.Error("? should collapse help")
	}
}
