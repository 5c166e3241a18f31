package tui

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tileflip/internal/config"
	"github.com/vovakirdan/tileflip/internal/core"
	"github.com/vovakirdan/tileflip/internal/tileflip"
)

// Rows below the screen buffer: status line and short help.
const footerRows = 2

// Fallback terminal size until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// mode is what the keyboard currently drives.
type mode int

const (
	modePlay mode = iota
	modeConfirmClear
	modeSizeInput
	modeConfirmLarge
	modeBookmarkName
	modeBookmarks
)

// Options configures a new Model.
type Options struct {
	Config  config.Config
	Records *tileflip.RecordStore // nil disables best times and bookmarks
	Size    int                   // 0 means Config.Game.DefaultSize
	Seed    int32
	HasSeed bool // false draws a random seed
	Width   int
	Height  int
	Clock   tileflip.Clock // nil means the system clock
	Rand    *rand.Rand     // seed source; nil seeds from the time
	Logger  *log.Logger    // nil discards log output
}

// Model is the Bubble Tea model for one TileFlip player.
type Model struct {
	session *tileflip.Session
	cfg     config.Config
	screen  *core.Screen
	keys    KeyMap
	help    help.Model
	input   textinput.Model
	picker  bookmarkPicker
	rng     *rand.Rand
	logger  *log.Logger

	mode        mode
	pendingSize int  // size waiting for the large-grid confirmation
	tickGen     int  // generation of the live stopwatch tick chain
	status      string
	statusWarn  bool
	width       int
	height      int
	quitting    bool
}

// NewModel creates a model and generates the first puzzle.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	game := cfg.Game

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	size := opts.Size
	if size == 0 {
		size = game.DefaultSize
	}
	if !game.Allows(size) {
		return Model{}, fmt.Errorf("%w: %d (must be between %d and %d)",
			tileflip.ErrInvalidSize, size, game.MinSize, game.MaxSize)
	}

	seed := opts.Seed
	if !opts.HasSeed {
		seed = tileflip.RandomSeed(rng, game.SeedMax)
	}

	session, err := tileflip.NewSession(tileflip.SessionConfig{
		Size:    size,
		Seed:    seed,
		MaxSize: game.MaxSize,
		Clock:   opts.Clock,
		Records: opts.Records,
	})
	if err != nil {
		return Model{}, err
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	input := textinput.New()
	input.CharLimit = 40
	input.Width = 32

	h := help.New()
	h.Width = width

	logger.Debug("session created", "size", size, "seed", seed)

	return Model{
		session: session,
		cfg:     cfg,
		screen:  core.NewScreen(width, height-footerRows),
		keys:    DefaultKeyMap(),
		help:    h,
		input:   input,
		rng:     rng,
		logger:  logger,
		width:   width,
		height:  height,
	}, nil
}

// Init sets the window title. The stopwatch starts with the first move.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("TileFlip")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.mode == modeBookmarks {
			m.picker.Resize(msg.Height)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	// Cursor blink and similar messages for the prompt
	if m.mode == modeSizeInput || m.mode == modeBookmarkName {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick keeps the stopwatch redrawing while the game runs.
// A tick from a superseded chain, or arriving after the game stopped, ends
// its chain, so at most one chain is ever live.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.session.State() != tileflip.StateRunning {
		return m, nil
	}
	return m, tickCmd(m.cfg.Timer.Refresh(), m.tickGen)
}

// handleKey routes keys by mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.mode {
	case modeConfirmClear, modeConfirmLarge:
		return m.handleConfirm(msg)
	case modeSizeInput, modeBookmarkName:
		return m.handlePrompt(msg)
	case modeBookmarks:
		return m.handlePicker(msg)
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNewPuzzle:
		m.restart(m.newSeed())

	case core.ActionRetry:
		m.restart(m.session.Seed())

	case core.ActionPrevSize:
		m.resize(m.cfg.Game.NextPreset(m.session.Size(), -1))

	case core.ActionNextSize:
		m.resize(m.cfg.Game.NextPreset(m.session.Size(), 1))

	case core.ActionCustomSize:
		g := m.cfg.Game
		return m, m.openPrompt(modeSizeInput, fmt.Sprintf("%d-%d", g.MinSize, g.MaxSize))

	case core.ActionAddBookmark:
		if m.session.Records() == nil {
			m.warn("Records are disabled")
			return m, nil
		}
		return m, m.openPrompt(modeBookmarkName, "name")

	case core.ActionBookmarks:
		m.openPicker()

	case core.ActionClearRecords:
		if m.session.Records() == nil {
			m.warn("Records are disabled")
			return m, nil
		}
		m.mode = modeConfirmClear

	default:
		if dx, dy, ok := action.Direction(); ok {
			return m.move(dx, dy)
		}
	}
	return m, nil
}

// move forwards a cursor move to the session and reports a win.
func (m Model) move(dx, dy int) (tea.Model, tea.Cmd) {
	out, err := m.session.Move(dx, dy)

	var cmd tea.Cmd
	if out.Started {
		m.tickGen++
		cmd = tickCmd(m.cfg.Timer.Refresh(), m.tickGen)
		m.status = ""
	}
	if !out.Won {
		return m, cmd
	}

	size := m.session.Size()
	elapsed := m.session.Elapsed()
	m.logger.Info("puzzle solved", "size", size, "seed", m.session.Seed(), "elapsed", elapsed)

	switch {
	case err != nil:
		m.logger.Warn("could not record best time", "size", size, "elapsed", elapsed, "error", err)
		m.warn(fmt.Sprintf("Solved in %s, but the win was not recorded: storage unavailable",
			tileflip.FormatTime(elapsed)))
	case out.NewBest:
		m.info(fmt.Sprintf("Solved in %s. New best time for %dx%d!", tileflip.FormatTime(elapsed), size, size))
	default:
		m.info(fmt.Sprintf("Solved in %s", tileflip.FormatTime(elapsed)))
	}
	return m, cmd
}

// restart regenerates the grid at the current size.
func (m *Model) restart(seed int32) {
	m.session.Reset(seed)
	m.tickGen++
	m.info(fmt.Sprintf("Seed %d", seed))
}

// resize switches to a new size with a fresh seed.
func (m *Model) resize(size int) {
	if !m.cfg.Game.Allows(size) {
		m.warn(fmt.Sprintf("Size must be between %d and %d", m.cfg.Game.MinSize, m.cfg.Game.MaxSize))
		return
	}
	seed := m.newSeed()
	if err := m.session.Resize(size, seed); err != nil {
		m.warn(err.Error())
		return
	}
	m.tickGen++
	m.info(fmt.Sprintf("%dx%d grid, seed %d", size, size, seed))
}

func (m *Model) newSeed() int32 {
	return tileflip.RandomSeed(m.rng, m.cfg.Game.SeedMax)
}

// openPrompt switches to a text prompt.
func (m *Model) openPrompt(md mode, placeholder string) tea.Cmd {
	m.mode = md
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

// handlePrompt edits and submits the text prompt.
func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.closePrompt()
		m.info("Cancelled")
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		md := m.mode
		m.closePrompt()
		if md == modeSizeInput {
			m.submitSize(value)
		} else {
			m.submitBookmark(value)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.mode = modePlay
	m.input.Blur()
}

// submitSize validates a typed size and asks again for large grids.
func (m *Model) submitSize(value string) {
	g := m.cfg.Game
	size, err := strconv.Atoi(value)
	if err != nil {
		m.warn(fmt.Sprintf("%q is not a whole number", value))
		return
	}
	if !g.Allows(size) {
		m.warn(fmt.Sprintf("Size must be between %d and %d", g.MinSize, g.MaxSize))
		return
	}
	if g.IsLarge(size) {
		m.pendingSize = size
		m.mode = modeConfirmLarge
		return
	}
	m.resize(size)
}

// submitBookmark stores the current seed under name.
func (m *Model) submitBookmark(name string) {
	if name == "" {
		m.warn("Bookmark name cannot be empty")
		return
	}
	size, seed := m.session.Size(), m.session.Seed()
	if err := m.session.Records().AddBookmark(size, name, seed); err != nil {
		m.logger.Warn("could not save bookmark", "size", size, "name", name, "seed", seed, "error", err)
		m.warn("Bookmark not saved: storage unavailable")
		return
	}
	m.info(fmt.Sprintf("Bookmarked seed %d as %q", seed, name))
}

// handleConfirm answers a yes/no question.
func (m Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmYes):
		md := m.mode
		m.mode = modePlay
		if md == modeConfirmLarge {
			m.resize(m.pendingSize)
			return m, nil
		}
		if err := m.session.Records().Clear(); err != nil {
			m.logger.Warn("could not clear records", "error", err)
			m.warn("Records not cleared: storage unavailable")
			return m, nil
		}
		m.logger.Info("records cleared")
		m.info("All best times and bookmarks cleared")

	case key.Matches(msg, confirmNo):
		m.mode = modePlay
		m.info("Cancelled")
	}
	return m, nil
}

// openPicker shows the bookmarks for the current size.
func (m *Model) openPicker() {
	snap := m.session.Snapshot()
	if len(snap.Bookmarks) == 0 {
		m.info(fmt.Sprintf("No bookmarks for %dx%d yet, press n to add one", snap.Size, snap.Size))
		return
	}
	m.picker = newBookmarkPicker(snap.Size, snap.Bookmarks, snap.Active, m.width, m.height)
	m.mode = modeBookmarks
}

// handlePicker navigates the bookmark table.
func (m Model) handlePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := DefaultBookmarkKeyMap()
	switch {
	case key.Matches(msg, keys.Close):
		m.mode = modePlay
		return m, nil

	case key.Matches(msg, keys.Load):
		m.mode = modePlay
		b, ok := m.picker.Selected()
		if !ok {
			return m, nil
		}
		m.session.Reset(b.Seed)
		m.tickGen++
		m.info(fmt.Sprintf("Loaded %q, seed %d", b.Name, b.Seed))
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) info(s string) {
	m.status = s
	m.statusWarn = false
}

func (m *Model) warn(s string) {
	m.status = s
	m.statusWarn = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footerView()
	bodyH := core.Max(m.height-lipgloss.Height(footer), 0)

	var body string
	if m.mode == modeBookmarks {
		body = m.picker.View(m.width, bodyH)
	} else {
		m.screen.Resize(m.width, bodyH)
		m.screen.Clear()
		drawGame(m.screen, m.session.Snapshot())
		body = RenderScreen(m.screen)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// footerView renders the status or prompt line and the help bar.
func (m Model) footerView() string {
	var line string
	switch m.mode {
	case modeConfirmClear:
		line = warnStyle.Render("Clear all best times and bookmarks? (y/n)")
	case modeConfirmLarge:
		line = warnStyle.Render(fmt.Sprintf("A %dx%d grid may not fit your terminal. Continue? (y/n)",
			m.pendingSize, m.pendingSize))
	case modeSizeInput:
		line = promptStyle.Render("Grid size: ") + m.input.View()
	case modeBookmarkName:
		line = promptStyle.Render(fmt.Sprintf("Bookmark seed %d as: ", m.session.Seed())) + m.input.View()
	default:
		if m.statusWarn {
			line = warnStyle.Render(m.status)
		} else {
			line = statusStyle.Render(m.status)
		}
	}

	var helpView string
	if m.mode == modeBookmarks {
		helpView = m.help.ShortHelpView(DefaultBookmarkKeyMap().ShortHelp())
	} else {
		helpView = m.help.View(m.keys)
	}
	return line + "\n" + helpStyle.Render(helpView)
}

// Session returns the game session driven by this model.
func (m Model) Session() *tileflip.Session {
	return m.session
}

// Status returns the status line text and whether it is a warning.
func (m Model) Status() (string, bool) {
	return m.status, m.statusWarn
}

// Run starts the Bubble Tea program for local play.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
