package main

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/buffer/search"
	"github.com/joshuapare/bendkit/pkg/bend"
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	SearchHexMode
	SearchASCIIMode
	ReplaceMode
	ReplaceAllMode
	GotoMode
	SavePointNameMode
	SavePointRenameMode
	BookmarkNameMode
	BookmarkRenameMode
	BookmarkNoteMode
	ExportPathMode
)

// Panel identifies which side panel is open
type Panel int

const (
	PanelNone Panel = iota
	PanelSavePoints
	PanelBookmarks
)

// Rows of screen chrome around the grid: header (2), column header (1),
// blank line (1), status bar (2).
const chromeRows = 6

// Model is the main application model
type Model struct {
	path string
	buf  *buffer.Buffer
	cfg  Config
	keys KeyMap

	width  int
	height int

	// First visible grid row
	scrollRow int

	// When editing, keystrokes write bytes; otherwise they run commands
	editing bool

	// Input prompt state
	inputMode   InputMode
	inputBuffer string

	// Search state (host owns the session, engine executes it)
	search *search.Session

	// Panels
	panel       Panel
	panelCursor int
	renameID    int // save point / bookmark id a prompt applies to; -1 when none

	// Overlays
	showHelp    bool
	helpView    viewport.Model
	confirmQuit bool

	// Write-out tracking. savedGen is the buffer generation at the last
	// successful save; the on-disk stat pair detects outside writers.
	savedGen         uint64
	diskMod          time.Time
	diskSize         int64
	confirmOverwrite bool

	// Status message for temporary feedback
	statusMessage string

	err error
}

// NewModel creates a new TUI model over an in-memory copy of data.
func NewModel(path string, data []byte, cfg Config) Model {
	m := Model{
		path:     path,
		buf:      bend.OpenWithOptions(data, cfg.bufferOptions()),
		cfg:      cfg,
		keys:     DefaultKeyMap(),
		search:   &search.Session{},
		renameID: -1,
		helpView: viewport.New(0, 0),
	}

	// Remember what the file on disk looked like so a later save can
	// notice an outside writer.
	if fi, err := os.Stat(path); err == nil {
		m.diskMod = fi.ModTime()
		m.diskSize = fi.Size()
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Messages

type clearStatusMsg struct{}

// clearStatusSoon schedules removal of the transient status line.
func clearStatusSoon() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// dirty reports whether the buffer has changed since the last save.
func (m Model) dirty() bool {
	return m.buf.Generation() != m.savedGen
}

// bytesPerRow is the grid width in bytes.
func (m Model) bytesPerRow() int {
	if m.cfg.BytesPerRow < 1 {
		return 16
	}
	return m.cfg.BytesPerRow
}

// visibleRows is how many grid rows fit between header and status bar.
func (m Model) visibleRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		return 1
	}
	return rows
}

// totalRows is the number of grid rows the whole buffer occupies.
func (m Model) totalRows() int {
	bpr := m.bytesPerRow()
	rows := (m.buf.Len() + bpr - 1) / bpr
	if rows < 1 {
		return 1
	}
	return rows
}

// cursorRow is the grid row the cursor sits on.
func (m Model) cursorRow() int {
	return m.buf.Cursor() / m.bytesPerRow()
}

// ensureCursorVisible scrolls the grid so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	row := m.cursorRow()
	vis := m.visibleRows()

	if row < m.scrollRow {
		m.scrollRow = row
	}
	if row >= m.scrollRow+vis {
		m.scrollRow = row - vis + 1
	}

	maxScroll := m.totalRows() - vis
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollRow > maxScroll {
		m.scrollRow = maxScroll
	}
	if m.scrollRow < 0 {
		m.scrollRow = 0
	}
}

// moveCursor shifts the cursor by delta bytes, dropping any selection.
func (m *Model) moveCursor(delta int) {
	m.buf.ClearSelection()
	m.buf.MoveCursor(delta)
	m.ensureCursorVisible()
}

// selectMove grows the selection by delta bytes and follows with the
// cursor.
func (m *Model) selectMove(delta int) {
	m.buf.ExtendSelectionTo(m.buf.Cursor() + delta)
	m.ensureCursorVisible()
}

// jumpTo places the cursor at offset, dropping any selection.
func (m *Model) jumpTo(offset int) {
	m.buf.ClearSelection()
	m.buf.SetCursor(offset)
	m.ensureCursorVisible()
}

// helpViewWidth is the help overlay's inner text width.
const helpViewWidth = 56

// openHelp fills the help viewport and shows the overlay.
func (m *Model) openHelp() {
	m.helpView.SetContent(helpContent())
	m.sizeHelpView()
	m.helpView.GotoTop()
	m.showHelp = true
}

// sizeHelpView fits the help viewport to the window, leaving room for
// the modal border, its padding, and the pinned close hint.
func (m *Model) sizeHelpView() {
	m.helpView.Width = helpViewWidth
	h := m.height - 6
	if total := m.helpView.TotalLineCount(); h > total {
		h = total
	}
	if h < 3 {
		h = 3
	}
	m.helpView.Height = h
}

// Buffer exposes the engine buffer (for testing).
func (m *Model) Buffer() *buffer.Buffer {
	return m.buf
}
