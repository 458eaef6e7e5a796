package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/buffer/search"
	"github.com/joshuapare/bendkit/cmd/bendexplorer/logger"
	"github.com/joshuapare/bendkit/internal/bytetext"
	"github.com/joshuapare/bendkit/pkg/bend"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Confirm-quit dialog
		if m.confirmQuit {
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N", "esc":
				m.confirmQuit = false
			}
			return m, nil
		}

		// Confirm-overwrite dialog (file changed on disk under us)
		if m.confirmOverwrite {
			switch msg.String() {
			case "y", "Y":
				m.confirmOverwrite = false
				return m.writeFile()
			case "n", "N", "esc":
				m.confirmOverwrite = false
				m.statusMessage = "Save cancelled"
				return m, clearStatusSoon()
			}
			return m, nil
		}

		// If help is showing, handle help keys
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
				return m, nil
			}
			// Remaining keys scroll the overlay.
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}

		// Handle input prompts (search, goto, names, paths)
		if m.inputMode != NormalMode {
			return m.handleInputMode(msg)
		}

		// Handle open panels
		if m.panel != PanelNone {
			return m.handlePanelKey(msg)
		}

		// Typing mode
		if m.editing {
			return m.handleEditingKey(msg)
		}

		return m.handleNormalKey(msg)

	case tea.MouseMsg:
		if m.showHelp {
			var cmd tea.Cmd
			m.helpView, cmd = m.helpView.Update(msg)
			return m, cmd
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.scrollBy(3)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		if m.showHelp {
			m.sizeHelpView()
		}
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, nil
}

// scrollBy moves the viewport without touching the cursor.
func (m *Model) scrollBy(rows int) {
	m.scrollRow += rows
	maxScroll := m.totalRows() - m.visibleRows()
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

// handleNormalKey runs single-key commands while not editing.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bpr := m.bytesPerRow()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.dirty() {
			m.confirmQuit = true
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.openHelp()
		return m, nil

	// Navigation
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-bpr)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(bpr)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-bpr * m.visibleRows())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(bpr * m.visibleRows())
	case key.Matches(msg, m.keys.RowStart):
		m.jumpTo(m.buf.Cursor() - m.buf.Cursor()%bpr)
	case key.Matches(msg, m.keys.RowEnd):
		m.jumpTo(m.buf.Cursor() - m.buf.Cursor()%bpr + bpr - 1)
	case key.Matches(msg, m.keys.FileStart):
		m.jumpTo(0)
	case key.Matches(msg, m.keys.FileEnd):
		m.jumpTo(m.buf.Len() - 1)

	// Selection
	case key.Matches(msg, m.keys.SelectLeft):
		m.selectMove(-1)
	case key.Matches(msg, m.keys.SelectRight):
		m.selectMove(1)
	case key.Matches(msg, m.keys.SelectUp):
		m.selectMove(-bpr)
	case key.Matches(msg, m.keys.SelectDown):
		m.selectMove(bpr)

	case key.Matches(msg, m.keys.Esc):
		if _, ok := m.buf.Selection(); ok {
			m.buf.ClearSelection()
			return m, nil
		}
		if m.search.Executed() {
			m.search = &search.Session{}
			m.statusMessage = "Search cleared"
			return m, clearStatusSoon()
		}
		return m, nil

	// Editing
	case key.Matches(msg, m.keys.EnterEdit):
		m.editing = true
		return m, nil
	case key.Matches(msg, m.keys.ToggleCol):
		m.toggleEditColumn()
		return m, nil
	case key.Matches(msg, m.keys.ToggleWrite):
		m.buf.ToggleWriteMode()
		m.statusMessage = fmt.Sprintf("Write mode: %s", m.buf.WriteMode())
		return m, clearStatusSoon()
	case key.Matches(msg, m.keys.Backspace):
		m.buf.HandleBackspace()
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Delete):
		m.buf.HandleDelete()
		m.ensureCursorVisible()
	case key.Matches(msg, m.keys.Undo):
		if !m.buf.Undo() {
			m.statusMessage = "Nothing to undo"
			return m, clearStatusSoon()
		}
		m.ensureCursorVisible()
		m.statusMessage = fmt.Sprintf("Undo (%d left)", m.buf.UndoCount())
		return m, clearStatusSoon()
	case key.Matches(msg, m.keys.Redo):
		if !m.buf.Redo() {
			m.statusMessage = "Nothing to redo"
			return m, clearStatusSoon()
		}
		m.ensureCursorVisible()
		m.statusMessage = fmt.Sprintf("Redo (%d left)", m.buf.RedoCount())
		return m, clearStatusSoon()

	// Search
	case key.Matches(msg, m.keys.SearchHex):
		m.inputMode = SearchHexMode
		m.inputBuffer = ""
		return m, nil
	case key.Matches(msg, m.keys.SearchASCII):
		m.inputMode = SearchASCIIMode
		m.inputBuffer = ""
		return m, nil
	case key.Matches(msg, m.keys.NextMatch):
		return m.gotoMatch(true)
	case key.Matches(msg, m.keys.PrevMatch):
		return m.gotoMatch(false)
	case key.Matches(msg, m.keys.Replace):
		if _, ok := m.search.CurrentMatchOffset(); !ok {
			m.statusMessage = "No match to replace"
			return m, clearStatusSoon()
		}
		m.inputMode = ReplaceMode
		m.inputBuffer = ""
		return m, nil
	case key.Matches(msg, m.keys.ReplaceAll):
		if !m.search.HasMatches() {
			m.statusMessage = "No matches to replace"
			return m, clearStatusSoon()
		}
		m.inputMode = ReplaceAllMode
		m.inputBuffer = ""
		return m, nil

	// Commands
	case key.Matches(msg, m.keys.Goto):
		m.inputMode = GotoMode
		m.inputBuffer = ""
		return m, nil
	case key.Matches(msg, m.keys.SavePoints):
		m.panel = PanelSavePoints
		m.panelCursor = 0
		return m, nil
	case key.Matches(msg, m.keys.Bookmark):
		// Toggle: a second press on a bookmarked byte removes the mark.
		if mark, ok := m.buf.Bookmarks().AtOffset(m.buf.Cursor()); ok {
			m.buf.RemoveBookmark(mark.ID)
			m.statusMessage = "Bookmark removed"
			return m, clearStatusSoon()
		}
		m.inputMode = BookmarkNameMode
		m.inputBuffer = ""
		return m, nil
	case key.Matches(msg, m.keys.Bookmarks):
		m.panel = PanelBookmarks
		m.panelCursor = 0
		return m, nil

	// Clipboard
	case key.Matches(msg, m.keys.Copy):
		return m.copySelection()
	case key.Matches(msg, m.keys.Cut):
		return m.cutSelection()
	case key.Matches(msg, m.keys.Paste):
		return m.pasteClipboard()

	// Saving
	case key.Matches(msg, m.keys.Save):
		return m.trySave()
	case key.Matches(msg, m.keys.SaveAs):
		m.inputMode = ExportPathMode
		m.inputBuffer = ""
		return m, nil
	}

	return m, nil
}

// handleEditingKey routes keystrokes into the buffer while editing.
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bpr := m.bytesPerRow()

	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		return m, nil

	case tea.KeyCtrlC:
		if m.dirty() {
			m.confirmQuit = true
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyUp:
		m.moveCursor(-bpr)
	case tea.KeyDown:
		m.moveCursor(bpr)
	case tea.KeyLeft:
		m.moveCursor(-1)
	case tea.KeyRight:
		m.moveCursor(1)
	case tea.KeyPgUp:
		m.moveCursor(-bpr * m.visibleRows())
	case tea.KeyPgDown:
		m.moveCursor(bpr * m.visibleRows())
	case tea.KeyHome:
		m.jumpTo(m.buf.Cursor() - m.buf.Cursor()%bpr)
	case tea.KeyEnd:
		m.jumpTo(m.buf.Cursor() - m.buf.Cursor()%bpr + bpr - 1)

	case tea.KeyTab:
		m.toggleEditColumn()

	case tea.KeyCtrlO:
		m.buf.ToggleWriteMode()
		m.statusMessage = fmt.Sprintf("Write mode: %s", m.buf.WriteMode())
		return m, clearStatusSoon()

	case tea.KeyBackspace:
		m.buf.HandleBackspace()
		m.ensureCursorVisible()

	case tea.KeyDelete:
		m.buf.HandleDelete()
		m.ensureCursorVisible()

	case tea.KeySpace:
		// Space is a printable byte in the ASCII column.
		if m.buf.EditMode() == buffer.EditASCII {
			m.buf.EditASCIIWithMode(' ')
			m.ensureCursorVisible()
		}

	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return m, nil
		}
		m.typeRune(msg.Runes[0])
	}

	return m, nil
}

// typeRune feeds one typed character into the buffer per the edit column.
func (m *Model) typeRune(r rune) {
	switch m.buf.EditMode() {
	case buffer.EditHex:
		if v, ok := hexDigit(r); ok {
			m.buf.EditNibbleWithMode(v)
		}
	case buffer.EditASCII:
		if b, ok := bytetext.EncodeRune(r); ok {
			m.buf.EditASCIIWithMode(b)
		}
	}
	m.ensureCursorVisible()
}

// toggleEditColumn flips which grid column receives keystrokes.
func (m *Model) toggleEditColumn() {
	if m.buf.EditMode() == buffer.EditHex {
		m.buf.SetEditMode(buffer.EditASCII)
	} else {
		m.buf.SetEditMode(buffer.EditHex)
	}
}

// hexDigit maps a keystroke to its nibble value.
func hexDigit(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// gotoMatch advances the search cursor and jumps to the match.
func (m Model) gotoMatch(forward bool) (tea.Model, tea.Cmd) {
	if !m.search.HasMatches() {
		m.statusMessage = "No matches"
		return m, clearStatusSoon()
	}

	var off int
	var ok bool
	if forward {
		off, ok = m.search.NextMatch()
	} else {
		off, ok = m.search.PrevMatch()
	}
	if !ok {
		m.statusMessage = "No matches"
		return m, clearStatusSoon()
	}

	m.jumpTo(off)
	idx, _ := m.search.CurrentMatchIndex()
	note := fmt.Sprintf("Match %d/%d at 0x%X", idx+1, m.search.MatchCount(), off)
	if m.search.MatchesMayBeStale(m.buf.Generation()) {
		note += " (stale)"
	}
	m.statusMessage = note
	return m, clearStatusSoon()
}

// trySave checks for an outside writer before exporting over the file.
func (m Model) trySave() (tea.Model, tea.Cmd) {
	if fi, err := os.Stat(m.path); err == nil {
		if !fi.ModTime().Equal(m.diskMod) || fi.Size() != m.diskSize {
			m.confirmOverwrite = true
			return m, nil
		}
	}
	return m.writeFile()
}

// writeFile exports the working bytes over the opened file.
func (m Model) writeFile() (tea.Model, tea.Cmd) {
	data := m.buf.Working()
	if err := bend.Export(m.path, data, bend.ExportOptions{}); err != nil {
		logger.Error("save failed", "path", m.path, "error", err)
		m.statusMessage = fmt.Sprintf("Save failed: %v", err)
		return m, clearStatusSoon()
	}

	m.savedGen = m.buf.Generation()
	if fi, err := os.Stat(m.path); err == nil {
		m.diskMod = fi.ModTime()
		m.diskSize = fi.Size()
	}

	logger.Info("saved file", "path", m.path, "bytes", len(data))
	m.statusMessage = fmt.Sprintf("Wrote %d bytes to %s", len(data), m.path)
	return m, clearStatusSoon()
}
