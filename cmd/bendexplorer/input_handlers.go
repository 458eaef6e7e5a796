package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/buffer/search"
	"github.com/joshuapare/bendkit/cmd/bendexplorer/logger"
	"github.com/joshuapare/bendkit/pkg/bend"
)

// handleInputMode handles keystrokes while a prompt is open.
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Cancel the prompt
		m.inputMode = NormalMode
		m.inputBuffer = ""
		m.renameID = -1
		return m, nil

	case tea.KeyEnter:
		mode := m.inputMode
		text := m.inputBuffer
		m.inputMode = NormalMode
		m.inputBuffer = ""
		return m.executePrompt(mode, text)

	case tea.KeyBackspace, tea.KeyDelete:
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
		}
		return m, nil

	case tea.KeySpace:
		m.inputBuffer += " "
		return m, nil

	case tea.KeyRunes:
		m.inputBuffer += string(msg.Runes)
		return m, nil
	}

	return m, nil
}

// executePrompt runs the action a completed prompt stands for.
func (m Model) executePrompt(mode InputMode, text string) (tea.Model, tea.Cmd) {
	switch mode {
	case SearchHexMode:
		return m.executeSearch(text, search.ModeHex)
	case SearchASCIIMode:
		return m.executeSearch(text, search.ModeASCII)

	case ReplaceMode:
		if err := m.buf.ReplaceCurrent(m.search, text); err != nil {
			m.statusMessage = fmt.Sprintf("Replace failed: %v", err)
			return m, clearStatusSoon()
		}
		m.ensureCursorVisible()
		m.statusMessage = "Replaced 1 site"
		return m, clearStatusSoon()

	case ReplaceAllMode:
		n, err := m.buf.ReplaceAll(m.search, text)
		if err != nil {
			m.statusMessage = fmt.Sprintf("Replace failed: %v", err)
			return m, clearStatusSoon()
		}
		m.statusMessage = fmt.Sprintf("Replaced %d site(s)", n)
		return m, clearStatusSoon()

	case GotoMode:
		off, err := bend.ParseOffset(text)
		if err != nil {
			m.statusMessage = fmt.Sprintf("Bad offset: %v", err)
			return m, clearStatusSoon()
		}
		m.jumpTo(off)
		m.statusMessage = fmt.Sprintf("Offset 0x%X", m.buf.Cursor())
		return m, clearStatusSoon()

	case SavePointNameMode:
		name := text
		if name == "" {
			name = fmt.Sprintf("save point %d", len(m.buf.SavePoints())+1)
		}
		m.buf.CreateSavePoint(name)
		m.panelCursor = len(m.buf.SavePoints()) - 1
		logger.Info("save point created", "name", name)
		m.statusMessage = fmt.Sprintf("Save point %q created", name)
		return m, clearStatusSoon()

	case SavePointRenameMode:
		id := m.renameID
		m.renameID = -1
		if text == "" || !m.buf.RenameSavePoint(id, text) {
			m.statusMessage = "Rename cancelled"
			return m, clearStatusSoon()
		}
		m.statusMessage = fmt.Sprintf("Renamed to %q", text)
		return m, clearStatusSoon()

	case BookmarkNameMode:
		name := text
		if name == "" {
			name = fmt.Sprintf("mark %d", m.buf.Bookmarks().Count()+1)
		}
		m.buf.AddBookmark(m.buf.Cursor(), name)
		m.statusMessage = fmt.Sprintf("Bookmark %q at 0x%X", name, m.buf.Cursor())
		return m, clearStatusSoon()

	case BookmarkRenameMode:
		id := m.renameID
		m.renameID = -1
		if text == "" || !m.buf.Bookmarks().Rename(id, text) {
			m.statusMessage = "Rename cancelled"
			return m, clearStatusSoon()
		}
		m.statusMessage = fmt.Sprintf("Renamed to %q", text)
		return m, clearStatusSoon()

	case BookmarkNoteMode:
		id := m.renameID
		m.renameID = -1
		if !m.buf.Bookmarks().SetAnnotation(id, text) {
			m.statusMessage = "Annotation failed"
			return m, clearStatusSoon()
		}
		m.statusMessage = "Annotation saved"
		return m, clearStatusSoon()

	case ExportPathMode:
		if text == "" {
			m.statusMessage = "Export cancelled"
			return m, clearStatusSoon()
		}
		data := m.buf.Working()
		if err := bend.Export(text, data, bend.ExportOptions{}); err != nil {
			logger.Error("export failed", "path", text, "error", err)
			m.statusMessage = fmt.Sprintf("Export failed: %v", err)
			return m, clearStatusSoon()
		}
		logger.Info("exported file", "path", text, "bytes", len(data))
		m.statusMessage = fmt.Sprintf("Wrote %d bytes to %s", len(data), text)
		return m, clearStatusSoon()
	}

	return m, nil
}

// executeSearch runs a fresh search session over the working bytes and
// jumps to the first match.
func (m Model) executeSearch(query string, mode search.Mode) (tea.Model, tea.Cmd) {
	if query == "" {
		return m, nil
	}

	m.search = &search.Session{Query: query, Mode: mode}
	if err := m.buf.ExecuteSearch(m.search); err != nil {
		m.statusMessage = fmt.Sprintf("Search failed: %v", err)
		return m, clearStatusSoon()
	}
	if !m.search.HasMatches() {
		m.statusMessage = fmt.Sprintf("No matches for %q", query)
		return m, clearStatusSoon()
	}

	off, _ := m.search.CurrentMatchOffset()
	m.jumpTo(off)
	logger.Debug("search executed", "query", query, "mode", mode.String(), "matches", m.search.MatchCount())
	m.statusMessage = fmt.Sprintf("Match 1/%d at 0x%X", m.search.MatchCount(), off)
	return m, clearStatusSoon()
}

// promptLabel is the prompt text shown in the status bar per input mode.
func (m Model) promptLabel() string {
	switch m.inputMode {
	case SearchHexMode:
		return "Hex search: "
	case SearchASCIIMode:
		return "ASCII search: "
	case ReplaceMode:
		return "Replace match with: "
	case ReplaceAllMode:
		return "Replace all with: "
	case GotoMode:
		return "Go to offset: "
	case SavePointNameMode:
		return "Save point name: "
	case SavePointRenameMode:
		return "New name: "
	case BookmarkNameMode:
		return "Bookmark name: "
	case BookmarkRenameMode:
		return "New name: "
	case BookmarkNoteMode:
		return "Annotation: "
	case ExportPathMode:
		return "Export to: "
	}
	return ""
}
