package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/buffer/bookmark"
)

// handlePanelKey drives the save point and bookmark panels.
func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.panel = PanelNone
		return m, nil
	case tea.KeyUp:
		if m.panelCursor > 0 {
			m.panelCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.panelCursor < m.panelLen()-1 {
			m.panelCursor++
		}
		return m, nil
	case tea.KeyEnter:
		return m.panelActivate()
	}

	switch msg.String() {
	case "q":
		m.panel = PanelNone
		return m, nil
	case "k":
		if m.panelCursor > 0 {
			m.panelCursor--
		}
		return m, nil
	case "j":
		if m.panelCursor < m.panelLen()-1 {
			m.panelCursor++
		}
		return m, nil
	case "n":
		if m.panel == PanelSavePoints {
			m.inputMode = SavePointNameMode
		} else {
			m.inputMode = BookmarkNameMode
		}
		m.inputBuffer = ""
		return m, nil
	case "r":
		return m.panelRename()
	case "d":
		return m.panelDelete()
	case "a":
		if m.panel == PanelBookmarks {
			if mark, ok := m.selectedBookmark(); ok {
				m.renameID = mark.ID
				m.inputMode = BookmarkNoteMode
				m.inputBuffer = mark.Annotation
			}
		}
		return m, nil
	}

	return m, nil
}

// panelLen is the item count of the open panel.
func (m Model) panelLen() int {
	switch m.panel {
	case PanelSavePoints:
		return len(m.buf.SavePoints())
	case PanelBookmarks:
		return m.buf.Bookmarks().Count()
	}
	return 0
}

// panelActivate runs Enter on the selected row: restore a save point,
// or jump to a bookmark.
func (m Model) panelActivate() (tea.Model, tea.Cmd) {
	switch m.panel {
	case PanelSavePoints:
		points := m.buf.SavePoints()
		if m.panelCursor >= len(points) {
			return m, nil
		}
		sp := points[m.panelCursor]
		if !m.buf.RestoreSavePoint(sp.ID) {
			m.statusMessage = "Restore failed"
			return m, clearStatusSoon()
		}
		m.ensureCursorVisible()
		m.panel = PanelNone
		m.statusMessage = fmt.Sprintf("Restored %q", sp.Name)
		return m, clearStatusSoon()

	case PanelBookmarks:
		mark, ok := m.selectedBookmark()
		if !ok {
			return m, nil
		}
		m.panel = PanelNone
		m.jumpTo(mark.Offset)
		m.statusMessage = fmt.Sprintf("Jumped to %q at 0x%X", mark.Name, mark.Offset)
		return m, clearStatusSoon()
	}
	return m, nil
}

// panelRename opens the rename prompt for the selected row.
func (m Model) panelRename() (tea.Model, tea.Cmd) {
	switch m.panel {
	case PanelSavePoints:
		points := m.buf.SavePoints()
		if m.panelCursor >= len(points) {
			return m, nil
		}
		m.renameID = points[m.panelCursor].ID
		m.inputMode = SavePointRenameMode
		m.inputBuffer = ""

	case PanelBookmarks:
		if mark, ok := m.selectedBookmark(); ok {
			m.renameID = mark.ID
			m.inputMode = BookmarkRenameMode
			m.inputBuffer = ""
		}
	}
	return m, nil
}

// panelDelete removes the selected row. Save points enforce the chain
// rule: only the newest one may go.
func (m Model) panelDelete() (tea.Model, tea.Cmd) {
	switch m.panel {
	case PanelSavePoints:
		points := m.buf.SavePoints()
		if m.panelCursor >= len(points) {
			return m, nil
		}
		sp := points[m.panelCursor]
		if !m.buf.CanDeleteSavePoint(sp.ID) {
			m.statusMessage = "Only the newest save point can be deleted"
			return m, clearStatusSoon()
		}
		m.buf.DeleteSavePoint(sp.ID)
		m.clampPanelCursor()
		m.statusMessage = fmt.Sprintf("Deleted %q", sp.Name)
		return m, clearStatusSoon()

	case PanelBookmarks:
		mark, ok := m.selectedBookmark()
		if !ok {
			return m, nil
		}
		m.buf.RemoveBookmark(mark.ID)
		m.clampPanelCursor()
		m.statusMessage = fmt.Sprintf("Removed %q", mark.Name)
		return m, clearStatusSoon()
	}
	return m, nil
}

func (m *Model) clampPanelCursor() {
	if n := m.panelLen(); m.panelCursor >= n {
		m.panelCursor = n - 1
	}
	if m.panelCursor < 0 {
		m.panelCursor = 0
	}
}

func (m Model) selectedBookmark() (bookmark.Bookmark, bool) {
	marks := m.buf.Bookmarks().All()
	if m.panelCursor >= len(marks) {
		return bookmark.Bookmark{}, false
	}
	return marks[m.panelCursor], true
}

// renderSavePointPanel draws the save point list.
func (m Model) renderSavePointPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Save Points"))
	b.WriteString("\n\n")

	points := m.buf.SavePoints()
	if len(points) == 0 {
		b.WriteString(panelDimStyle.Render("none yet - press n to create one"))
	}

	for i, sp := range points {
		line := fmt.Sprintf("%-20s %4d change(s)  %s",
			truncate(sp.Name, 20), len(sp.Diff), sp.CreatedAt.Format("15:04:05"))
		if i == m.panelCursor {
			line = panelSelectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(panelDimStyle.Render("enter restore · n new · r rename · d delete · esc close"))

	return panelStyle.Render(b.String())
}

// renderBookmarkPanel draws the bookmark list.
func (m Model) renderBookmarkPanel() string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Bookmarks"))
	b.WriteString("\n\n")

	marks := m.buf.Bookmarks().All()
	if len(marks) == 0 {
		b.WriteString(panelDimStyle.Render("none yet - press n to add one at the cursor"))
	}

	for i, mark := range marks {
		line := fmt.Sprintf("0x%08X  %-16s", mark.Offset, truncate(mark.Name, 16))
		if mark.Annotation != "" {
			line += "  " + panelDimStyle.Render(truncate(mark.Annotation, 24))
		}
		if i == m.panelCursor {
			line = panelSelectedStyle.Render(fmt.Sprintf("0x%08X  %-16s  %s",
				mark.Offset, truncate(mark.Name, 16), truncate(mark.Annotation, 24)))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(panelDimStyle.Render("enter jump · n add · r rename · a annotate · d remove · esc close"))

	return panelStyle.Render(b.String())
}
