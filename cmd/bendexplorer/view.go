package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/internal/bytetext"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	// If help overlay is showing, render it
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	// Confirm dialogs render centered over the main view
	if m.confirmQuit || m.confirmOverwrite {
		text := "Unsaved changes. Quit anyway? (y/n)"
		if m.confirmOverwrite {
			text = "File changed on disk. Overwrite? (y/n)"
		}
		dialog := overlay.New(
			newDialogModel(m.renderConfirmDialog(text)),
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return dialog.View()
	}

	return m.renderMainView()
}

// renderMainView lays out header, grid, and status bar.
func (m Model) renderMainView() string {
	header := m.renderHeader()
	colHeader := m.renderColumnHeader()
	grid := m.renderGrid()

	// Side panels sit to the right of the grid
	switch m.panel {
	case PanelSavePoints:
		grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", m.renderSavePointPanel())
	case PanelBookmarks:
		grid = lipgloss.JoinHorizontal(lipgloss.Top, grid, "  ", m.renderBookmarkPanel())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		colHeader,
		grid,
		"",
		m.renderStatus(),
	)
}

// renderHeader renders the title bar with the file path and dirty flag.
func (m Model) renderHeader() string {
	title := headerStyle.Render("Bend Explorer")

	name := m.path
	if m.dirty() {
		name = "*" + name
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Top,
		title,
		lipgloss.NewStyle().Render("  "),
		pathStyle.Render(name),
	)

	info := fmt.Sprintf("%d bytes", m.buf.Len())
	if m.dirty() {
		info += "  " + modifiedFlagStyle.Render("unsaved changes")
	}

	return lipgloss.JoinVertical(lipgloss.Left, line1, pathStyle.Render(info))
}

// hexPair formats one byte per the configured digit case.
func (m Model) hexPair(v byte) string {
	if m.cfg.UppercaseHex {
		return fmt.Sprintf("%02X", v)
	}
	return fmt.Sprintf("%02x", v)
}

// cellGap is the spacing that follows grid column col. The column
// header and every grid row use it so the columns line up.
func cellGap(col, bpr int) string {
	if col >= bpr-1 {
		return ""
	}
	switch {
	case (col+1)%8 == 0:
		return "   "
	case (col+1)%4 == 0:
		return "  "
	}
	return " "
}

// renderColumnHeader renders the column index row above the grid.
func (m Model) renderColumnHeader() string {
	bpr := m.bytesPerRow()
	cursorCol := m.buf.Cursor() % bpr

	// Offset gutter
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 10))

	for i := 0; i < bpr; i++ {
		cell := m.hexPair(byte(i))
		if i == cursorCol {
			b.WriteString(columnCursorStyle.Render(cell))
		} else {
			b.WriteString(columnHeaderStyle.Render(cell))
		}
		b.WriteString(cellGap(i, bpr))
	}

	return b.String()
}

// renderGrid renders the visible hex and ASCII columns.
func (m Model) renderGrid() string {
	bpr := m.bytesPerRow()
	working := m.buf.Working()
	original := m.buf.Original()
	marks := m.buf.Bookmarks()
	cursor := m.buf.Cursor()
	cursorRow := m.cursorRow()

	sel, hasSel := m.buf.Selection()

	cursorCell := cursorStyleFor(m.editing, m.buf.WriteMode())
	if m.buf.NibblePos() == buffer.NibbleLow {
		// Half-typed byte
		cursorCell = cursorCell.Underline(true)
	}

	var lines []string
	for row := m.scrollRow; row < m.scrollRow+m.visibleRows(); row++ {
		rowOffset := row * bpr
		if rowOffset >= len(working) && rowOffset > 0 {
			break
		}

		offsetText := fmt.Sprintf("%08X  ", rowOffset)
		if !m.cfg.UppercaseHex {
			offsetText = fmt.Sprintf("%08x  ", rowOffset)
		}
		if row == cursorRow {
			offsetText = offsetCursorStyle.Render(offsetText)
		} else {
			offsetText = offsetStyle.Render(offsetText)
		}

		var hexLine strings.Builder
		var asciiLine strings.Builder

		for col := 0; col < bpr; col++ {
			off := rowOffset + col

			if off >= len(working) {
				hexLine.WriteString("  ")
				hexLine.WriteString(cellGap(col, bpr))
				asciiLine.WriteString(" ")
				continue
			}

			v := working[off]

			style := cellStyle
			switch {
			case off == cursor:
				style = cursorCell
			case hasSel && sel.Contains(off):
				style = cellSelectedStyle
			case m.search.IsWithinMatch(off):
				style = cellMatchStyle
			case marks.Has(off):
				style = cellBookmarkStyle
			case off >= len(original) || v != original[off]:
				style = cellChangedStyle
			}

			hexLine.WriteString(style.Render(m.hexPair(v)))
			hexLine.WriteString(cellGap(col, bpr))
			asciiLine.WriteString(style.Render(string(bytetext.DisplayRune(v))))
		}

		lines = append(lines, offsetText+hexLine.String()+"  "+asciiLine.String())
	}

	return strings.Join(lines, "\n")
}

// renderStatus renders the two status rows: prompt or help, then stats.
func (m Model) renderStatus() string {
	var top string
	switch {
	case m.inputMode != NormalMode:
		top = searchPromptStyle.Render(m.promptLabel()) + m.inputBuffer + "█"
	case m.statusMessage != "":
		top = searchPromptStyle.Render(m.statusMessage)
	default:
		top = m.renderKeyHints()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		statusStyle.Width(m.width).Render(top),
		statusStyle.Width(m.width).Render(m.renderStats()),
	)
}

// renderKeyHints builds the context help line.
func (m Model) renderKeyHints() string {
	var help strings.Builder

	switch {
	case m.editing:
		help.WriteString(helpStyle.Render("type to write bytes"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("Tab: hex/ASCII"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("^O: insert/overwrite"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("Esc: stop editing"))
	case m.panel != PanelNone:
		help.WriteString(helpStyle.Render("↑/↓: Navigate"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("Enter: Select"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("Esc: Close"))
	default:
		help.WriteString(helpStyle.Render("i: Edit"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("/: Search"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("g: Goto"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("s: Save points"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("b: Mark"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("^S: Save"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("?: Help"))
		help.WriteString(" │ ")
		help.WriteString(helpStyle.Render("q: Quit"))
	}

	return help.String()
}

// renderStats builds the counters line.
func (m Model) renderStats() string {
	var b strings.Builder

	b.WriteString(statusCountStyle.Render(fmt.Sprintf("0x%08X", m.buf.Cursor())))
	b.WriteString(fmt.Sprintf(" / 0x%X", m.buf.Len()))

	b.WriteString(" │ ")
	b.WriteString(strings.ToUpper(m.buf.EditMode().String()))
	b.WriteString(" │ ")
	b.WriteString(strings.ToUpper(m.buf.WriteMode().String()))

	b.WriteString(" │ undo ")
	b.WriteString(statusCountStyle.Render(fmt.Sprintf("%d", m.buf.UndoCount())))
	b.WriteString(" redo ")
	b.WriteString(statusCountStyle.Render(fmt.Sprintf("%d", m.buf.RedoCount())))

	if sel, ok := m.buf.Selection(); ok {
		b.WriteString(" │ ")
		b.WriteString(statusCountStyle.Render(fmt.Sprintf("%d selected", sel.Len())))
	}

	if m.search.HasMatches() {
		b.WriteString(" │ match ")
		if idx, ok := m.search.CurrentMatchIndex(); ok {
			b.WriteString(statusCountStyle.Render(fmt.Sprintf("%d/%d", idx+1, m.search.MatchCount())))
		} else {
			b.WriteString(statusCountStyle.Render(fmt.Sprintf("-/%d", m.search.MatchCount())))
		}
		if m.search.MatchesMayBeStale(m.buf.Generation()) {
			b.WriteString(staleStyle.Render(" (stale)"))
		}
	}

	if n := len(m.buf.SavePoints()); n > 0 {
		b.WriteString(" │ ")
		b.WriteString(statusCountStyle.Render(fmt.Sprintf("%d", n)))
		b.WriteString(" save point(s)")
	}
	if n := m.buf.Bookmarks().Count(); n > 0 {
		b.WriteString(" │ ")
		b.WriteString(statusCountStyle.Render(fmt.Sprintf("%d", n)))
		b.WriteString(" mark(s)")
	}

	return b.String()
}

// renderConfirmDialog renders a bordered yes/no prompt.
func (m Model) renderConfirmDialog(text string) string {
	return modalStyle.Render(text)
}

// helpContent builds the key binding list shown in the help overlay.
func helpContent() string {
	var b strings.Builder

	title := helpTitleStyle.Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n\n")

	const keyWidth = 14

	writeRow := func(k, desc string) {
		b.WriteString(helpKeyStyle.Width(keyWidth).Render(k))
		b.WriteString("  ")
		b.WriteString(helpDescStyle.Render(desc))
		b.WriteString("\n")
	}

	b.WriteString(modalTitleStyle.Render("Navigation"))
	b.WriteString("\n")
	writeRow("↑/↓/←/→", "Move cursor")
	writeRow("PgUp/PgDn", "Move a screen at a time")
	writeRow("Home/End", "Start/end of row")
	writeRow("Ctrl+Home/End", "Start/end of file")
	writeRow("g", "Go to offset (hex or decimal)")
	b.WriteString("\n")

	b.WriteString(modalTitleStyle.Render("Editing"))
	b.WriteString("\n")
	writeRow("i", "Start editing at the cursor")
	writeRow("Esc", "Stop editing")
	writeRow("Tab", "Switch hex/ASCII column")
	writeRow("Ctrl+O", "Toggle insert/overwrite")
	writeRow("Backspace", "Move left (insert: delete left)")
	writeRow("Delete", "Delete byte at cursor")
	writeRow("u / U", "Undo / redo")
	b.WriteString("\n")

	b.WriteString(modalTitleStyle.Render("Selection & Clipboard"))
	b.WriteString("\n")
	writeRow("Shift+arrows", "Extend selection")
	writeRow("y", "Copy selection as hex text")
	writeRow("x", "Cut selection")
	writeRow("p", "Paste hex text at cursor")
	b.WriteString("\n")

	b.WriteString(modalTitleStyle.Render("Search & Replace"))
	b.WriteString("\n")
	writeRow("/", "Hex pattern search")
	writeRow("Ctrl+F", "ASCII text search")
	writeRow("n / N", "Next / previous match")
	writeRow("r", "Replace current match")
	writeRow("R", "Replace all matches")
	b.WriteString("\n")

	b.WriteString(modalTitleStyle.Render("Save Points & Bookmarks"))
	b.WriteString("\n")
	writeRow("s", "Save point panel")
	writeRow("b", "Toggle bookmark at cursor")
	writeRow("B", "Bookmark panel")
	b.WriteString("\n")

	b.WriteString(modalTitleStyle.Render("File"))
	b.WriteString("\n")
	writeRow("Ctrl+S", "Write back to the opened file")
	writeRow("e", "Export to another path")
	b.WriteString("\n")

	b.WriteString(modalTitleStyle.Render("Other"))
	b.WriteString("\n")
	writeRow("?", "Show this help")
	writeRow("q or Ctrl+C", "Quit")

	return b.String()
}

// renderHelpOverlay renders the scrollable help overlay
func (m Model) renderHelpOverlay() string {
	hint := "Esc, ?, or q to close"
	if m.helpView.TotalLineCount() > m.helpView.Height {
		hint = "↑/↓ scroll · " + hint
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.helpView.View(),
		"",
		helpStyle.Render(hint),
	)

	helpBox := modalStyle.Render(body)

	helpHeight := lipgloss.Height(helpBox)
	helpWidth := lipgloss.Width(helpBox)

	verticalPadding := (m.height - helpHeight) / 2
	horizontalPadding := (m.width - helpWidth) / 2

	if verticalPadding < 0 {
		verticalPadding = 0
	}
	if horizontalPadding < 0 {
		horizontalPadding = 0
	}

	positioned := lipgloss.NewStyle().
		MarginTop(verticalPadding).
		MarginLeft(horizontalPadding).
		Render(helpBox)

	return positioned
}
