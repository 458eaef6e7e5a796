package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/buffer"
)

// Clipboard payloads are hex text ("de ad be ef") so copied bytes can
// round-trip through other tools.

// selectionOrCursor is the byte range clipboard commands act on: the
// active selection, or the single byte under the cursor.
func (m Model) selectionOrCursor() (start, n int) {
	if sel, ok := m.buf.Selection(); ok {
		return sel.Start, sel.Len()
	}
	return m.buf.Cursor(), 1
}

// encodeHexText renders bytes as space-separated hex pairs.
func encodeHexText(data []byte) string {
	var b strings.Builder
	for i, v := range data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", v)
	}
	return b.String()
}

// decodeHexText parses hex text back into bytes. Whitespace between
// pairs is ignored; anything else is an error.
func decodeHexText(text string) ([]byte, error) {
	joined := strings.Join(strings.Fields(text), "")
	if joined == "" {
		return nil, fmt.Errorf("empty clipboard")
	}
	if len(joined)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits")
	}
	return hex.DecodeString(joined)
}

// copySelection puts the selected bytes on the system clipboard.
func (m Model) copySelection() (tea.Model, tea.Cmd) {
	if m.buf.Len() == 0 {
		return m, nil
	}
	start, n := m.selectionOrCursor()
	data := m.buf.Working()[start : start+n]

	if err := clipboard.WriteAll(encodeHexText(data)); err != nil {
		m.statusMessage = "Clipboard unavailable"
		return m, clearStatusSoon()
	}
	m.statusMessage = fmt.Sprintf("Copied %d byte(s)", n)
	return m, clearStatusSoon()
}

// cutSelection copies the selected bytes, then removes them.
func (m Model) cutSelection() (tea.Model, tea.Cmd) {
	if m.buf.Len() == 0 {
		return m, nil
	}
	start, n := m.selectionOrCursor()
	data := m.buf.Working()[start : start+n]

	if err := clipboard.WriteAll(encodeHexText(data)); err != nil {
		m.statusMessage = "Clipboard unavailable"
		return m, clearStatusSoon()
	}

	m.buf.DeleteBytes(start, n)
	m.buf.ClearSelection()
	m.ensureCursorVisible()
	m.statusMessage = fmt.Sprintf("Cut %d byte(s)", n)
	return m, clearStatusSoon()
}

// pasteClipboard writes clipboard bytes at the cursor. Overwrite mode
// stamps over existing bytes; insert mode splices them in.
func (m Model) pasteClipboard() (tea.Model, tea.Cmd) {
	text, err := clipboard.ReadAll()
	if err != nil {
		m.statusMessage = "Clipboard unavailable"
		return m, clearStatusSoon()
	}

	vals, err := decodeHexText(text)
	if err != nil {
		m.statusMessage = fmt.Sprintf("Paste failed: %v", err)
		return m, clearStatusSoon()
	}

	if m.buf.WriteMode() == buffer.WriteInsert {
		m.buf.InsertBytes(m.buf.Cursor(), vals)
	} else {
		m.buf.EditBytes(m.buf.Cursor(), vals)
	}
	m.ensureCursorVisible()
	m.statusMessage = fmt.Sprintf("Pasted %d byte(s)", len(vals))
	return m, clearStatusSoon()
}
