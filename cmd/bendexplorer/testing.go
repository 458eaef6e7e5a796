package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/bendkit/buffer"
)

// TestHelper provides utilities for testing TUI behavior
type TestHelper struct {
	model Model
}

// NewTestHelper creates a test helper over an in-memory byte slice.
// No file is opened; save paths point at a throwaway name.
func NewTestHelper(data []byte) *TestHelper {
	h := &TestHelper{
		model: NewModel("test.bin", data, DefaultConfig()),
	}
	// Give the grid a usable surface
	return h.SendWindowSize(100, 24)
}

// SendKey simulates a key press
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	msg := tea.KeyMsg{Type: keyType}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyString simulates a key by its bubbletea string name, for
// chords like "ctrl+o" or "shift+right".
func (h *TestHelper) SendKeyString(s string) *TestHelper {
	var msg tea.KeyMsg
	switch s {
	case "ctrl+o":
		msg = tea.KeyMsg{Type: tea.KeyCtrlO}
	case "ctrl+s":
		msg = tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+f":
		msg = tea.KeyMsg{Type: tea.KeyCtrlF}
	case "ctrl+home":
		msg = tea.KeyMsg{Type: tea.KeyCtrlHome}
	case "ctrl+end":
		msg = tea.KeyMsg{Type: tea.KeyCtrlEnd}
	case "shift+up":
		msg = tea.KeyMsg{Type: tea.KeyShiftUp}
	case "shift+down":
		msg = tea.KeyMsg{Type: tea.KeyShiftDown}
	case "shift+left":
		msg = tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "shift+right":
		msg = tea.KeyMsg{Type: tea.KeyShiftRight}
	default:
		return h.typeString(s)
	}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// typeString feeds each rune of s as its own key press.
func (h *TestHelper) typeString(s string) *TestHelper {
	for _, r := range s {
		if r == ' ' {
			h.SendKey(tea.KeySpace)
			continue
		}
		h.SendKeyRune(r)
	}
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	msg := tea.WindowSizeMsg{Width: width, Height: height}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// Buffer returns the engine buffer behind the model
func (h *TestHelper) Buffer() *buffer.Buffer {
	return h.model.Buffer()
}

// Cursor returns the buffer cursor position
func (h *TestHelper) Cursor() int {
	return h.model.buf.Cursor()
}

// Working returns the current working bytes
func (h *TestHelper) Working() []byte {
	return h.model.buf.Working()
}

// StatusMessage returns the transient status line
func (h *TestHelper) StatusMessage() string {
	return h.model.statusMessage
}
