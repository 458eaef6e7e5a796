package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/bendkit/buffer"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	accentColor    = lipgloss.Color("#FF00FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#383838")

	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	modifiedFlagStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	// Grid styles
	columnHeaderStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	columnCursorStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	offsetStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	offsetCursorStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	cellStyle = lipgloss.NewStyle()

	cellChangedStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	cellBookmarkStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	cellMatchStyle = lipgloss.NewStyle().
			Background(warningColor).
			Foreground(lipgloss.Color("#000000"))

	cellSelectedStyle = lipgloss.NewStyle().
				Background(borderColor).
				Foreground(lipgloss.Color("#FFFFFF"))

	cursorIdleStyle = lipgloss.NewStyle().
			Background(mutedColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	cursorOverwriteStyle = lipgloss.NewStyle().
				Background(primaryColor).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	cursorInsertStyle = lipgloss.NewStyle().
				Background(successColor).
				Foreground(lipgloss.Color("#000000")).
				Bold(true)

	// Status bar styles
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	statusCountStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	staleStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Italic(true)

	// Error styles
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Modal styles
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Background(lipgloss.Color("#1A1A1A"))

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Help overlay styles
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Width(15)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	panelSelectedStyle = lipgloss.NewStyle().
				Background(primaryColor).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// cursorStyleFor picks the cursor cell style: muted when browsing,
// write-mode colored when editing.
func cursorStyleFor(editing bool, mode buffer.WriteMode) lipgloss.Style {
	if !editing {
		return cursorIdleStyle
	}
	if mode == buffer.WriteInsert {
		return cursorInsertStyle
	}
	return cursorOverwriteStyle
}

// truncate truncates a string to the specified length with ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
