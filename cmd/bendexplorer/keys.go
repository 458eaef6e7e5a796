package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	RowStart  key.Binding
	RowEnd    key.Binding
	FileStart key.Binding
	FileEnd   key.Binding

	// Selection
	SelectLeft  key.Binding
	SelectRight key.Binding
	SelectUp    key.Binding
	SelectDown  key.Binding

	// Editing
	EnterEdit   key.Binding
	Esc         key.Binding
	ToggleCol   key.Binding
	ToggleWrite key.Binding
	Backspace   key.Binding
	Delete      key.Binding
	Undo        key.Binding
	Redo        key.Binding

	// Search
	SearchHex   key.Binding
	SearchASCII key.Binding
	NextMatch   key.Binding
	PrevMatch   key.Binding
	Replace     key.Binding
	ReplaceAll  key.Binding

	// Commands
	Goto       key.Binding
	SavePoints key.Binding
	Bookmark   key.Binding
	Bookmarks  key.Binding
	Copy       key.Binding
	Cut        key.Binding
	Paste      key.Binding
	Save       key.Binding
	SaveAs     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		RowStart: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "start of row"),
		),
		RowEnd: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "end of row"),
		),
		FileStart: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("ctrl+home", "start of file"),
		),
		FileEnd: key.NewBinding(
			key.WithKeys("ctrl+end"),
			key.WithHelp("ctrl+end", "end of file"),
		),

		// Selection
		SelectLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "select left"),
		),
		SelectRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "select right"),
		),
		SelectUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "select up"),
		),
		SelectDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "select down"),
		),

		// Editing
		EnterEdit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit bytes"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		ToggleCol: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "hex/ascii column"),
		),
		ToggleWrite: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "insert/overwrite"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete byte before cursor"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("delete", "delete byte at cursor"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "redo"),
		),

		// Search
		SearchHex: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "hex search"),
		),
		SearchASCII: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "ascii search"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev match"),
		),
		Replace: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replace current match"),
		),
		ReplaceAll: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "replace all matches"),
		),

		// Commands
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to offset"),
		),
		SavePoints: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save points"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark cursor"),
		),
		Bookmarks: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "bookmark panel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy selection"),
		),
		Cut: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "cut selection"),
		),
		Paste: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "paste"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		SaveAs: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export to path"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Help,
		k.Quit,
	}
}

// FullHelp returns all key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.EnterEdit, k.SearchHex, k.SavePoints, k.Quit},
	}
}
