package buffer

import (
	"github.com/joshuapare/bendkit/buffer/bookmark"
	"github.com/joshuapare/bendkit/buffer/history"
	"github.com/joshuapare/bendkit/buffer/savepoint"
)

// Nibble identifies which half of the byte at the cursor the next hex
// keystroke writes.
type Nibble int

const (
	// NibbleHigh targets bits 4-7.
	NibbleHigh Nibble = iota
	// NibbleLow targets bits 0-3.
	NibbleLow
)

// EditMode selects how typed characters are interpreted.
type EditMode int

const (
	// EditHex interprets keystrokes as hex digits, one nibble at a time.
	EditHex EditMode = iota
	// EditASCII interprets keystrokes as whole printable characters.
	EditASCII
)

func (m EditMode) String() string {
	if m == EditASCII {
		return "ascii"
	}
	return "hex"
}

// WriteMode selects whether edits overwrite bytes in place or splice
// new bytes into the buffer.
type WriteMode int

const (
	// WriteOverwrite edits bytes in place; the buffer never changes length.
	WriteOverwrite WriteMode = iota
	// WriteInsert splices new bytes in at the cursor.
	WriteInsert
)

func (m WriteMode) String() string {
	if m == WriteInsert {
		return "insert"
	}
	return "overwrite"
}

// Options configures a Buffer. The zero value selects the defaults.
type Options struct {
	// History configures the undo log (entry cap, coalescing window).
	History history.Options
}

// Buffer is the editable byte store for one opened file.
//
// NOT thread-safe. The host serializes all calls.
type Buffer struct {
	original []byte
	working  []byte

	cursor    int
	nibble    Nibble
	editMode  EditMode
	writeMode WriteMode

	hasSel    bool
	sel       Selection
	hasAnchor bool
	anchor    int

	modified      bool
	generation    uint64
	lengthChanged bool

	hist       *history.Log
	savepoints *savepoint.Manager
	bookmarks  *bookmark.Store
}

// New creates a Buffer over an independent copy of data with default
// options.
func New(data []byte) *Buffer {
	return NewWithOptions(data, Options{})
}

// NewWithOptions creates a Buffer over an independent copy of data.
// The original and working sequences start equal; cursor at 0, nibble
// high, no selection, unmodified, generation 0.
func NewWithOptions(data []byte, opts Options) *Buffer {
	return &Buffer{
		original:   append([]byte(nil), data...),
		working:    append([]byte(nil), data...),
		hist:       history.New(opts.History),
		savepoints: savepoint.NewManager(data),
		bookmarks:  bookmark.NewStore(),
	}
}

// Original returns the bytes captured at construction. Read-only view;
// callers must not mutate it.
func (b *Buffer) Original() []byte {
	return b.original
}

// Working returns the live working bytes. Read-only view; callers must
// not mutate it. The slice is only valid until the next structural
// edit.
func (b *Buffer) Working() []byte {
	return b.working
}

// Len returns the working buffer length.
func (b *Buffer) Len() int {
	return len(b.working)
}

// Cursor returns the current cursor offset.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// NibblePos returns which half of the cursor byte the next hex
// keystroke writes.
func (b *Buffer) NibblePos() Nibble {
	return b.nibble
}

// EditMode returns the current edit mode.
func (b *Buffer) EditMode() EditMode {
	return b.editMode
}

// WriteMode returns the current write mode.
func (b *Buffer) WriteMode() WriteMode {
	return b.writeMode
}

// IsModified reports whether the working bytes differ from the
// original.
func (b *Buffer) IsModified() bool {
	return b.modified
}

// Generation returns the edit generation, incremented on every value
// or structural change. Derived data records it to detect staleness.
func (b *Buffer) Generation() uint64 {
	return b.generation
}

// CanUndo reports whether an undo step is available.
func (b *Buffer) CanUndo() bool {
	return b.hist.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (b *Buffer) CanRedo() bool {
	return b.hist.CanRedo()
}

// UndoCount returns the number of undo steps available.
func (b *Buffer) UndoCount() int {
	return b.hist.UndoCount()
}

// RedoCount returns the number of redo steps available.
func (b *Buffer) RedoCount() int {
	return b.hist.RedoCount()
}

// ConsumeLengthChanged reports whether the buffer length changed since
// the previous call and clears the flag. Hosts poll it to re-derive
// anything keyed on absolute offsets.
func (b *Buffer) ConsumeLengthChanged() bool {
	changed := b.lengthChanged
	b.lengthChanged = false
	return changed
}
