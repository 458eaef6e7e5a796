package buffer

import "github.com/joshuapare/bendkit/internal/buf"

// Selection is a normalized half-open byte range [Start, End).
type Selection struct {
	Start int
	End   int
}

// Len returns the number of selected bytes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset falls inside the selection.
func (s Selection) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Selection returns the current selection, if any.
func (b *Buffer) Selection() (Selection, bool) {
	return b.sel, b.hasSel
}

// SetCursor moves the cursor to pos, clamped to the buffer. Any cursor
// motion resets the pending nibble to high: a stale low half would
// write the next keystroke into a byte the user never aimed at.
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clampCursor(pos)
	b.nibble = NibbleHigh
}

// MoveCursor moves the cursor by delta bytes, clamped to the buffer.
func (b *Buffer) MoveCursor(delta int) {
	b.SetCursor(b.cursor + delta)
}

// ExtendSelectionTo grows the selection from the anchor to pos and
// moves the cursor there. The anchor is established at the
// pre-extension cursor on the first extension and persists until
// ClearSelection. The resulting range is normalized (Start <= End) and
// includes both the anchor byte and the target byte.
func (b *Buffer) ExtendSelectionTo(pos int) {
	if len(b.working) == 0 {
		return
	}
	pos = b.clampCursor(pos)
	if !b.hasAnchor {
		b.anchor = b.cursor
		b.hasAnchor = true
	}
	lo, hi := b.anchor, pos
	if lo > hi {
		lo, hi = hi, lo
	}
	start, end := buf.ClampRange(lo, hi+1, len(b.working))
	b.sel = Selection{Start: start, End: end}
	b.hasSel = true
	b.cursor = pos
	b.nibble = NibbleHigh
}

// ClearSelection drops the selection range and its anchor.
func (b *Buffer) ClearSelection() {
	b.hasSel = false
	b.hasAnchor = false
	b.sel = Selection{}
}

// SetEditMode switches between hex and ASCII interpretation of
// keystrokes. Switching resets the pending nibble so no stale sub-byte
// state leaks across interpretations.
func (b *Buffer) SetEditMode(mode EditMode) {
	b.editMode = mode
	b.nibble = NibbleHigh
}

// ToggleWriteMode flips between overwrite and insert.
func (b *Buffer) ToggleWriteMode() {
	if b.writeMode == WriteOverwrite {
		b.writeMode = WriteInsert
	} else {
		b.writeMode = WriteOverwrite
	}
}

// clampCursor pins pos into the valid cursor window: [0, len-1] for a
// non-empty buffer, 0 when empty.
func (b *Buffer) clampCursor(pos int) int {
	if len(b.working) == 0 {
		return 0
	}
	return buf.Clamp(pos, 0, len(b.working)-1)
}

// clampSelection re-pins a stored selection after a structural change.
// A selection that collapses to nothing is dropped.
func (b *Buffer) clampSelection() {
	if !b.hasSel {
		return
	}
	start, end := buf.ClampRange(b.sel.Start, b.sel.End, len(b.working))
	if start >= end {
		b.ClearSelection()
		return
	}
	b.sel = Selection{Start: start, End: end}
	if b.hasAnchor {
		b.anchor = b.clampCursor(b.anchor)
	}
}
