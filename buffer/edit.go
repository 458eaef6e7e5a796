package buffer

import (
	"bytes"

	"github.com/joshuapare/bendkit/buffer/history"
	"github.com/joshuapare/bendkit/internal/buf"
)

// EditNibble writes value (0..15) into the pending half of the byte at
// the cursor.
//
// A high-nibble write flips the pending half to low and returns false:
// the cursor stays put waiting for the second keystroke. A low-nibble
// write completes the byte, flips back to high, advances the cursor
// (unless already at the last byte), and returns true.
//
// No-ops silently when the cursor is past the end or value exceeds 15.
// A write that leaves the byte unchanged records no history and bumps
// no generation, but the nibble and cursor still advance so typing
// stays predictable.
func (b *Buffer) EditNibble(value byte) bool {
	if value > 15 || b.cursor >= len(b.working) {
		return false
	}
	old := b.working[b.cursor]
	var next byte
	if b.nibble == NibbleHigh {
		next = old&0x0F | value<<4
	} else {
		next = old&0xF0 | value
	}
	if next != old {
		b.working[b.cursor] = next
		b.hist.Push(history.Single{Offset: b.cursor, Old: old, New: next})
		b.modified = true
		b.generation++
	}
	if b.nibble == NibbleHigh {
		b.nibble = NibbleLow
		return false
	}
	b.nibble = NibbleHigh
	if b.cursor+1 < len(b.working) {
		b.cursor++
	}
	return true
}

// EditNibbleWithMode dispatches a hex keystroke per the write mode. In
// overwrite mode it behaves exactly like EditNibble. In insert mode the
// high-nibble keystroke splices a fresh byte (value << 4) in at the
// cursor and the low-nibble keystroke completes that byte in place.
func (b *Buffer) EditNibbleWithMode(value byte) bool {
	if b.writeMode == WriteOverwrite {
		return b.EditNibble(value)
	}
	if value > 15 {
		return false
	}
	if b.nibble == NibbleHigh {
		b.InsertBytes(b.cursor, []byte{value << 4})
		b.nibble = NibbleLow
		return false
	}
	return b.EditNibble(value)
}

// EditASCII overwrites the byte at the cursor with a printable ASCII
// character (0x20..0x7E) and advances the cursor unless at the last
// byte. Returns whether the keystroke was accepted; non-printable input
// or a cursor past the end is silently ignored.
func (b *Buffer) EditASCII(ch byte) bool {
	if ch < 0x20 || ch > 0x7e || b.cursor >= len(b.working) {
		return false
	}
	b.EditByte(b.cursor, ch)
	if b.cursor+1 < len(b.working) {
		b.cursor++
	}
	b.nibble = NibbleHigh
	return true
}

// EditASCIIWithMode dispatches an ASCII keystroke per the write mode:
// overwrite-in-place, or insert-then-advance.
func (b *Buffer) EditASCIIWithMode(ch byte) bool {
	if b.writeMode == WriteOverwrite {
		return b.EditASCII(ch)
	}
	if ch < 0x20 || ch > 0x7e {
		return false
	}
	b.InsertBytes(b.cursor, []byte{ch})
	if b.cursor+1 < len(b.working) {
		b.cursor++
	}
	b.nibble = NibbleHigh
	return true
}

// EditByte overwrites one byte. Out-of-range offsets no-op; an
// unchanged value records nothing.
func (b *Buffer) EditByte(offset int, value byte) {
	if offset < 0 || offset >= len(b.working) {
		return
	}
	old := b.working[offset]
	if old == value {
		return
	}
	b.working[offset] = value
	b.hist.Push(history.Single{Offset: offset, Old: old, New: value})
	b.modified = true
	b.generation++
}

// EditBytes overwrites a run of bytes starting at offset, clamped to
// the buffer on both sides. Records one Range operation, and only when
// at least one byte actually differs.
func (b *Buffer) EditBytes(offset int, values []byte) {
	v := values
	if offset < 0 {
		if offset+len(v) <= 0 {
			return
		}
		v = v[-offset:]
		offset = 0
	}
	if len(v) == 0 || offset >= len(b.working) {
		return
	}
	if n := len(b.working) - offset; len(v) > n {
		v = v[:n]
	}
	if bytes.Equal(b.working[offset:offset+len(v)], v) {
		return
	}
	old := append([]byte(nil), b.working[offset:offset+len(v)]...)
	copy(b.working[offset:], v)
	b.hist.Push(history.Range{
		Offset: offset,
		Old:    old,
		New:    append([]byte(nil), v...),
	})
	b.modified = true
	b.generation++
}

// InsertByte splices one byte in at offset.
func (b *Buffer) InsertByte(offset int, value byte) {
	b.InsertBytes(offset, []byte{value})
}

// InsertBytes splices values in at offset (clamped to [0, Len]). Always
// recorded; insertions never coalesce with other history entries.
func (b *Buffer) InsertBytes(offset int, values []byte) {
	if len(values) == 0 {
		return
	}
	offset = buf.Clamp(offset, 0, len(b.working))
	vals := append([]byte(nil), values...)
	b.spliceIn(offset, vals)

	b.hist.Push(history.Insert{Offset: offset, Values: vals})
	b.modified = true
	b.generation++
	b.invalidateStructure()
}

// DeleteByte removes the byte at offset.
func (b *Buffer) DeleteByte(offset int) {
	b.DeleteBytes(offset, 1)
}

// DeleteBytes removes count bytes starting at offset, clamped to the
// buffer. Removing nothing records nothing.
func (b *Buffer) DeleteBytes(offset, count int) {
	start, end := buf.ClampRange(offset, offset+count, len(b.working))
	if start >= end {
		return
	}
	removed := append([]byte(nil), b.working[start:end]...)
	b.spliceOut(start, end-start)

	b.hist.Push(history.Delete{Offset: start, Values: removed})
	b.modified = true
	b.generation++
	b.nibble = NibbleHigh
	b.invalidateStructure()
}

// HandleBackspace applies the editor backspace rule. In overwrite mode
// it only moves the cursor left; the buffer never shrinks. In insert
// mode it moves left and deletes the byte it lands on.
func (b *Buffer) HandleBackspace() {
	if b.writeMode == WriteOverwrite {
		b.MoveCursor(-1)
		return
	}
	if b.cursor == 0 || len(b.working) == 0 {
		b.nibble = NibbleHigh
		return
	}
	b.cursor--
	b.DeleteBytes(b.cursor, 1)
}

// HandleDelete applies the editor delete rule: a no-op in overwrite
// mode, removal of the byte at the cursor in insert mode.
func (b *Buffer) HandleDelete() {
	if b.writeMode == WriteOverwrite || len(b.working) == 0 {
		return
	}
	b.DeleteBytes(b.cursor, 1)
}

// invalidateStructure runs after every change to the working length.
// Save-point diffs use absolute offsets, so the chain is cleared and
// rebased on the new working state; cursor and selection re-clamp; the
// length-changed flag is raised for the host.
func (b *Buffer) invalidateStructure() {
	b.lengthChanged = true
	b.savepoints.ClearAll(b.working)
	b.cursor = b.clampCursor(b.cursor)
	b.clampSelection()
}

// spliceIn grows the working bytes by inserting vals at offset,
// clamped to [0, Len].
func (b *Buffer) spliceIn(offset int, vals []byte) {
	offset = buf.Clamp(offset, 0, len(b.working))
	out := make([]byte, 0, len(b.working)+len(vals))
	out = append(out, b.working[:offset]...)
	out = append(out, vals...)
	out = append(out, b.working[offset:]...)
	b.working = out
}

// spliceOut shrinks the working bytes by removing n bytes at offset,
// clamped to the buffer.
func (b *Buffer) spliceOut(offset, n int) {
	start, end := buf.ClampRange(offset, offset+n, len(b.working))
	if start >= end {
		return
	}
	b.working = append(b.working[:start], b.working[end:]...)
}

// writeRange overwrites bytes starting at offset with vals, skipping
// anything out of bounds.
func (b *Buffer) writeRange(offset int, vals []byte) {
	for i, v := range vals {
		if off := offset + i; off >= 0 && off < len(b.working) {
			b.working[off] = v
		}
	}
}
