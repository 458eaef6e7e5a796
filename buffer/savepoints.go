package buffer

import (
	"bytes"

	"github.com/joshuapare/bendkit/buffer/history"
	"github.com/joshuapare/bendkit/buffer/savepoint"
)

// CreateSavePoint snapshots the current working state under name and
// returns the new save point's id.
func (b *Buffer) CreateSavePoint(name string) int {
	return b.savepoints.Create(name, b.working)
}

// RestoreSavePoint rewrites the working bytes to the state captured by
// save point id. The rewrite lands in history as one range operation
// over the minimal differing span, so an accidental restore is
// undoable like any other edit. The save-point chain itself is
// untouched: future snapshots still diff against the last checkpoint.
// Returns false for an unknown id.
func (b *Buffer) RestoreSavePoint(id int) bool {
	data, ok := b.savepoints.Restore(id)
	if !ok {
		return false
	}
	if len(data) != len(b.working) {
		// Chain resets on every length change, so lengths always agree.
		return false
	}
	lo, hi := diffSpan(b.working, data)
	if lo < hi {
		oldSpan := append([]byte(nil), b.working[lo:hi]...)
		newSpan := append([]byte(nil), data[lo:hi]...)
		copy(b.working[lo:hi], newSpan)
		b.hist.Push(history.Range{Offset: lo, Old: oldSpan, New: newSpan})
		b.generation++
	}
	b.modified = !bytes.Equal(b.working, b.original)
	return true
}

// CanDeleteSavePoint reports whether id is the leaf of the chain, the
// only element that may be deleted.
func (b *Buffer) CanDeleteSavePoint(id int) bool {
	return b.savepoints.CanDelete(id)
}

// DeleteSavePoint removes the leaf save point. Returns false for
// unknown or non-leaf ids.
func (b *Buffer) DeleteSavePoint(id int) bool {
	return b.savepoints.Delete(id)
}

// RenameSavePoint renames a save point. Returns false for unknown ids.
func (b *Buffer) RenameSavePoint(id int, name string) bool {
	return b.savepoints.Rename(id, name)
}

// SavePoints lists the chain in creation order.
func (b *Buffer) SavePoints() []savepoint.SavePoint {
	return b.savepoints.All()
}

// diffSpan returns the minimal half-open span over which a and b
// differ. lo == hi means the slices are identical. Lengths must agree.
func diffSpan(a, b []byte) (lo, hi int) {
	n := len(a)
	for lo < n && a[lo] == b[lo] {
		lo++
	}
	if lo == n {
		return lo, lo
	}
	hi = n
	for hi > lo && a[hi-1] == b[hi-1] {
		hi--
	}
	return lo, hi
}
