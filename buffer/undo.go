package buffer

import (
	"bytes"

	"github.com/joshuapare/bendkit/buffer/history"
)

// Undo reverts the most recent operation. The modified flag is
// recomputed by full comparison against the original bytes, so undoing
// back to the load state reads as unmodified again. Returns whether an
// operation was available.
func (b *Buffer) Undo() bool {
	op, ok := b.hist.Undo()
	if !ok {
		return false
	}
	b.revertOp(op)
	b.modified = !bytes.Equal(b.working, b.original)
	b.generation++
	b.nibble = NibbleHigh
	return true
}

// Redo re-applies the most recently undone operation. Returns whether
// an operation was available.
func (b *Buffer) Redo() bool {
	op, ok := b.hist.Redo()
	if !ok {
		return false
	}
	b.applyOp(op)
	b.modified = !bytes.Equal(b.working, b.original)
	b.generation++
	b.nibble = NibbleHigh
	return true
}

// applyOp replays op forward against the working bytes.
func (b *Buffer) applyOp(op history.Op) {
	switch o := op.(type) {
	case history.Single:
		if o.Offset >= 0 && o.Offset < len(b.working) {
			b.working[o.Offset] = o.New
		}
	case history.Range:
		b.writeRange(o.Offset, o.New)
	case history.Insert:
		b.spliceIn(o.Offset, o.Values)
		b.invalidateStructure()
	case history.Delete:
		b.spliceOut(o.Offset, len(o.Values))
		b.invalidateStructure()
	}
}

// revertOp applies op's inverse against the working bytes.
func (b *Buffer) revertOp(op history.Op) {
	switch o := op.(type) {
	case history.Single:
		if o.Offset >= 0 && o.Offset < len(b.working) {
			b.working[o.Offset] = o.Old
		}
	case history.Range:
		b.writeRange(o.Offset, o.Old)
	case history.Insert:
		b.spliceOut(o.Offset, len(o.Values))
		b.invalidateStructure()
	case history.Delete:
		b.spliceIn(o.Offset, o.Values)
		b.invalidateStructure()
	}
}
