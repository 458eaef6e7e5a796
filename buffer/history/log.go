package history

import "time"

const (
	// DefaultMaxEntries bounds the undo stack. Oldest entries are
	// evicted once the cap is exceeded.
	DefaultMaxEntries = 1000

	// DefaultCoalesceWindow is the maximum gap between two pushes that
	// still merges adjacent single-byte edits into one undo step.
	DefaultCoalesceWindow = 500 * time.Millisecond
)

// Options configures a Log. The zero value selects the defaults.
type Options struct {
	// MaxEntries caps the undo stack length. Zero or negative selects
	// DefaultMaxEntries.
	MaxEntries int

	// CoalesceWindow is the push-to-push gap within which single-byte
	// edits coalesce. Zero or negative selects DefaultCoalesceWindow.
	CoalesceWindow time.Duration

	// Now supplies timestamps for the coalescing window. Nil selects
	// time.Now. Tests inject a fake clock here.
	Now func() time.Time
}

// Log is the undo/redo operation log for one buffer.
//
// NOT thread-safe. The owning buffer serializes access.
type Log struct {
	maxEntries int
	window     time.Duration
	now        func() time.Time

	undo []Op
	redo []Op

	lastPush time.Time
	hasLast  bool
}

// New creates a Log with the given options.
func New(opts Options) *Log {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	if opts.CoalesceWindow <= 0 {
		opts.CoalesceWindow = DefaultCoalesceWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Log{
		maxEntries: opts.MaxEntries,
		window:     opts.CoalesceWindow,
		now:        opts.Now,
	}
}

// Push records op as the newest undoable operation and clears the redo
// stack.
//
// A Single pushed within the coalescing window of the previous push
// merges with a trailing Single or Range entry when their spans touch:
//
//  1. Same offset as a trailing Single: collapse, keeping the first
//     old value and the latest new value.
//  2. Offset adjacent to a trailing Single: merge both into a Range
//     ordered by offset.
//  3. Offset adjacent to or inside a trailing Range: extend the Range
//     or update its new bytes in place.
//
// Insert and Delete never coalesce in either direction; structural
// operations must stay individually reversible.
func (l *Log) Push(op Op) {
	l.redo = l.redo[:0]
	now := l.now()

	if s, ok := op.(Single); ok && len(l.undo) > 0 && l.hasLast && now.Sub(l.lastPush) <= l.window {
		if l.coalesce(s) {
			l.lastPush = now
			l.hasLast = true
			return
		}
	}

	l.undo = append(l.undo, op)
	if n := len(l.undo) - l.maxEntries; n > 0 {
		l.undo = append(l.undo[:0], l.undo[n:]...)
	}
	l.lastPush = now
	l.hasLast = true
}

// coalesce tries to merge s into the newest undo entry. Reports whether
// the merge happened.
func (l *Log) coalesce(s Single) bool {
	top := len(l.undo) - 1
	switch last := l.undo[top].(type) {
	case Single:
		switch s.Offset {
		case last.Offset:
			// Net effect: first old, latest new.
			l.undo[top] = Single{Offset: last.Offset, Old: last.Old, New: s.New}
			return true
		case last.Offset + 1:
			l.undo[top] = Range{
				Offset: last.Offset,
				Old:    []byte{last.Old, s.Old},
				New:    []byte{last.New, s.New},
			}
			return true
		case last.Offset - 1:
			l.undo[top] = Range{
				Offset: s.Offset,
				Old:    []byte{s.Old, last.Old},
				New:    []byte{s.New, last.New},
			}
			return true
		}
	case Range:
		end := last.Offset + len(last.Old)
		switch {
		case s.Offset == end:
			last.Old = append(last.Old, s.Old)
			last.New = append(last.New, s.New)
			l.undo[top] = last
			return true
		case s.Offset == last.Offset-1:
			last.Old = append([]byte{s.Old}, last.Old...)
			last.New = append([]byte{s.New}, last.New...)
			last.Offset = s.Offset
			l.undo[top] = last
			return true
		case s.Offset >= last.Offset && s.Offset < end:
			// Re-edit inside the span: the first old value is already
			// recorded, only the latest new value matters.
			last.New[s.Offset-last.Offset] = s.New
			return true
		}
	}
	return false
}

// Undo pops the newest operation, moves it to the redo stack, and
// returns it for the caller to revert. ok is false when the undo stack
// is empty.
func (l *Log) Undo() (op Op, ok bool) {
	if len(l.undo) == 0 {
		return nil, false
	}
	op = l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, op)
	// The next push must start a fresh undo step.
	l.hasLast = false
	return op, true
}

// Redo pops the newest undone operation, moves it back to the undo
// stack, and returns it for the caller to re-apply. ok is false when
// the redo stack is empty.
func (l *Log) Redo() (op Op, ok bool) {
	if len(l.redo) == 0 {
		return nil, false
	}
	op = l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, op)
	l.hasLast = false
	return op, true
}

// CanUndo reports whether an operation is available to undo.
func (l *Log) CanUndo() bool {
	return len(l.undo) > 0
}

// CanRedo reports whether an operation is available to redo.
func (l *Log) CanRedo() bool {
	return len(l.redo) > 0
}

// UndoCount returns the number of undoable operations.
func (l *Log) UndoCount() int {
	return len(l.undo)
}

// RedoCount returns the number of redoable operations.
func (l *Log) RedoCount() int {
	return len(l.redo)
}
