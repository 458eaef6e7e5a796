// Package history records reversible edit operations and serves them
// back for undo and redo.
//
// The log keeps two stacks of operations. Pushing a new operation
// always clears the redo stack, so history is linear. Single-byte
// overwrites that land close together in time and space coalesce into
// one entry, so a burst of keystroke-level edits undoes as one step.
// The undo stack is bounded; the oldest entries are evicted once the
// cap is exceeded.
//
// The log never touches buffer contents. Undo and Redo hand the popped
// operation back to the caller, which applies or reverts it.
package history
