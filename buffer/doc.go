// Package buffer implements the editable byte store at the center of
// the engine.
//
// # Overview
//
// A Buffer owns two byte sequences: the original bytes captured at
// construction (never mutated) and the working bytes all edits apply
// to. Alongside the bytes it tracks the cursor, the pending nibble
// half, the selection, the edit mode (hex or ASCII), the write mode
// (overwrite or insert), a modified flag, and a generation counter that
// increments on every value or structural change.
//
// All mutation passes through the Buffer. Reversible operations are
// recorded into a bounded, coalescing history log (see
// buffer/history); undo and redo replay them. Named snapshots diff
// against each other in a save-point chain (buffer/savepoint), and
// offset markers live in a bookmark store (buffer/bookmark). Pattern
// matching over the working bytes is provided by buffer/search.
//
// # Edge behavior
//
// Mutators clamp or ignore out-of-range input instead of erroring:
// out-of-bounds edits are normal events in an interactive editor, not
// faults. Policy violations (fixed-width replacement mismatch,
// deleting a non-leaf save point) surface as explicit errors or false
// returns, never panics.
//
// # Concurrency
//
// NOT thread-safe. Every component assumes a single logical owner; the
// host serializes all calls, in practice via its UI event loop. The
// generation counter is the only staleness mechanism: derived data
// (search matches, structure views) records the generation it was
// computed at and compares it later.
package buffer
