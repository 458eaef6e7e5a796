// Package savepoint maintains a chain of named snapshots of the working
// buffer, each stored as an incremental byte diff against the previous
// checkpoint.
//
// The chain is append-only except at the leaf. Restoring a snapshot
// replays every diff from the base state in chain order, which trades
// restore cost for not caching full historical copies. Diffs use
// absolute offsets, so the owner must clear the chain whenever the
// buffer length changes.
package savepoint
