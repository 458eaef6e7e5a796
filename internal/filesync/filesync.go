// Package filesync provides durable flush of written files across
// platforms. Exports pick the cheapest primitive that still guarantees
// the data reaches stable storage.
package filesync

import "os"

// Sync flushes f's data to disk. On platforms with a data-only sync
// (fdatasync) that is used instead of a full fsync. full requests the
// strongest flush the platform offers (F_FULLFSYNC on Darwin, which
// pushes past the drive cache); it is ignored elsewhere.
func Sync(f *os.File, full bool) error {
	return fdatasync(f, full)
}
