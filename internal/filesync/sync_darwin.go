//go:build darwin

package filesync

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync performs file descriptor sync.
//
// macOS has no fdatasync; regular fsync only reaches the drive cache.
// When full is set, F_FULLFSYNC forces the write to the physical disk.
func fdatasync(f *os.File, full bool) error {
	if full {
		_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
		return err
	}
	return unix.Fsync(int(f.Fd()))
}
