//go:build !linux && !freebsd && !darwin && !windows

package filesync

import "os"

// fdatasync falls back to a portable full fsync.
func fdatasync(f *os.File, _ bool) error {
	return f.Sync()
}
