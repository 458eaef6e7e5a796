//go:build windows

package filesync

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync performs file descriptor sync using FlushFileBuffers, which
// writes all file data and metadata to disk. full is ignored on Windows.
func fdatasync(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
