//go:build windows

package mmfile

import (
	"os"
)

// Map reads the entire file on Windows; the view-mapping API is not
// worth the handle bookkeeping for a read-once load path.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
