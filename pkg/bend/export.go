package bend

import (
	"os"
	"path/filepath"

	"github.com/joshuapare/bendkit/internal/filesync"
	"github.com/joshuapare/bendkit/pkg/types"
)

// ExportOptions controls how Export writes bytes out.
type ExportOptions struct {
	// Mode is the permission bits for a newly created target.
	// Default: 0644.
	Mode os.FileMode

	// FullSync requests the strongest flush the platform offers
	// (F_FULLFSYNC on Darwin) instead of a data-only sync.
	// Default: false.
	FullSync bool

	// NoSync skips the durability flush entirely. Only sensible for
	// scratch output where a torn write costs nothing.
	// Default: false.
	NoSync bool
}

// Export writes data to path atomically: temp file in the same
// directory, durable sync, then rename over the target. A crash at any
// point leaves either the old file or the new one, never a torn mix.
func Export(path string, data []byte, opts ExportOptions) error {
	mode := opts.Mode
	if mode == 0 {
		mode = 0o644
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bendkit-tmp-*")
	if err != nil {
		return types.IOError("create temp file", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return types.IOError("write temp file", err)
	}
	if !opts.NoSync {
		if err := filesync.Sync(tmp, opts.FullSync); err != nil {
			return types.IOError("sync temp file", err)
		}
	}
	if err := tmp.Chmod(mode); err != nil {
		return types.IOError("chmod temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return types.IOError("close temp file", err)
	}
	tmp = nil // rename owns the file now; skip the deferred cleanup

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return types.IOError("rename temp file", err)
	}
	return nil
}
