package bend

import (
	"os"

	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/internal/mmfile"
	"github.com/joshuapare/bendkit/pkg/types"
)

// Open creates an editable buffer over an independent copy of data with
// default options. The caller keeps ownership of the slice.
func Open(data []byte) *buffer.Buffer {
	return buffer.New(data)
}

// OpenWithOptions creates an editable buffer over an independent copy
// of data.
func OpenWithOptions(data []byte, opts buffer.Options) *buffer.Buffer {
	return buffer.NewWithOptions(data, opts)
}

// OpenFile loads the file at path into a new editable buffer. The file
// is mapped when the platform supports it (the buffer copies the bytes
// anyway, mapping just avoids a second read-path copy) and released
// before returning; nothing holds the file open afterwards.
func OpenFile(path string) (*buffer.Buffer, error) {
	return OpenFileWithOptions(path, buffer.Options{})
}

// OpenFileWithOptions is OpenFile with buffer options.
func OpenFileWithOptions(path string, opts buffer.Options) (*buffer.Buffer, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, types.IOError("open "+path, err)
	}
	b := buffer.NewWithOptions(data, opts)
	if err := cleanup(); err != nil {
		return nil, types.IOError("unmap "+path, err)
	}
	return b, nil
}

// ReadFile loads the file at path without creating a buffer. Handy for
// the second operand of a diff.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.IOError("read "+path, err)
	}
	return data, nil
}
