package bend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCopiesBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	b := Open(src)

	src[0] = 9
	assert.Equal(t, byte(1), b.Working()[0], "buffer aliases caller slice")
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.bin")
	data := []byte{0x00, 0x11, 0x22, 0x33, 0x44}
	require.NoError(t, os.WriteFile(path, data, 0o644))

	b, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, b.Working())
	assert.Equal(t, data, b.Original())
	assert.False(t, b.IsModified())

	// The buffer must stay usable after the source file disappears.
	require.NoError(t, os.Remove(path))
	b.EditByte(0, 0xFF)
	assert.Equal(t, byte(0xFF), b.Working()[0])
}

func TestOpenFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	b, err := OpenFile(path)
	require.NoError(t, err)
	assert.Zero(t, b.Len())
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}

func TestExportWorkingRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bin")
	out := filepath.Join(dir, "out.bin")
	require.NoError(t, os.WriteFile(in, []byte{0x10, 0x20, 0x30}, 0o644))

	b, err := OpenFile(in)
	require.NoError(t, err)
	b.EditByte(1, 0xEE)
	require.NoError(t, Export(out, b.Working(), ExportOptions{}))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0xEE, 0x30}, got)

	// The source file is untouched.
	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x20, 0x30}, orig)
}
