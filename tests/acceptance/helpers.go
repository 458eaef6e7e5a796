package acceptance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bendkit/buffer"
	"github.com/joshuapare/bendkit/buffer/history"
)

// writeTempFile writes data under the test's temp dir and returns the path.
func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644), "Failed to write fixture: %s", path)
	return path
}

// snapshot copies the working bytes so later edits can't alias the copy.
func snapshot(buf *buffer.Buffer) []byte {
	return append([]byte(nil), buf.Working()...)
}

// fakeClock is an adjustable clock for deterministic coalescing tests.
// Advance moves time forward; the zero value starts at a fixed instant.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// clockedOptions wires the fake clock into buffer options.
func clockedOptions(clock *fakeClock) buffer.Options {
	return buffer.Options{History: history.Options{Now: clock.Now}}
}
