package filesync

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{0xde, 0xad, 0xbe, 0xef}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Sync(f, false); err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if err := Sync(f, true); err != nil {
		t.Fatalf("Sync full: %v", err)
	}
}
