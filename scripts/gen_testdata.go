package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// Generates the deterministic sample binaries used for manual QA of the
// editor hosts. The same seed always produces the same bytes, so saved
// editing sessions stay comparable across runs.

var (
	outDir = flag.String("out", "testdata/samples", "Output directory for generated files")
	size   = flag.Int("size", 4096, "Payload size in bytes for the larger samples")
	seed   = flag.Int64("seed", 1, "PRNG seed for the noise sample")
	quiet  = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	files := []struct {
		name string
		data []byte
	}{
		{"gradient.bin", gradient(*size)},
		{"noise.bin", noise(*size, *seed)},
		{"bitmap.bin", fakeBitmap(64, 64)},
		{"chunks.bin", chunked()},
	}

	for _, f := range files {
		path := filepath.Join(*outDir, f.name)
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
			os.Exit(1)
		}
		if !*quiet {
			fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", path, len(f.data))
		}
	}
}

// gradient is every byte value in sequence, repeated to size. Edits and
// selections are easy to spot because each offset predicts its value.
func gradient(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// noise is seeded random bytes for entropy and search stress QA.
func noise(size int, seed int64) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(rng.Intn(256))
	}
	return data
}

// fakeBitmap is a minimal BMP with a gradient pixel field. Glitching it
// in an image viewer shows bends immediately; the 54-byte header is the
// part worth protecting.
func fakeBitmap(w, h int) []byte {
	rowSize := (w*3 + 3) &^ 3 // rows pad to 4 bytes
	pixels := rowSize * h
	total := 54 + pixels

	data := make([]byte, total)
	copy(data, "BM")
	putU32 := func(off int, v uint32) {
		data[off] = byte(v)
		data[off+1] = byte(v >> 8)
		data[off+2] = byte(v >> 16)
		data[off+3] = byte(v >> 24)
	}
	putU32(2, uint32(total))
	putU32(10, 54)        // pixel data offset
	putU32(14, 40)        // BITMAPINFOHEADER size
	putU32(18, uint32(w)) // width
	putU32(22, uint32(h)) // height
	data[26] = 1          // planes
	data[28] = 24         // bits per pixel
	putU32(34, uint32(pixels))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := 54 + y*rowSize + x*3
			data[off] = byte(x * 4)   // blue
			data[off+1] = byte(y * 4) // green
			data[off+2] = byte(x ^ y) // red
		}
	}
	return data
}

// chunked is a small RIFF-style file with repeated four-byte markers,
// mixed printable and raw regions. Good for wildcard search, replace,
// and bookmark QA.
func chunked() []byte {
	var data []byte
	appendChunk := func(tag string, payload []byte) {
		data = append(data, tag...)
		data = append(data, byte(len(payload)), 0, 0, 0)
		data = append(data, payload...)
	}

	appendChunk("RIFF", []byte("WAVE"))
	appendChunk("fmt ", []byte{0x01, 0x00, 0x02, 0x00, 0x44, 0xAC, 0x00, 0x00})
	appendChunk("data", gradient(96))
	appendChunk("LIST", []byte("INFOISFTbendkit sample"))
	appendChunk("RIFF", []byte("AVI "))
	return data
}
