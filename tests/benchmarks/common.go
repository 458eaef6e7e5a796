// Package benchmarks measures the editing engine's hot paths across
// representative buffer sizes.
package benchmarks

import "bytes"

// BenchmarkBuffers defines the buffer sizes used across benchmarks
// Includes small, medium, and large payloads for scaling comparison.
var BenchmarkBuffers = []struct {
	Name     string // Short name for benchmark output
	Size     int    // Buffer length in bytes
	SizeDesc string // Human-readable size description
}{
	{
		Name:     "small",
		Size:     4 << 10,
		SizeDesc: "4 KiB, about one screenful",
	},
	{
		Name:     "medium",
		Size:     256 << 10,
		SizeDesc: "256 KiB, small media asset",
	},
	{
		Name:     "large",
		Size:     4 << 20,
		SizeDesc: "4 MiB, typical bitmap",
	},
}

// gradientData builds a deterministic ascending-byte payload.
func gradientData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// taggedData builds a gradient payload with a "DEAD" marker every KiB,
// so search and replace benchmarks always have sites to find. The
// ascending gradient can never produce the marker sequence on its own.
func taggedData(size int) []byte {
	data := gradientData(size)
	for off := 0; off+4 <= size; off += 1024 {
		copy(data[off:], "DEAD")
	}
	return data
}

// proseData builds printable ASCII text of the requested size for
// text-mode search benchmarks.
func proseData(size int) []byte {
	const sentence = "The quick brown fox jumps over the lazy dog. "
	data := bytes.Repeat([]byte(sentence), size/len(sentence)+1)
	return data[:size]
}

// Prevent compiler optimizations from eliminating benchmark code
// These variables are written to by benchmarks to ensure operations aren't optimized away.
var (
	benchBool    bool
	benchInt     int
	benchID      int
	benchMatches []int
	benchRows    []string
	benchPatch   string
)
