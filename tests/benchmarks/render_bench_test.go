package benchmarks

import (
	"testing"

	"github.com/joshuapare/bendkit/buffer/printer"
	"github.com/joshuapare/bendkit/pkg/bend"
)

// BenchmarkDumpRows measures formatting a whole buffer into hexdump
// rows, the unit of work behind both the dump command and diffing.
func BenchmarkDumpRows(b *testing.B) {
	for _, bf := range BenchmarkBuffers {
		b.Run(bf.Name, func(b *testing.B) {
			data := gradientData(bf.Size)
			opts := printer.DefaultOptions()

			var rows []string

			b.ReportAllocs()
			b.SetBytes(int64(bf.Size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				rows = printer.Rows(data, opts)
			}

			benchRows = rows
		})
	}
}

// BenchmarkUnifiedDiff measures diffing two buffer states that differ
// in one 16-byte span, the common case of reviewing a short editing
// pass.
func BenchmarkUnifiedDiff(b *testing.B) {
	for _, bf := range BenchmarkBuffers {
		b.Run(bf.Name, func(b *testing.B) {
			original := gradientData(bf.Size)
			working := gradientData(bf.Size)
			for i := range 16 {
				working[bf.Size/2+i] = 0xFF
			}

			var patch string

			b.ReportAllocs()
			b.SetBytes(int64(bf.Size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				var err error
				patch, err = bend.UnifiedDiff("original", "working", original, working, bend.DiffOptions{})
				if err != nil {
					b.Fatalf("UnifiedDiff failed: %v", err)
				}
			}

			benchPatch = patch
		})
	}
}
