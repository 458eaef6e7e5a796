package benchmarks

import (
	"testing"

	"github.com/joshuapare/bendkit/pkg/bend"
)

// BenchmarkEditByte measures single-byte overwrites at scattered
// offsets. The stride keeps consecutive writes non-adjacent so every
// write lands as its own history entry.
func BenchmarkEditByte(b *testing.B) {
	for _, bf := range BenchmarkBuffers {
		b.Run(bf.Name, func(b *testing.B) {
			buf := bend.Open(gradientData(bf.Size))

			b.ReportAllocs()
			b.ResetTimer()

			for i := range b.N {
				buf.EditByte((i*7)%bf.Size, byte(i))
			}

			benchBool = buf.IsModified()
		})
	}
}

// BenchmarkNibbleTyping measures a sustained hex typing burst: two
// keystrokes complete each byte and the cursor walks forward, so the
// history coalesces the run the way it does under an interactive
// editor.
func BenchmarkNibbleTyping(b *testing.B) {
	for _, bf := range BenchmarkBuffers {
		b.Run(bf.Name, func(b *testing.B) {
			buf := bend.Open(gradientData(bf.Size))

			var ok bool

			b.ReportAllocs()
			b.ResetTimer()

			for i := range b.N {
				if buf.Cursor() >= bf.Size-1 {
					buf.SetCursor(0)
				}
				buf.EditNibble(byte(i) & 0x0F)
				ok = buf.EditNibble(byte(i+1) & 0x0F)
			}

			benchBool = ok
		})
	}
}

// BenchmarkInsertDelete measures one structural round trip per
// iteration: splice a patch into the middle, then splice it back out.
// Both operations invalidate save points and move the tail of the
// buffer.
func BenchmarkInsertDelete(b *testing.B) {
	patch := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	for _, bf := range BenchmarkBuffers {
		b.Run(bf.Name, func(b *testing.B) {
			buf := bend.Open(gradientData(bf.Size))
			mid := bf.Size / 2

			b.ReportAllocs()
			b.SetBytes(int64(bf.Size))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf.InsertBytes(mid, patch)
				buf.DeleteBytes(mid, len(patch))
			}

			benchInt = buf.Len()
		})
	}
}

// BenchmarkUndoRedo measures one undo plus one redo per iteration
// against a prepared stack of scattered single-byte edits. Each pass
// leaves the stack where it found it.
func BenchmarkUndoRedo(b *testing.B) {
	for _, bf := range BenchmarkBuffers {
		b.Run(bf.Name, func(b *testing.B) {
			buf := bend.Open(gradientData(bf.Size))
			for j := range 256 {
				buf.EditByte((j*3)%bf.Size, byte(j+1))
			}

			var ok bool

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				buf.Undo()
				ok = buf.Redo()
			}

			benchBool = ok
		})
	}
}
