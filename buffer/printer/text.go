package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/bendkit/internal/bytetext"
)

// Rows renders data as formatted text rows without writing them out.
// Diff rendering compares these row strings line by line.
func Rows(data []byte, opts Options) []string {
	if opts.BytesPerRow <= 0 {
		opts.BytesPerRow = DefaultBytesPerRow
	}
	p := &Printer{opts: opts}
	spans := splitRows(data, 0, len(data), opts.BytesPerRow)
	out := make([]string, len(spans))
	for i, row := range spans {
		out[i] = p.formatRow(row)
	}
	return out
}

// printText writes [start, end) as aligned hexdump rows.
func (p *Printer) printText(data []byte, start, end int) error {
	for _, row := range splitRows(data, start, end, p.opts.BytesPerRow) {
		if _, err := fmt.Fprintln(p.writer, p.formatRow(row)); err != nil {
			return err
		}
	}
	return nil
}

// formatRow renders one text row. Partial rows pad the hex area so the
// ASCII column stays aligned across the dump.
func (p *Printer) formatRow(row rowSpan) string {
	var sb strings.Builder
	if p.opts.ShowOffsets {
		sb.WriteString(p.formatOffset(row.offset + p.opts.BaseOffset))
		sb.WriteString("  ")
	}

	digits := "0123456789abcdef"
	if p.opts.Uppercase {
		digits = "0123456789ABCDEF"
	}
	written := 0
	for i, c := range row.data {
		if i > 0 {
			sb.WriteByte(' ')
			written++
			if i%groupWidth == 0 {
				sb.WriteByte(' ')
				written++
			}
		}
		sb.WriteByte(digits[c>>4])
		sb.WriteByte(digits[c&0x0F])
		written += 2
	}

	if p.opts.ShowASCII {
		for written < hexWidth(p.opts.BytesPerRow) {
			sb.WriteByte(' ')
			written++
		}
		sb.WriteString("  |")
		sb.WriteString(asciiColumn(row.data))
		sb.WriteByte('|')
	}
	return sb.String()
}

// hexWidth is the full hex-area width for a complete row of n bytes:
// two digits per byte, one separator between bytes, one extra gap per
// group boundary.
func hexWidth(n int) int {
	if n <= 0 {
		return 0
	}
	return n*3 - 1 + (n-1)/groupWidth
}

func (p *Printer) formatOffset(off int) string {
	if p.opts.Uppercase {
		return fmt.Sprintf("%08X", off)
	}
	return fmt.Sprintf("%08x", off)
}

// asciiColumn renders the printable view of row bytes, one character
// per byte.
func asciiColumn(row []byte) string {
	var sb strings.Builder
	sb.Grow(len(row))
	for _, c := range row {
		if bytetext.IsPrintASCII(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte(bytetext.Placeholder)
		}
	}
	return sb.String()
}
