package printer

import (
	"io"

	"github.com/joshuapare/bendkit/internal/buf"
)

const (
	// DefaultBytesPerRow matches the classic hexdump width.
	DefaultBytesPerRow = 16

	// groupWidth is the byte count between extra column gaps.
	groupWidth = 8
)

// Format specifies the output format for dumps.
type Format string

const (
	// FormatText outputs aligned hexdump rows.
	FormatText Format = "text"

	// FormatJSON outputs one JSON document with a rows array.
	FormatJSON Format = "json"
)

// Options controls dump rendering.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// BytesPerRow is the number of bytes rendered per row.
	// Default: 16
	BytesPerRow int

	// Uppercase renders hex digits as A-F instead of a-f.
	// Default: false
	Uppercase bool

	// ShowASCII includes the printable-character column.
	// Default: true
	ShowASCII bool

	// ShowOffsets includes the leading offset column (text format only;
	// JSON rows always carry their offset).
	// Default: true
	ShowOffsets bool

	// BaseOffset is added to every displayed offset, for dumping a
	// window of a larger file under its true addresses.
	// Default: 0
	BaseOffset int
}

// DefaultOptions returns sensible defaults for dumping.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		BytesPerRow: DefaultBytesPerRow,
		Uppercase:   false,
		ShowASCII:   true,
		ShowOffsets: true,
		BaseOffset:  0,
	}
}

// Printer renders byte dumps to a writer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(data)
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a Printer. A zero BytesPerRow falls back to the default.
func New(w io.Writer, opts Options) *Printer {
	if opts.BytesPerRow <= 0 {
		opts.BytesPerRow = DefaultBytesPerRow
	}
	return &Printer{writer: w, opts: opts}
}

// Print dumps all of data.
func (p *Printer) Print(data []byte) error {
	return p.PrintRange(data, 0, len(data))
}

// PrintRange dumps length bytes of data starting at offset, clamped to
// the slice. length <= 0 means through the end of data.
func (p *Printer) PrintRange(data []byte, offset, length int) error {
	if length <= 0 {
		length = len(data) - offset
	}
	start, end := buf.ClampRange(offset, offset+length, len(data))

	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(data, start, end)
	default:
		return p.printText(data, start, end)
	}
}

// rowSpan is one dump row before formatting.
type rowSpan struct {
	offset int
	data   []byte
}

// splitRows cuts [start, end) into perRow-sized spans.
func splitRows(data []byte, start, end, perRow int) []rowSpan {
	rows := make([]rowSpan, 0, (end-start+perRow-1)/perRow)
	for off := start; off < end; off += perRow {
		stop := off + perRow
		if stop > end {
			stop = end
		}
		rows = append(rows, rowSpan{offset: off, data: data[off:stop]})
	}
	return rows
}
