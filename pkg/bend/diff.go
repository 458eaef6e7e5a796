package bend

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/joshuapare/bendkit/buffer/printer"
)

// DiffOptions controls unified diff rendering.
type DiffOptions struct {
	// BytesPerRow is the hexdump row width the diff lines use.
	// Default: 16.
	BytesPerRow int

	// Context is the number of unchanged rows shown around each hunk.
	// Default: 3.
	Context int

	// Uppercase renders hex digits as A-F.
	// Default: false.
	Uppercase bool
}

// UnifiedDiff renders a and b as hexdump rows and returns a classic
// unified patch between them (---/+++ headers, @@ hunks). Because each
// line is one fixed-width row, hunk positions read directly as byte
// offsets: row N starts at N*BytesPerRow.
//
// An empty return means the two states render identically.
func UnifiedDiff(aName, bName string, a, b []byte, opts DiffOptions) (string, error) {
	popts := printer.Options{
		Format:      printer.FormatText,
		BytesPerRow: opts.BytesPerRow,
		Uppercase:   opts.Uppercase,
		ShowASCII:   true,
		ShowOffsets: true,
	}
	ctx := opts.Context
	if ctx <= 0 {
		ctx = 3
	}

	u := difflib.UnifiedDiff{
		A:        terminated(printer.Rows(a, popts)),
		B:        terminated(printer.Rows(b, popts)),
		FromFile: aName,
		ToFile:   bName,
		Context:  ctx,
	}
	return difflib.GetUnifiedDiffString(u)
}

// terminated appends the trailing newline difflib expects on every
// line.
func terminated(rows []string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r + "\n"
	}
	return out
}
