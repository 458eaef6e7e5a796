// Package bytetext maps raw buffer bytes to and from the characters a
// host renders in its text column. Bytes 0x20-0x7E are ASCII and map to
// themselves; bytes 0x80-0xFF go through the Windows-1252 table, which
// is what most files produced on Windows actually contain.
package bytetext

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// Placeholder is the glyph shown for bytes with no printable mapping.
const Placeholder = '.'

// IsPrintASCII reports whether b is in the printable ASCII range.
func IsPrintASCII(b byte) bool {
	return b >= 0x20 && b <= 0x7e
}

// DisplayRune returns the glyph a text column shows for b. Printable
// ASCII maps to itself, extended bytes decode via Windows-1252, and
// anything without a graphic mapping collapses to Placeholder.
func DisplayRune(b byte) rune {
	if IsPrintASCII(b) {
		return rune(b)
	}
	if b < 0x80 {
		return Placeholder
	}
	r := charmap.Windows1252.DecodeByte(b)
	if !unicode.IsGraphic(r) {
		return Placeholder
	}
	return r
}

// DisplayString renders p as one text-column row.
func DisplayString(p []byte) string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, b := range p {
		sb.WriteRune(DisplayRune(b))
	}
	return sb.String()
}

// EncodeRune converts a typed character back to the byte it occupies in
// the buffer. ok is false for runes outside Windows-1252.
func EncodeRune(r rune) (byte, bool) {
	if r >= 0x20 && r <= 0x7e {
		return byte(r), true
	}
	return charmap.Windows1252.EncodeRune(r)
}
