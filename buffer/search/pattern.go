package search

import (
	"fmt"

	"github.com/joshuapare/bendkit/pkg/types"
)

// PatternElement is one position of a parsed hex pattern: a concrete
// byte value, or a wildcard that matches any byte.
type PatternElement struct {
	Wildcard bool
	Value    byte
}

// ParseHexPattern tokenizes text into pattern elements. Consecutive hex
// digit pairs become concrete bytes; "??" or a lone "?" becomes a
// wildcard. Whitespace is skipped anywhere, including inside a digit
// pair, so "DE AD", "DEAD" and "D EAD" all parse to the same bytes.
func ParseHexPattern(text string) ([]PatternElement, error) {
	var (
		out        []PatternElement
		pendingHi  byte
		havePending bool
	)
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c == '?':
			if havePending {
				return nil, types.ParseError(fmt.Sprintf("incomplete hex byte before wildcard at position %d", i))
			}
			if i+1 < len(text) && text[i+1] == '?' {
				i++
			}
			out = append(out, PatternElement{Wildcard: true})
		default:
			v, ok := hexDigit(c)
			if !ok {
				return nil, types.ParseError(fmt.Sprintf("invalid character %q in hex pattern", rune(c)))
			}
			if havePending {
				out = append(out, PatternElement{Value: pendingHi<<4 | v})
				havePending = false
			} else {
				pendingHi = v
				havePending = true
			}
		}
	}
	if havePending {
		return nil, types.ParseError("odd trailing hex digit in pattern")
	}
	if len(out) == 0 {
		return nil, types.ParseError("empty search pattern")
	}
	return out, nil
}

// ParseHexReplacement parses text with the same syntax as
// ParseHexPattern but rejects wildcards: a replacement must spell every
// byte it writes.
func ParseHexReplacement(text string) ([]byte, error) {
	elems, err := ParseHexPattern(text)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(elems))
	for i, e := range elems {
		if e.Wildcard {
			return nil, types.ErrWildcardReplace
		}
		out[i] = e.Value
	}
	return out, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
