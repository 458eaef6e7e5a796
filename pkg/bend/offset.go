package bend

import (
	"strconv"
	"strings"

	"github.com/joshuapare/bendkit/pkg/types"
)

// ParseOffset converts user-typed offset text to a byte offset. Plain
// digits parse as decimal; a 0x or 0X prefix parses the rest as hex
// (digit case does not matter). Surrounding whitespace is trimmed.
// Empty input, a bare "0x", and non-numeric text are parse errors.
func ParseOffset(text string) (int, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, types.ParseError("empty offset")
	}

	base := 10
	digits := t
	if len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		base = 16
		digits = t[2:]
		if digits == "" {
			return 0, types.ParseError("hex offset has no digits")
		}
	}

	v, err := strconv.ParseUint(digits, base, 63)
	if err != nil {
		return 0, types.ParseError("invalid offset " + strconv.Quote(t))
	}
	return int(v), nil
}
