package search

import (
	"fmt"

	"github.com/joshuapare/bendkit/pkg/types"
)

// Target is the byte sink a replacement writes through. The owning
// buffer implements it, so replacements land in edit history and bump
// the generation like any other edit.
type Target interface {
	// EditBytes overwrites values at offset, clamped to the buffer.
	EditBytes(offset int, values []byte)
}

// ReplaceCurrent overwrites the current match with replacement, parsed
// per the session mode. The replacement byte width must equal the
// pattern width; a mismatch is an error, never a truncation.
func ReplaceCurrent(s *Session, t Target, replacement string) error {
	repl, err := s.parseReplacement(replacement)
	if err != nil {
		return err
	}
	off, ok := s.CurrentMatchOffset()
	if !ok {
		if !s.searched {
			return types.ErrNoSearch
		}
		return types.ErrNoMatch
	}
	t.EditBytes(off, repl)
	return nil
}

// ReplaceAll overwrites every recorded match with replacement and
// returns the number of sites written. Fixed-width replacement never
// shifts later match offsets, so the recorded offsets apply as-is
// without rescanning.
func ReplaceAll(s *Session, t Target, replacement string) (int, error) {
	repl, err := s.parseReplacement(replacement)
	if err != nil {
		return 0, err
	}
	if !s.searched {
		return 0, types.ErrNoSearch
	}
	if len(s.matches) == 0 {
		return 0, types.ErrNoMatch
	}
	for _, off := range s.matches {
		t.EditBytes(off, repl)
	}
	return len(s.matches), nil
}

// parseReplacement converts replacement text to bytes per the session
// mode and enforces the fixed-width rule against the executed pattern.
func (s *Session) parseReplacement(text string) ([]byte, error) {
	var repl []byte
	switch s.Mode {
	case ModeASCII:
		repl = []byte(text)
	default:
		b, err := ParseHexReplacement(text)
		if err != nil {
			return nil, err
		}
		repl = b
	}
	if s.searched && len(repl) != s.patternLen {
		return nil, &types.Error{
			Kind: types.ErrKindPolicy,
			Msg:  fmt.Sprintf("pattern is %d bytes, replacement is %d", s.patternLen, len(repl)),
			Err:  types.ErrLengthMismatch,
		}
	}
	return repl, nil
}
