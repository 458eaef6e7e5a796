package search

import (
	"sort"

	"github.com/joshuapare/bendkit/pkg/types"
)

// Mode selects how a session's query string is interpreted.
type Mode int

const (
	// ModeHex parses the query as hex digit pairs with ?? wildcards.
	ModeHex Mode = iota
	// ModeASCII treats the query as literal bytes.
	ModeASCII
)

func (m Mode) String() string {
	if m == ModeASCII {
		return "ascii"
	}
	return "hex"
}

// Session holds one search's query tuple and its results. The host owns
// the value: it edits Query/Mode/CaseSensitive directly and calls
// Execute to (re)compute matches. Results stay put until the next
// Execute; use MatchesMayBeStale to detect that they may no longer
// describe the live buffer.
//
// NOT thread-safe. The owning host serializes access.
type Session struct {
	Query         string
	Mode          Mode
	CaseSensitive bool

	matches    []int
	current    int // index into matches, -1 when none
	patternLen int

	searched      bool
	searchedQuery string
	searchedMode  Mode
	searchedCase  bool
	searchedGen   uint64
}

// Execute clears prior results and runs the session's query against
// data. generation is the buffer generation data was read at; it is
// recorded for staleness checks. On a parse error the session is left
// with no matches and the error is returned for display.
func (s *Session) Execute(data []byte, generation uint64) error {
	s.matches = nil
	s.current = -1
	s.patternLen = 0
	s.searched = false

	switch s.Mode {
	case ModeASCII:
		if len(s.Query) == 0 {
			return types.ParseError("empty search pattern")
		}
		s.matches = SearchASCII(data, s.Query, s.CaseSensitive)
		s.patternLen = len(s.Query)
	default:
		pattern, err := ParseHexPattern(s.Query)
		if err != nil {
			return err
		}
		s.matches = SearchHex(data, pattern)
		s.patternLen = len(pattern)
	}

	s.searched = true
	s.searchedQuery = s.Query
	s.searchedMode = s.Mode
	s.searchedCase = s.CaseSensitive
	s.searchedGen = generation
	if len(s.matches) > 0 {
		s.current = 0
	}
	return nil
}

// Executed reports whether a search has run on this session.
func (s *Session) Executed() bool {
	return s.searched
}

// Matches returns a copy of the recorded match offsets, ascending.
func (s *Session) Matches() []int {
	out := make([]int, len(s.matches))
	copy(out, s.matches)
	return out
}

// MatchCount returns the number of recorded matches.
func (s *Session) MatchCount() int {
	return len(s.matches)
}

// HasMatches reports whether the last Execute found anything.
func (s *Session) HasMatches() bool {
	return len(s.matches) > 0
}

// PatternLength returns the byte width of the last executed pattern.
func (s *Session) PatternLength() int {
	return s.patternLen
}

// NextMatch advances the navigation cursor cyclically and returns the
// new current match offset. ok is false when there are no matches.
func (s *Session) NextMatch() (offset int, ok bool) {
	if len(s.matches) == 0 {
		return 0, false
	}
	s.current = (s.current + 1) % len(s.matches)
	return s.matches[s.current], true
}

// PrevMatch steps the navigation cursor backwards cyclically and
// returns the new current match offset. ok is false when there are no
// matches.
func (s *Session) PrevMatch() (offset int, ok bool) {
	if len(s.matches) == 0 {
		return 0, false
	}
	s.current--
	if s.current < 0 {
		s.current = len(s.matches) - 1
	}
	return s.matches[s.current], true
}

// CurrentMatchOffset returns the offset of the current match.
func (s *Session) CurrentMatchOffset() (offset int, ok bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return 0, false
	}
	return s.matches[s.current], true
}

// CurrentMatchIndex returns the zero-based position of the current
// match, for "match i of n" style display.
func (s *Session) CurrentMatchIndex() (index int, ok bool) {
	if s.current < 0 || s.current >= len(s.matches) {
		return 0, false
	}
	return s.current, true
}

// IsWithinMatch reports whether offset falls inside any recorded match
// span. Hosts use it to highlight match bytes.
func (s *Session) IsWithinMatch(offset int) bool {
	if len(s.matches) == 0 || s.patternLen == 0 {
		return false
	}
	// Find the last match starting at or before offset.
	i := sort.Search(len(s.matches), func(i int) bool {
		return s.matches[i] > offset
	})
	if i == 0 {
		return false
	}
	return offset < s.matches[i-1]+s.patternLen
}

// MatchesMayBeStale reports whether the recorded matches may no longer
// describe the live buffer: the buffer mutated since the search ran
// (generation differs) or the query tuple was edited without
// re-executing. The session never auto-invalidates; yanking results out
// from under the user mid-navigation is worse than a stale highlight.
func (s *Session) MatchesMayBeStale(generation uint64) bool {
	if !s.searched {
		return false
	}
	return s.searchedGen != generation ||
		s.Query != s.searchedQuery ||
		s.Mode != s.searchedMode ||
		s.CaseSensitive != s.searchedCase
}
