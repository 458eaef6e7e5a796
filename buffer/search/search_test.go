package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_SearchHex_Wildcard(t *testing.T) {
	data := []byte{0xFF, 0x00, 0xFF, 0xFF, 0xAB, 0xFF}
	pattern, err := ParseHexPattern("FF ?? FF")
	require.NoError(t, err)

	require.Equal(t, []int{0, 3}, SearchHex(data, pattern))
}

func Test_SearchHex_Overlapping(t *testing.T) {
	data := []byte{0xAA, 0xAA, 0xAA}
	pattern, err := ParseHexPattern("AA AA")
	require.NoError(t, err)

	require.Equal(t, []int{0, 1}, SearchHex(data, pattern))
}

func Test_SearchHex_PatternLongerThanData(t *testing.T) {
	pattern, err := ParseHexPattern("01 02 03")
	require.NoError(t, err)
	require.Nil(t, SearchHex([]byte{0x01, 0x02}, pattern))
}

func Test_SearchASCII_CaseFolding(t *testing.T) {
	data := []byte("Hello World hello")

	require.Equal(t, []int{0, 12}, SearchASCII(data, "hello", false))
	require.Equal(t, []int{12}, SearchASCII(data, "hello", true))
}

func Test_SearchASCII_Empty(t *testing.T) {
	require.Nil(t, SearchASCII([]byte("abc"), "", false))
	require.Nil(t, SearchASCII(nil, "a", false))
}

func Test_Session_Execute(t *testing.T) {
	data := []byte{0xFF, 0x00, 0xFF, 0xFF, 0xAB, 0xFF}
	s := &Session{Query: "FF ?? FF"}

	require.NoError(t, s.Execute(data, 7))
	require.True(t, s.Executed())
	require.Equal(t, []int{0, 3}, s.Matches())
	require.Equal(t, 3, s.PatternLength())

	// Execute lands on the first match.
	off, ok := s.CurrentMatchOffset()
	require.True(t, ok)
	require.Equal(t, 0, off)
}

func Test_Session_ExecuteParseFailure(t *testing.T) {
	s := &Session{Query: "ZZ"}
	err := s.Execute([]byte{0x00}, 1)
	require.Error(t, err)
	require.False(t, s.Executed())
	require.False(t, s.HasMatches())
	require.Equal(t, 0, s.PatternLength())
}

func Test_Session_CyclicNavigation(t *testing.T) {
	data := []byte{0x01, 0x00, 0x01, 0x00, 0x01}
	s := &Session{Query: "01"}
	require.NoError(t, s.Execute(data, 0))
	require.Equal(t, 3, s.MatchCount())

	off, ok := s.NextMatch()
	require.True(t, ok)
	require.Equal(t, 2, off)

	off, _ = s.NextMatch()
	require.Equal(t, 4, off)

	// Wraps around.
	off, _ = s.NextMatch()
	require.Equal(t, 0, off)

	off, _ = s.PrevMatch()
	require.Equal(t, 4, off)

	idx, ok := s.CurrentMatchIndex()
	require.True(t, ok)
	require.Equal(t, 2, idx)
}

func Test_Session_NavigationWithoutMatches(t *testing.T) {
	s := &Session{Query: "DE AD"}
	require.NoError(t, s.Execute([]byte{0x00, 0x00}, 0))

	_, ok := s.NextMatch()
	require.False(t, ok)
	_, ok = s.PrevMatch()
	require.False(t, ok)
	_, ok = s.CurrentMatchOffset()
	require.False(t, ok)
}

func Test_Session_IsWithinMatch(t *testing.T) {
	data := []byte{0xFF, 0x00, 0xFF, 0xFF, 0xAB, 0xFF}
	s := &Session{Query: "FF ?? FF"}
	require.NoError(t, s.Execute(data, 0))

	// Matches at 0 and 3, each 3 bytes wide.
	for _, off := range []int{0, 1, 2, 3, 4, 5} {
		require.True(t, s.IsWithinMatch(off), "offset %d", off)
	}
	require.False(t, s.IsWithinMatch(-1))
	require.False(t, s.IsWithinMatch(6))
}

func Test_Session_Staleness(t *testing.T) {
	s := &Session{Query: "41", Mode: ModeHex}
	require.NoError(t, s.Execute([]byte{0x41}, 5))

	require.False(t, s.MatchesMayBeStale(5))
	require.True(t, s.MatchesMayBeStale(6))

	// Editing the query tuple without re-executing is also stale.
	s.Query = "42"
	require.True(t, s.MatchesMayBeStale(5))
	s.Query = "41"
	require.False(t, s.MatchesMayBeStale(5))
	s.CaseSensitive = true
	require.True(t, s.MatchesMayBeStale(5))

	// A session that never ran is not stale, it is just empty.
	fresh := &Session{Query: "41"}
	require.False(t, fresh.MatchesMayBeStale(99))
}

func Test_Session_ASCIIMode(t *testing.T) {
	s := &Session{Query: "hello", Mode: ModeASCII}
	require.NoError(t, s.Execute([]byte("Hello World hello"), 0))
	require.Equal(t, []int{0, 12}, s.Matches())
	require.Equal(t, 5, s.PatternLength())

	s.CaseSensitive = true
	require.NoError(t, s.Execute([]byte("Hello World hello"), 0))
	require.Equal(t, []int{12}, s.Matches())
}

func Test_Session_EmptyASCIIQuery(t *testing.T) {
	s := &Session{Mode: ModeASCII}
	require.Error(t, s.Execute([]byte("abc"), 0))
}
