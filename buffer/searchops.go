package buffer

import "github.com/joshuapare/bendkit/buffer/search"

// ExecuteSearch runs the session's query against the working bytes,
// recording the current generation so staleness stays checkable.
func (b *Buffer) ExecuteSearch(s *search.Session) error {
	return s.Execute(b.working, b.generation)
}

// ReplaceCurrent overwrites the session's current match through this
// buffer, so the replacement is undoable and bumps the generation.
func (b *Buffer) ReplaceCurrent(s *search.Session, replacement string) error {
	return search.ReplaceCurrent(s, b, replacement)
}

// ReplaceAll overwrites every recorded match through this buffer and
// returns the number of sites written.
func (b *Buffer) ReplaceAll(s *search.Session, replacement string) (int, error) {
	return search.ReplaceAll(s, b, replacement)
}

// SearchIsStale reports whether the session's matches may no longer
// describe the live working bytes.
func (b *Buffer) SearchIsStale(s *search.Session) bool {
	return s.MatchesMayBeStale(b.generation)
}
