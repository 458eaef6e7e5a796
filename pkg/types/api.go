package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindParse    ErrKind = iota // malformed user input (hex pattern, offset text)
	ErrKindPolicy                  // operation forbidden by an engine rule (non-leaf delete, width mismatch)
	ErrKindNotFound                // missing save point/bookmark/match
	ErrKindState                   // invalid operation for current state (no search executed, empty buffer)
	ErrKindIO                      // byte source/sink failure (load, export)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by the engine. Detail is attached by wrapping:
//
//	&types.Error{Kind: types.ErrKindPolicy, Msg: "3-byte pattern, 2-byte replacement", Err: types.ErrLengthMismatch}
//
// so errors.Is against the sentinel still matches.
var (
	// ErrNotFound indicates a missing save point, bookmark, or match.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrNotLeaf indicates an attempt to delete a non-leaf save point.
	// Deleting mid-chain would invalidate the diff basis of everything after it.
	ErrNotLeaf = &Error{Kind: ErrKindPolicy, Msg: "save point is not the last in the chain"}
	// ErrLengthMismatch indicates a replacement whose byte width differs from
	// the pattern width. Replacement is fixed-width so match offsets stay valid.
	ErrLengthMismatch = &Error{Kind: ErrKindPolicy, Msg: "replacement length differs from pattern length"}
	// ErrWildcardReplace indicates a replacement pattern containing wildcards.
	ErrWildcardReplace = &Error{Kind: ErrKindPolicy, Msg: "replacement pattern may not contain wildcards"}
	// ErrNoMatch indicates a replace was requested with no current match.
	ErrNoMatch = &Error{Kind: ErrKindState, Msg: "no current search match"}
	// ErrNoSearch indicates match state was queried before any search ran.
	ErrNoSearch = &Error{Kind: ErrKindState, Msg: "no search has been executed"}
)

// ParseError builds an ErrKindParse Error with a preformatted message.
func ParseError(msg string) *Error {
	return &Error{Kind: ErrKindParse, Msg: msg}
}

// IOError wraps an underlying byte source/sink failure.
func IOError(msg string, err error) *Error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: err}
}
