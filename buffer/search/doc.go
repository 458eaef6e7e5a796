// Package search provides pattern matching over buffer bytes and the
// session state a host needs to navigate and replace matches.
//
// Matching itself is stateless: SearchHex and SearchASCII scan a byte
// slice and return match offsets. A Session wraps one query (hex with
// wildcards, or ASCII with optional case folding) together with its
// results, a cyclic navigation cursor, and the buffer generation the
// results were computed against. Results are never invalidated behind
// the caller's back; staleness is always an explicit check.
//
// Replacement is fixed-width: the replacement byte count must equal the
// pattern byte count, which is what makes applying one replacement at
// every recorded offset sound without rescanning.
package search
