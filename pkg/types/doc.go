// Package types defines the shared error model for the bendkit byte-buffer
// engine.
//
// The engine's contract is that nothing is process-fatal: parse failures,
// policy violations, and unknown ids all surface as values the caller can
// branch on. Errors carry a stable ErrKind category so hosts can decide
// between "show the message" and "silently ignore" without string matching.
//
// This package has no dependencies beyond the standard library.
package types
