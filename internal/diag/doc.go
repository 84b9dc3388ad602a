// Package diag holds the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string form
// (see codes.go), a short Message, the Primary span and optional Notes.
// Producers emit through a Reporter; *Bag is the standard sink and also
// sorts, deduplicates and enforces a limit. Unique wraps a Reporter to drop
// repeats before they reach the bag.
//
// Rendering lives in internal/diagfmt.
package diag
