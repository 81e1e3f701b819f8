// Package diag defines the diagnostic model shared by the lexer and the parser.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity: Info, Warning, Error or Critical (severity.go).
//   - Category: the pass that produced the finding (lexer, parser, ...).
//   - Code: compact numeric identifier with a stable string form (codes.go).
//   - Message: short human oriented text.
//   - Filename, Line, Column, Length: the position the finding points at.
//     Filename is optional; HasFile reports whether it was supplied.
//   - Span: the same position as a source.Span, used by renderers that need
//     to show the offending source line.
//
// # Collecting
//
// Bag is an append-only, ordered collector. It preserves insertion order and
// never mutates a stored entry; the only destructive operation is Clear. A Bag
// may carry a capacity limit: once it is full, Record and Add become no-ops
// that return false, so a runaway pass degrades to dropped diagnostics instead
// of failing.
//
// Passes emit through a Reporter rather than a concrete Bag. BagReporter
// stores into a Bag and DedupReporter drops a finding already reported at the
// same position with the same code and message.
//
// A Bag is not safe for concurrent use. Callers processing several files in
// parallel must give each file its own Bag and merge afterwards.
//
// # Rendering
//
// Format renders the single-line form
//
//	<file>:<line>:<column>: <severity>: <message>
//
// or, without a filename,
//
//	<line>:<column>: <severity>: <message>
//
// Richer renderers live in internal/diagfmt.
package diag
