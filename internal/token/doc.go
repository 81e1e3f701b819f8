// Package token defines lexical token kinds for the pal front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Token.Value holds the decoded payload of char and string literals.
//   - Comments and whitespace never appear in the token stream.
//   - Sized builtin type names (i32, u8, f64, ...) are keywords, not identifiers.
package token
