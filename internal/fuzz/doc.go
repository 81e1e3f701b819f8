// Package fuzztests holds Go fuzz harnesses for the front end
// (source -> lexer -> parser). They look for panics, hangs and broken
// token or tree invariants on arbitrary input.
package fuzztests
