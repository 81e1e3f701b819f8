// Package ast holds the syntax tree of one pal source file.
//
// Nodes live in typed arenas owned by a Builder and are referenced by 1-based
// IDs; the zero ID of every class means "absent". Each node class (item,
// statement, expression, type) has a closed Kind enum and per-kind payload
// arenas. Payloads are reached only through kind-checked accessors such as
// Exprs.Binary, which return false for a node of another kind.
//
// Every node records the span of source it covers and the line/column of
// the token that began it. The tree is strict: each node is referenced by
// exactly one parent, and the Program is the only root.
package ast
