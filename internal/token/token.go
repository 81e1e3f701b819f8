package token

import (
	"pal/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string // exact source slice
	Value  string // decoded payload for CharLit and StringLit
	Line   uint32 // 1-based, first byte of the token
	Column uint32 // 1-based, first byte of the token
}

// Offset is the byte offset of the first byte of the token.
func (t Token) Offset() uint32 { return t.Span.Start }

// Length is the byte length of the token in the source.
func (t Token) Length() uint32 { return t.Span.Len() }

// IsLiteral reports whether the token is a numeric, character, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, CharLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= LParen && t.Kind <= Shr
}

// IsKeyword reports whether the token is a language keyword, builtin type
// names included.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwImport && t.Kind <= KwF64
}

// IsBuiltinType reports whether the token names a builtin type.
func (t Token) IsBuiltinType() bool {
	return t.Kind.IsBuiltinType()
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsBuiltinType reports whether k names a builtin type.
func (k Kind) IsBuiltinType() bool {
	return (k >= KwInt && k <= KwF64) || k == KwVoid
}
