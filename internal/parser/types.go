package parser

import (
	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/token"
)

// parseType handles BaseType ('*' | '[' IntLit? ']')*.
// A parenthesized type yields the inner type itself.
func (p *Parser) parseType() ast.TypeID {
	start := p.peek()

	var typ ast.TypeID
	switch {
	case start.Kind.IsBuiltinType():
		p.advance()
		typ = p.b.Types.NewBuiltin(start.Span, posOf(start), start.Kind)
	case start.Kind == token.Ident:
		p.advance()
		typ = p.b.Types.NewUser(start.Span, posOf(start), start.Text)
	case start.Kind == token.LParen:
		p.advance()
		typ = p.parseType()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after type")
	default:
		p.errorAt(start, diag.SynExpectType, "expected type, found "+describe(start))
		return ast.NoTypeID
	}
	if !typ.IsValid() {
		return typ
	}

	for {
		switch {
		case p.match(token.Star):
			typ = p.b.Types.NewPointer(p.spanFrom(start), posOf(start), typ)
		case p.match(token.LBracket):
			length := ast.NoExprID
			if p.check(token.IntLit) {
				length = p.parseIntLit()
			}
			p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' in array type")
			typ = p.b.Types.NewArray(p.spanFrom(start), posOf(start), typ, length)
		default:
			return typ
		}
	}
}
