package parser

import (
	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/token"
)

// parseVarDecl handles 'const'? Ident ':' Type ('=' Expr)? ';'.
// ok is false when the name or type could not be read.
func (p *Parser) parseVarDecl() (decl ast.VarDecl, start token.Token, ok bool) {
	start = p.peek()
	decl.Const = p.match(token.KwConst)

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name")
	if !ok {
		return decl, start, false
	}
	decl.Name = name.Text

	if _, ok = p.expect(token.Colon, diag.SynExpectColon, "expected ':' after '"+name.Text+"'"); !ok {
		return decl, start, false
	}
	if decl.Type = p.parseType(); !decl.Type.IsValid() {
		return decl, start, false
	}

	if p.match(token.Assign) {
		decl.Value = p.parseExpression()
	} else if decl.Const {
		p.reportAt(name, diag.SynConstNeedsInit, "const '"+name.Text+"' must be initialized")
	}

	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after variable declaration")
	return decl, start, true
}

func (p *Parser) parseVarItem() ast.ItemID {
	decl, start, ok := p.parseVarDecl()
	if !ok {
		return ast.NoItemID
	}
	return p.b.Items.NewVar(p.spanFrom(start), posOf(start), decl)
}

// startsVarDecl reports whether the cursor is at "name :" or "const".
func (p *Parser) startsVarDecl() bool {
	return p.check(token.KwConst) || (p.check(token.Ident) && p.peekN(1).Kind == token.Colon)
}
