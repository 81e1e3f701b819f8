package parser

import (
	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/token"
)

var accessKeywords = setOf(token.KwPublic, token.KwPrivate)

// parseStruct handles 'struct' Ident '{' (VarDecl | FnDecl)* '}'.
func (p *Parser) parseStruct() ast.ItemID {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected struct name")
	if !ok {
		return ast.NoItemID
	}
	rec := ast.RecordItem{Name: name.Text}
	if !p.parseRecordBody(&rec, false) {
		return ast.NoItemID
	}
	return p.b.Items.NewStruct(p.spanFrom(kw), posOf(kw), rec)
}

// parseClass handles 'class' Ident '{' (Access | VarDecl | FnDecl | Ctor | Dtor)* '}'.
func (p *Parser) parseClass() ast.ItemID {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected class name")
	if !ok {
		return ast.NoItemID
	}

	outer := p.className
	p.className = name.Text
	defer func() { p.className = outer }()

	rec := ast.RecordItem{Name: name.Text}
	if !p.parseRecordBody(&rec, true) {
		return ast.NoItemID
	}
	return p.b.Items.NewClass(p.spanFrom(kw), posOf(kw), rec)
}

// parseRecordBody fills rec.Members from a braced body. Access sections,
// constructors and destructors are only accepted when isClass is set.
func (p *Parser) parseRecordBody(rec *ast.RecordItem, isClass bool) bool {
	if _, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' after '"+rec.Name+"'"); !ok {
		return false
	}

	vis := ast.VisDefault
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		start := p.pos
		tok := p.peek()

		var item ast.ItemID
		switch {
		case isClass && accessKeywords.has(tok.Kind):
			p.advance()
			if tok.Kind == token.KwPublic {
				vis = ast.VisPublic
			} else {
				vis = ast.VisPrivate
			}
			p.expect(token.Colon, diag.SynExpectColon, "expected ':' after '"+tok.Text+"'")
		case isClass && tok.Kind == token.Tilde:
			item = p.parseDtor()
		case isClass && tok.Kind == token.Ident && tok.Text == p.className && p.peekN(1).Kind == token.LParen:
			item = p.parseFn(ast.FnCtor)
		case tok.Kind == token.Ident && p.peekN(1).Kind == token.LParen:
			item = p.parseFn(ast.FnMethod)
		case p.startsVarDecl():
			item = p.parseVarItem()
		default:
			p.errorAt(tok, diag.SynUnexpectedToken, "expected field or method declaration, found "+describe(tok))
		}

		if item.IsValid() {
			rec.Members = append(rec.Members, ast.Member{Visibility: vis, Item: item})
		}
		if p.panicking {
			p.recoverFrom(start)
		}
	}

	if p.check(token.RBrace) {
		p.panicking = false
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close '"+rec.Name+"'")
	return true
}

// parseEnum handles 'enum' Ident '{' Variant (',' Variant)* ','? '}'.
func (p *Parser) parseEnum() ast.ItemID {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum name")
	if !ok {
		return ast.NoItemID
	}
	if _, ok := p.expect(token.LBrace, diag.SynEnumExpectBody, "expected '{' after enum name"); !ok {
		return ast.NoItemID
	}

	enum := ast.EnumItem{Name: name.Text}
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		start := p.pos
		if v, ok := p.parseVariant(); ok {
			enum.Variants = append(enum.Variants, v)
		}
		if p.panicking {
			p.recoverFrom(start)
			continue
		}
		if p.match(token.Comma) {
			continue
		}
		if p.check(token.RBrace) || p.check(token.EOF) {
			break
		}
		p.errorAt(p.peek(), diag.SynEnumExpectRBrace, "expected ',' or '}' after enum variant, found "+describe(p.peek()))
		p.synchronize()
	}

	if p.check(token.RBrace) {
		p.panicking = false
	}
	p.expect(token.RBrace, diag.SynEnumExpectRBrace, "expected '}' after enum variants")
	return p.b.Items.NewEnum(p.spanFrom(kw), posOf(kw), enum)
}

// parseVariant handles Ident ('(' Params ')')? ('=' Expr)?.
func (p *Parser) parseVariant() (ast.EnumVariant, bool) {
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum variant name")
	if !ok {
		return ast.EnumVariant{}, false
	}
	v := ast.EnumVariant{Name: name.Text, Pos: posOf(name)}

	if p.match(token.LParen) {
		var variadic bool
		v.Params, variadic = p.parseParams()
		if variadic {
			p.reportAt(p.previous(), diag.SynUnexpectedToken, "enum variant payload cannot be variadic")
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after variant payload"); !ok {
			return ast.EnumVariant{}, false
		}
	}
	if p.match(token.Assign) {
		v.Value = p.parseExpression()
	}
	v.Span = p.spanFrom(name)
	return v, true
}
