package parser

import (
	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/token"
)

// parseFn handles Ident '(' Params? ')' (':' Type)? Block.
func (p *Parser) parseFn(kind ast.FnKind) ast.ItemID {
	name := p.advance()
	fn := ast.FnItem{Name: name.Text, Kind: kind}

	if _, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after '"+name.Text+"'"); !ok {
		return ast.NoItemID
	}
	fn.Params, fn.Variadic = p.parseParams()
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok && !p.resyncParams() {
		return ast.NoItemID
	}

	if p.match(token.Colon) {
		if fn.Result = p.parseType(); !fn.Result.IsValid() {
			return ast.NoItemID
		}
	}

	fn.Body = p.parseBlock()
	if !fn.Body.IsValid() {
		return ast.NoItemID
	}
	return p.b.Items.NewFn(p.spanFrom(name), posOf(name), fn)
}

// parseDtor handles '~' <class name> '(' ')' Block.
func (p *Parser) parseDtor() ast.ItemID {
	tilde := p.advance()
	name, ok := p.expect(token.Ident, diag.SynBadDestructor, "expected class name after '~'")
	if !ok {
		return ast.NoItemID
	}
	if name.Text != p.className {
		p.reportAt(name, diag.SynBadDestructor, "destructor name '"+name.Text+"' does not match class '"+p.className+"'")
	}
	if _, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after destructor name"); !ok {
		return ast.NoItemID
	}
	if !p.check(token.RParen) {
		p.reportAt(p.peek(), diag.SynBadDestructor, "destructor takes no parameters")
		p.parseParams()
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after destructor parameters"); !ok && !p.resyncParams() {
		return ast.NoItemID
	}

	body := p.parseBlock()
	if !body.IsValid() {
		return ast.NoItemID
	}
	return p.b.Items.NewFn(p.spanFrom(tilde), posOf(tilde), ast.FnItem{
		Name: name.Text,
		Kind: ast.FnDtor,
		Body: body,
	})
}

// resyncParams skips a broken parameter list up to its ')' or the body's '{'
// so the body can still be parsed.
func (p *Parser) resyncParams() bool {
	for {
		switch p.peek().Kind {
		case token.RParen:
			p.advance()
			p.panicking = false
			return true
		case token.LBrace:
			p.panicking = false
			return true
		case token.RBrace, token.Semicolon, token.EOF:
			return false
		}
		p.advance()
	}
}

// parseParams handles Param (',' Param)* (',' '...')? | '...'.
// The closing ')' is left for the caller.
func (p *Parser) parseParams() (params []ast.Param, variadic bool) {
	if p.check(token.RParen) {
		return nil, false
	}
	for {
		if dots := p.peek(); p.match(token.Ellipsis) {
			if !p.check(token.RParen) {
				p.errorAt(dots, diag.SynVariadicMustBeLast, "'...' must be the last parameter")
			}
			return params, true
		}

		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		if !ok {
			return params, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter '"+name.Text+"'"); !ok {
			return params, false
		}
		typ := p.parseType()
		if !typ.IsValid() {
			return params, false
		}
		params = append(params, ast.Param{
			Name: name.Text,
			Type: typ,
			Span: p.spanFrom(name),
			Pos:  posOf(name),
		})

		if !p.match(token.Comma) {
			return params, false
		}
	}
}
