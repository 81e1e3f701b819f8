package parser

import (
	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/token"
)

// parseBlock handles '{' Stmt* '}'. A missing '}' is reported but the
// block is still returned.
func (p *Parser) parseBlock() ast.StmtID {
	open, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID
	}

	var stmts []ast.StmtID
	for !p.check(token.RBrace) && !p.check(token.EOF) {
		start := p.pos
		if st := p.parseStmt(); st.IsValid() {
			stmts = append(stmts, st)
		}
		if p.panicking {
			p.recoverFrom(start)
		}
	}

	if p.check(token.RBrace) {
		p.panicking = false
	}
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block opened at "+lineCol(open))
	return p.b.Stmts.NewBlock(p.spanFrom(open), posOf(open), stmts)
}

func (p *Parser) parseStmt() ast.StmtID {
	tok := p.peek()
	switch tok.Kind {
	case token.Semicolon:
		p.advance()
		return p.b.Stmts.NewEmpty(p.spanFrom(tok), posOf(tok))
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak:
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'break'")
		return p.b.Stmts.NewBreak(p.spanFrom(tok), posOf(tok))
	case token.KwContinue:
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'continue'")
		return p.b.Stmts.NewContinue(p.spanFrom(tok), posOf(tok))
	case token.KwDelete:
		p.advance()
		target := p.parseExpression()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after delete")
		return p.b.Stmts.NewDelete(p.spanFrom(tok), posOf(tok), target)
	case token.KwMatch:
		p.skipMatch()
		return ast.NoStmtID
	}
	if p.startsVarDecl() {
		return p.parseVarStmt()
	}
	return p.parseExprStmt()
}

func (p *Parser) parseVarStmt() ast.StmtID {
	decl, start, ok := p.parseVarDecl()
	if !ok {
		return ast.NoStmtID
	}
	return p.b.Stmts.NewVar(p.spanFrom(start), posOf(start), decl)
}

func (p *Parser) parseExprStmt() ast.StmtID {
	start := p.peek()
	x := p.parseExpression()
	if !x.IsValid() {
		return ast.NoStmtID
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression")
	return p.b.Stmts.NewExpr(p.spanFrom(start), posOf(start), x)
}

// parseCond handles '(' Expr ')' after if/while.
func (p *Parser) parseCond(kw token.Token) ast.ExprID {
	p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after '"+kw.Text+"'")
	cond := p.parseExpression()
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition")
	return cond
}

func (p *Parser) parseIf() ast.StmtID {
	kw := p.advance()
	cond := p.parseCond(kw)
	then := p.parseStmt()
	els := ast.NoStmtID
	if p.match(token.KwElse) {
		els = p.parseStmt()
	}
	return p.b.Stmts.NewIf(p.spanFrom(kw), posOf(kw), cond, then, els)
}

func (p *Parser) parseWhile() ast.StmtID {
	kw := p.advance()
	cond := p.parseCond(kw)
	body := p.parseStmt()
	return p.b.Stmts.NewWhile(p.spanFrom(kw), posOf(kw), cond, body)
}

// parseFor handles 'for' '(' (VarDecl | ExprStmt | ';') Expr? ';' Expr? ')' Stmt.
func (p *Parser) parseFor() ast.StmtID {
	kw := p.advance()
	var data ast.ForStmt

	p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after 'for'")
	switch {
	case p.match(token.Semicolon):
	case p.startsVarDecl():
		data.Init = p.parseVarStmt()
	default:
		data.Init = p.parseExprStmt()
	}

	if !p.check(token.Semicolon) {
		data.Cond = p.parseExpression()
	}
	p.expect(token.Semicolon, diag.SynForBadHeader, "expected ';' after for condition")

	if !p.check(token.RParen) {
		data.Post = p.parseExpression()
	}
	p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for clauses")

	data.Body = p.parseStmt()
	return p.b.Stmts.NewFor(p.spanFrom(kw), posOf(kw), data)
}

func (p *Parser) parseReturn() ast.StmtID {
	kw := p.advance()
	value := ast.NoExprID
	if !p.check(token.Semicolon) {
		value = p.parseExpression()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return")
	return p.b.Stmts.NewReturn(p.spanFrom(kw), posOf(kw), value)
}

// skipMatch reports a match statement and skips its scrutinee and arms.
func (p *Parser) skipMatch() {
	kw := p.advance()
	p.reportAt(kw, diag.FutMatchNotSupported, "match statements are not supported")
	if p.check(token.LParen) {
		p.skipBalanced()
	}
	if p.check(token.LBrace) {
		p.skipBalanced()
	}
}
