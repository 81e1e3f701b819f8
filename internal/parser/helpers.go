package parser

import (
	"fmt"

	"pal/internal/diag"
	"pal/internal/token"
)

// kindSet is a static set of token kinds.
type kindSet map[token.Kind]struct{}

func setOf(kinds ...token.Kind) kindSet {
	s := make(kindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

func (s kindSet) has(k token.Kind) bool {
	_, ok := s[k]
	return ok
}

// peek returns the current token; past the end it keeps returning EOF.
func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

// advance consumes the current token and returns it. EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// previous returns the last consumed token, or the current one at the start.
func (p *Parser) previous() token.Token {
	if p.pos == 0 {
		return p.toks[0]
	}
	return p.toks[p.pos-1]
}

func (p *Parser) check(k token.Kind) bool {
	return p.peek().Kind == k
}

// match consumes the current token if it has kind k.
func (p *Parser) match(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

// matchAny consumes the current token if its kind is in set.
func (p *Parser) matchAny(set kindSet) (token.Token, bool) {
	if tok := p.peek(); set.has(tok.Kind) {
		return p.advance(), true
	}
	return token.Token{}, false
}

// expect consumes a token of kind k or reports code at the current token.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.check(k) {
		return p.advance(), true
	}
	tok := p.peek()
	p.errorAt(tok, code, msg+", found "+describe(tok))
	return tok, false
}

// errorAt records a syntax error and enters panic mode. While panicking
// nothing is recorded, which keeps one mistake from cascading.
func (p *Parser) errorAt(tok token.Token, code diag.Code, msg string) {
	if p.panicking {
		p.errors++
		return
	}
	p.panicking = true
	p.record(tok, code, msg)
}

// reportAt records an error that needs no resynchronization.
func (p *Parser) reportAt(tok token.Token, code diag.Code, msg string) {
	if p.panicking {
		p.errors++
		return
	}
	p.record(tok, code, msg)
}

func (p *Parser) record(tok token.Token, code diag.Code, msg string) {
	p.errors++
	if p.opts.MaxErrors > 0 && p.errors > p.opts.MaxErrors {
		return
	}
	if p.opts.Reporter == nil {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, diag.Location{
		Filename: p.opts.Filename,
		Line:     tok.Line,
		Column:   tok.Column,
		Length:   tok.Length(),
		Span:     tok.Span,
	}, msg)
}

// describe names a token for messages: its text when it has one.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident, token.IntLit, token.FloatLit:
		return "'" + tok.Text + "'"
	case token.Invalid:
		if tok.Text != "" {
			return "'" + tok.Text + "'"
		}
	}
	return tok.Kind.Describe()
}

func lineCol(tok token.Token) string {
	return fmt.Sprintf("%d:%d", tok.Line, tok.Column)
}
