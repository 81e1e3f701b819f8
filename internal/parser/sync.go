package parser

import (
	"fmt"

	"pal/internal/token"
	"pal/internal/trace"
)

var (
	// syncAfter ends a skip once consumed.
	syncAfter = setOf(token.Semicolon, token.Comma)
	// syncBefore ends a skip without being consumed.
	syncBefore = setOf(token.RBrace, token.KwImport, token.KwFor, token.KwIf, token.KwWhile, token.KwReturn)
)

// synchronize discards tokens until a resumption point and leaves panic mode.
// It consumes at least one token unless the cursor is at EOF.
func (p *Parser) synchronize() {
	from := p.pos
	for !p.check(token.EOF) {
		tok := p.advance()
		if syncAfter.has(tok.Kind) || syncBefore.has(p.peek().Kind) {
			break
		}
	}
	p.panicking = false
	p.traceSync(from)
}

// recoverFrom leaves panic mode after a construct that began at token
// index start. When the construct already consumed input and the cursor
// sits on a resumption point, nothing more is skipped.
func (p *Parser) recoverFrom(start int) {
	if p.pos > start && p.atBoundary() {
		p.panicking = false
		p.traceSync(p.pos)
		return
	}
	p.synchronize()
}

func (p *Parser) atBoundary() bool {
	return p.check(token.EOF) || syncBefore.has(p.peek().Kind) || syncAfter.has(p.previous().Kind)
}

// skipBalanced consumes a bracketed group starting at the current opener.
func (p *Parser) skipBalanced() {
	depth := 0
	for !p.check(token.EOF) {
		switch p.advance().Kind {
		case token.LParen, token.LBrace, token.LBracket:
			depth++
		case token.RParen, token.RBrace, token.RBracket:
			depth--
		}
		if depth <= 0 {
			return
		}
	}
}

// traceSync records the tokens skipped since index from and the token the
// parser resumes at.
func (p *Parser) traceSync(from int) {
	t := p.opts.Tracer
	if t == nil || !t.Enabled() || !t.Level().ShouldEmit(trace.ScopeNode) {
		return
	}
	at := p.peek()
	trace.Sync(t, p.opts.ParentSpan, p.opts.Filename, trace.TokenRange{From: from, To: p.pos},
		fmt.Sprintf("%d:%d", at.Line, at.Column), at.Kind.String())
}
