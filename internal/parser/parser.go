package parser

import (
	"strings"

	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/source"
	"pal/internal/token"
	"pal/internal/trace"
)

type Options struct {
	Reporter diag.Reporter // may be nil: diagnostics are counted but dropped
	// MaxErrors caps recorded syntax errors; 0 means unlimited.
	MaxErrors uint
	// Filename labels diagnostics.
	Filename string
	Tracer   trace.Tracer
	// ParentSpan attaches recovery events to the caller's trace span.
	ParentSpan uint64
}

// Result is the outcome of parsing one token stream. Program is always valid.
type Result struct {
	Builder *ast.Builder
	Program ast.ProgramID
	// Errors counts every syntax error, including ones dropped by MaxErrors
	// or reported while the parser was already recovering.
	Errors uint
}

// Parser is the state of one parse. The panicking flag is the whole of
// the recovery state; nothing is shared between parsers.
type Parser struct {
	toks      []token.Token
	pos       int
	b         *ast.Builder
	opts      Options
	panicking bool
	errors    uint
	className string // enclosing class while parsing its body
}

// Parse builds the AST for tokens and records syntax errors into bag (may be nil).
func Parse(filename string, tokens []token.Token, bag *diag.Bag) *Result {
	opts := Options{Filename: filename}
	if bag != nil {
		opts.Reporter = diag.BagReporter{Bag: bag}
	}
	return ParseTokens(tokens, opts)
}

// ParseTokens is the configurable form of Parse.
func ParseTokens(tokens []token.Token, opts Options) *Result {
	p := &Parser{
		toks: terminated(tokens),
		b:    ast.NewBuilder(ast.HintsFor(len(tokens))),
		opts: opts,
	}
	prog := p.parseProgram()
	return &Result{Builder: p.b, Program: prog, Errors: p.errors}
}

// terminated returns tokens ending in exactly one EOF without touching the
// caller's slice.
func terminated(tokens []token.Token) []token.Token {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == token.EOF {
		return tokens
	}
	eof := token.Token{Kind: token.EOF, Line: 1, Column: 1}
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		eof.Span = last.Span.ZeroideToEnd()
		eof.Line, eof.Column = endOf(last)
	}
	out := make([]token.Token, len(tokens), len(tokens)+1)
	copy(out, tokens)
	return append(out, eof)
}

// endOf returns the line and byte column just past tok. String literals may
// span lines, so the newlines in the text move the line forward.
func endOf(tok token.Token) (line, column uint32) {
	i := strings.LastIndexByte(tok.Text, '\n')
	if i < 0 {
		return tok.Line, tok.Column + tok.Length()
	}
	// #nosec G115 -- token text is bounded by the uint32 file size checked in source.
	nl, tail := uint32(strings.Count(tok.Text, "\n")), uint32(len(tok.Text)-i-1)
	return tok.Line + nl, tail + 1
}

// parseProgram is the top-level loop: Import* TopDecl* until EOF.
func (p *Parser) parseProgram() ast.ProgramID {
	first := p.peek()
	id := p.b.Programs.New(first.Span, posOf(first))
	prog := p.b.Programs.Get(id)

	for !p.check(token.EOF) {
		start := p.pos
		tok := p.peek()
		if tok.Kind == token.KwImport {
			if item := p.parseImport(); item.IsValid() {
				prog.Imports = append(prog.Imports, item)
			}
		} else if item := p.parseTopDecl(); item.IsValid() {
			prog.Decls = append(prog.Decls, item)
		}
		if p.panicking {
			p.recoverFrom(start)
			// closers left behind belong to the construct that was skipped
			for p.check(token.RBrace) {
				p.advance()
			}
		}
	}

	prog.Span = first.Span.Cover(p.peek().Span)
	return id
}

// parseTopDecl dispatches on the first token of a declaration.
func (p *Parser) parseTopDecl() ast.ItemID {
	tok := p.peek()
	switch tok.Kind {
	case token.KwStruct:
		return p.parseStruct()
	case token.KwClass:
		return p.parseClass()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwConst:
		return p.parseVarItem()
	case token.Ident:
		switch p.peekN(1).Kind {
		case token.LParen:
			return p.parseFn(ast.FnFunction)
		case token.Colon:
			return p.parseVarItem()
		}
		p.advance()
		p.errorAt(p.peek(), diag.SynUnexpectedToken,
			"expected '(' or ':' after '"+tok.Text+"', found "+describe(p.peek()))
		return ast.NoItemID
	default:
		p.errorAt(tok, diag.SynUnexpectedTopLevel, "expected declaration, found "+describe(tok))
		return ast.NoItemID
	}
}

func posOf(tok token.Token) source.LineCol {
	return source.LineCol{Line: tok.Line, Col: tok.Column}
}

// spanFrom covers start through the last consumed token.
func (p *Parser) spanFrom(start token.Token) source.Span {
	sp := source.Span{File: start.Span.File, Start: start.Span.Start, End: start.Span.Start}
	if p.pos > 0 {
		if end := p.toks[p.pos-1].Span.End; end > sp.Start {
			sp.End = end
		}
	}
	return sp
}
