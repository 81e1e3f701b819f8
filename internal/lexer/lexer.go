package lexer

import (
	"pal/internal/source"
	"pal/internal/token"
)

type Lexer struct {
	file     *source.File
	filename string
	cursor   Cursor
	opts     Options
	look     *token.Token // one-token buffer for Peek
}

func New(file *source.File, opts Options) *Lexer {
	name := opts.Filename
	if name == "" {
		name = file.Path
	}
	return &Lexer{
		file:     file,
		filename: name,
		cursor:   NewCursor(file),
		opts:     opts,
	}
}

// Next returns the next significant token.
// Once the input is exhausted it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return lx.emit(token.EOF, lx.cursor.Mark())
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '\'':
		return lx.scanChar()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer. The result ends with exactly one EOF token.
func (lx *Lexer) All() []token.Token {
	toks := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// emit builds a token of kind k from m up to the cursor.
func (lx *Lexer) emit(k token.Kind, m Mark) token.Token {
	sp := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind:   k,
		Span:   sp,
		Text:   string(lx.file.Content[sp.Start:sp.End]),
		Line:   m.Line,
		Column: m.Col,
	}
}
