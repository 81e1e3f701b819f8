package lexer

import (
	"pal/internal/diag"
)

// skipTrivia consumes whitespace, "// ..." line comments and "/* ... */"
// block comments. Block comments do not nest; an unclosed one is reported at
// its opening and ends at EOF.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpace(b) {
			lx.cursor.Bump()
			continue
		}
		if b != '/' {
			return
		}
		_, b1, ok := lx.cursor.Peek2()
		if !ok {
			return
		}
		switch b1 {
		case '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	for !lx.cursor.EOF() {
		if lx.try2('*', '/') {
			return
		}
		lx.cursor.Bump()
	}
	lx.errLex(diag.LexUnterminatedBlockComment, start, "unterminated block comment")
}
