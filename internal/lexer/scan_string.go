package lexer

import (
	"pal/internal/diag"
	"pal/internal/token"
)

// readEscape consumes the byte after a backslash and returns its meaning.
// Unknown escapes pass the escaped byte through unchanged.
func (lx *Lexer) readEscape() byte {
	switch b := lx.cursor.Bump(); b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	default: // \\ \' \" and the rest
		return b
	}
}

// scanString scans "..." up to an unescaped quote or EOF.
// An unterminated literal is still a StringLit holding what was read.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var val []byte
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			tok := lx.emit(token.StringLit, start)
			tok.Value = string(val)
			return tok
		}
		lx.cursor.Bump()
		if b == '\\' {
			if lx.cursor.EOF() {
				break
			}
			b = lx.readEscape()
		}
		val = append(val, b)
	}

	lx.errLex(diag.LexUnterminatedString, start, "unterminated string literal")
	tok := lx.emit(token.StringLit, start)
	tok.Value = string(val)
	return tok
}

// scanChar scans 'c' or '\e'. A missing closing quote is reported and the
// token ends right after the character that was read.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	var val []byte
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF(), b == '\n':
		lx.errLex(diag.LexUnterminatedChar, start, "unterminated character literal")
		return lx.emit(token.CharLit, start)
	case b == '\'':
		lx.cursor.Bump()
		lx.errLex(diag.LexUnterminatedChar, start, "empty character literal")
		return lx.emit(token.CharLit, start)
	case b == '\\':
		lx.cursor.Bump()
		if lx.cursor.EOF() {
			lx.errLex(diag.LexUnterminatedChar, start, "unterminated character literal")
			return lx.emit(token.CharLit, start)
		}
		val = append(val, lx.readEscape())
	default:
		val = append(val, lx.cursor.Bump())
	}

	if !lx.cursor.Eat('\'') {
		lx.errLex(diag.LexUnterminatedChar, start, "unterminated character literal")
	}
	tok := lx.emit(token.CharLit, start)
	tok.Value = string(val)
	return tok
}
