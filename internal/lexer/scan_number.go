package lexer

import (
	"pal/internal/diag"
	"pal/internal/token"
)

// Supported: 123, 0x1F, 1.5.
// A '.' joins the number only when a digit follows it, and only once: "1.2.3"
// is FloatLit "1.2", Dot, IntLit "3". No exponents, no suffixes.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		digits := 0
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
			digits++
		}
		if digits == 0 {
			lx.errLex(diag.LexBadNumber, start, "hex literal has no digits")
		}
		return lx.emit(token.IntLit, start)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	kind := token.IntLit
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.emit(kind, start)
}
