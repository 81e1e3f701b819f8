package lexer

import (
	"pal/internal/diag"
)

type Options struct {
	Reporter diag.Reporter // may be nil: errors are dropped, lexing continues
	// Filename labels diagnostics; defaults to the file's path.
	Filename string
}

// errLex reports an error that starts at m and spans up to the cursor.
func (lx *Lexer) errLex(code diag.Code, m Mark, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, diag.Location{
		Filename: lx.filename,
		Line:     m.Line,
		Column:   m.Col,
		Length:   lx.cursor.Off - m.Off,
		Span:     lx.cursor.SpanFrom(m),
	}, msg)
}
