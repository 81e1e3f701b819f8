package lexer

import (
	"pal/internal/diag"
	"pal/internal/source"
	"pal/internal/token"
)

// Tokenize lexes an in-memory buffer labelled filename and returns the full
// token slice. Lexical diagnostics go to bag, which may be nil.
func Tokenize(filename string, src []byte, bag *diag.Bag) []token.Token {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(filename, src))
	return TokenizeFile(file, filename, bag)
}

// TokenizeFile lexes a file already registered in a FileSet.
func TokenizeFile(file *source.File, filename string, bag *diag.Bag) []token.Token {
	opts := Options{Filename: filename}
	if bag != nil {
		opts.Reporter = diag.BagReporter{Bag: bag}
	}
	return New(file, opts).All()
}
