package diag

// Category names the pass a diagnostic originates from.
type Category uint8

const (
	CatGeneric Category = iota
	CatLexer
	CatParser
	CatSemantic
	CatCodegen
)

func (c Category) String() string {
	switch c {
	case CatLexer:
		return "lexer"
	case CatParser:
		return "parser"
	case CatSemantic:
		return "semantic"
	case CatCodegen:
		return "codegen"
	}
	return "generic"
}
