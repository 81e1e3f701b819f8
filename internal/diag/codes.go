package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005

	// Syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedParen      Code = 2006
	SynUnclosedBrace      Code = 2007
	SynUnclosedBracket    Code = 2008
	SynExpectSemicolon    Code = 2012
	SynForBadHeader       Code = 2014
	SynEnumExpectBody     Code = 2024
	SynEnumExpectRBrace   Code = 2025
	SynBadDestructor      Code = 2026
	SynExpectLParen       Code = 2027
	SynExpectLBrace       Code = 2028
	SynUnexpectedTopLevel Code = 2101
	SynExpectIdentifier   Code = 2102
	SynExpectModuleSeg    Code = 2103

	// type and expression shape
	SynExpectRightBracket   Code = 2201
	SynExpectType           Code = 2202
	SynExpectExpression     Code = 2203
	SynExpectColon          Code = 2204
	SynVariadicMustBeLast   Code = 2207
	SynConstNeedsInit       Code = 2208
	SynInvalidAssignTarget  Code = 2209
	SynIntLiteralOutOfRange Code = 2210

	// Semantic (reserved)
	SemaInfo Code = 3000

	// I/O
	IOLoadFileError Code = 4001

	// Codegen (reserved)
	GenInfo Code = 5000

	// Reserved language features
	FutMatchNotSupported Code = 7001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number literal",
		LexUnterminatedChar:         "Unterminated character literal",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedParen:            "Unclosed parenthesis",
		SynUnclosedBrace:            "Unclosed brace",
		SynUnclosedBracket:          "Unclosed bracket",
		SynExpectSemicolon:          "Expected semicolon",
		SynForBadHeader:             "Malformed for header",
		SynEnumExpectBody:           "Expected enum body",
		SynEnumExpectRBrace:         "Expected '}' after enum variants",
		SynBadDestructor:            "Destructor does not name its class",
		SynExpectLParen:             "Expected '('",
		SynExpectLBrace:             "Expected '{'",
		SynUnexpectedTopLevel:       "Unexpected top-level construct",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectModuleSeg:          "Expected module segment",
		SynExpectRightBracket:       "Expected ']'",
		SynExpectType:               "Expected type",
		SynExpectExpression:         "Expected expression",
		SynExpectColon:              "Expected ':'",
		SynVariadicMustBeLast:       "Variadic parameter must be last",
		SynConstNeedsInit:           "Constant without initializer",
		SynInvalidAssignTarget:      "Invalid assignment target",
		SynIntLiteralOutOfRange:     "Numeric literal out of range",
		SemaInfo:                    "Semantic information",
		IOLoadFileError:             "I/O load file error",
		GenInfo:                     "Codegen information",
		FutMatchNotSupported:        "'match' is reserved for future use",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("FUT%04d", ic)
	}
	return "E0000"
}

// Category maps the numeric range of c to the pass that owns it.
func (c Code) Category() Category {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return CatLexer
	case ic >= 2000 && ic < 3000, ic >= 7000 && ic < 8000:
		return CatParser
	case ic >= 3000 && ic < 4000:
		return CatSemantic
	case ic >= 5000 && ic < 6000:
		return CatCodegen
	}
	return CatGeneric
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
