package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// keywords
	KwImport   // import
	KwInclude  // include
	KwIf       // if
	KwElse     // else
	KwFor      // for
	KwWhile    // while
	KwBreak    // break
	KwContinue // continue
	KwReturn   // return
	KwStruct   // struct
	KwClass    // class
	KwPublic   // public
	KwPrivate  // private
	KwNew      // new
	KwDelete   // delete
	KwTrue     // true
	KwFalse    // false
	KwNull     // null
	KwConst    // const
	KwVoid     // void
	KwMatch    // match
	KwEnum     // enum

	// builtin type keywords
	KwInt    // int
	KwFloat  // float
	KwDouble // double
	KwChar   // char
	KwString // string
	KwBool   // bool
	KwI8     // i8
	KwI16    // i16
	KwI32    // i32
	KwI64    // i64
	KwU8     // u8
	KwU16    // u16
	KwU32    // u32
	KwU64    // u64
	KwF8     // f8
	KwF16    // f16
	KwF32    // f32
	KwF64    // f64

	// IntLit represents an integer literal (decimal or 0x hex).
	IntLit
	// FloatLit represents a decimal literal with a fractional part.
	FloatLit
	// CharLit represents a quoted character literal.
	CharLit
	// StringLit represents a quoted string literal.
	StringLit

	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
	Semicolon     // ;
	Comma         // ,
	Colon         // :
	ColonColon    // ::
	Dot           // .
	Ellipsis      // ...
	Question      // ?
	At            // @
	FatArrow      // =>
	Arrow         // ->
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=
	ShlAssign     // <<=
	ShrAssign     // >>=
	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	PlusPlus      // ++
	MinusMinus    // --
	EqEq          // ==
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	AndAnd        // &&
	OrOr          // ||
	Bang          // !
	Amp           // &
	Pipe          // |
	Caret         // ^
	Tilde         // ~
	Shl           // <<
	Shr           // >>
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	KwImport:      "KwImport",
	KwInclude:     "KwInclude",
	KwIf:          "KwIf",
	KwElse:        "KwElse",
	KwFor:         "KwFor",
	KwWhile:       "KwWhile",
	KwBreak:       "KwBreak",
	KwContinue:    "KwContinue",
	KwReturn:      "KwReturn",
	KwStruct:      "KwStruct",
	KwClass:       "KwClass",
	KwPublic:      "KwPublic",
	KwPrivate:     "KwPrivate",
	KwNew:         "KwNew",
	KwDelete:      "KwDelete",
	KwTrue:        "KwTrue",
	KwFalse:       "KwFalse",
	KwNull:        "KwNull",
	KwConst:       "KwConst",
	KwVoid:        "KwVoid",
	KwMatch:       "KwMatch",
	KwEnum:        "KwEnum",
	KwInt:         "KwInt",
	KwFloat:       "KwFloat",
	KwDouble:      "KwDouble",
	KwChar:        "KwChar",
	KwString:      "KwString",
	KwBool:        "KwBool",
	KwI8:          "KwI8",
	KwI16:         "KwI16",
	KwI32:         "KwI32",
	KwI64:         "KwI64",
	KwU8:          "KwU8",
	KwU16:         "KwU16",
	KwU32:         "KwU32",
	KwU64:         "KwU64",
	KwF8:          "KwF8",
	KwF16:         "KwF16",
	KwF32:         "KwF32",
	KwF64:         "KwF64",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	CharLit:       "CharLit",
	StringLit:     "StringLit",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Colon:         "Colon",
	ColonColon:    "ColonColon",
	Dot:           "Dot",
	Ellipsis:      "Ellipsis",
	Question:      "Question",
	At:            "At",
	FatArrow:      "FatArrow",
	Arrow:         "Arrow",
	Assign:        "Assign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	AmpAssign:     "AmpAssign",
	PipeAssign:    "PipeAssign",
	CaretAssign:   "CaretAssign",
	ShlAssign:     "ShlAssign",
	ShrAssign:     "ShrAssign",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	PlusPlus:      "PlusPlus",
	MinusMinus:    "MinusMinus",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	Bang:          "Bang",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	Tilde:         "Tilde",
	Shl:           "Shl",
	Shr:           "Shr",
}

// fixed spellings of keywords and punctuation
var kindLexemes = [...]string{
	KwImport:      "import",
	KwInclude:     "include",
	KwIf:          "if",
	KwElse:        "else",
	KwFor:         "for",
	KwWhile:       "while",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwReturn:      "return",
	KwStruct:      "struct",
	KwClass:       "class",
	KwPublic:      "public",
	KwPrivate:     "private",
	KwNew:         "new",
	KwDelete:      "delete",
	KwTrue:        "true",
	KwFalse:       "false",
	KwNull:        "null",
	KwConst:       "const",
	KwVoid:        "void",
	KwMatch:       "match",
	KwEnum:        "enum",
	KwInt:         "int",
	KwFloat:       "float",
	KwDouble:      "double",
	KwChar:        "char",
	KwString:      "string",
	KwBool:        "bool",
	KwI8:          "i8",
	KwI16:         "i16",
	KwI32:         "i32",
	KwI64:         "i64",
	KwU8:          "u8",
	KwU16:         "u16",
	KwU32:         "u32",
	KwU64:         "u64",
	KwF8:          "f8",
	KwF16:         "f16",
	KwF32:         "f32",
	KwF64:         "f64",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	Semicolon:     ";",
	Comma:         ",",
	Colon:         ":",
	ColonColon:    "::",
	Dot:           ".",
	Ellipsis:      "...",
	Question:      "?",
	At:            "@",
	FatArrow:      "=>",
	Arrow:         "->",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	PlusPlus:      "++",
	MinusMinus:    "--",
	EqEq:          "==",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	AndAnd:        "&&",
	OrOr:          "||",
	Bang:          "!",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	Shl:           "<<",
	Shr:           ">>",
}

// String returns the stable constant name of k ("KwIf", "LParen", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Lexeme returns the fixed source spelling of k, or "" for kinds whose text
// varies (identifiers, literals, EOF, Invalid).
func (k Kind) Lexeme() string {
	if int(k) < len(kindLexemes) {
		return kindLexemes[k]
	}
	return ""
}

// Describe returns a short form for messages: the quoted lexeme when the
// kind has one, otherwise a descriptive word.
func (k Kind) Describe() string {
	if lx := k.Lexeme(); lx != "" {
		return "'" + lx + "'"
	}
	switch k {
	case EOF:
		return "end of file"
	case Ident:
		return "identifier"
	case IntLit:
		return "integer literal"
	case FloatLit:
		return "float literal"
	case CharLit:
		return "character literal"
	case StringLit:
		return "string literal"
	}
	return "invalid token"
}
