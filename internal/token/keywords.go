package token

var keywords = map[string]Kind{
	"import":   KwImport,
	"include":  KwInclude,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"struct":   KwStruct,
	"class":    KwClass,
	"public":   KwPublic,
	"private":  KwPrivate,
	"new":      KwNew,
	"delete":   KwDelete,
	"true":     KwTrue,
	"false":    KwFalse,
	"null":     KwNull,
	"const":    KwConst,
	"void":     KwVoid,
	"match":    KwMatch,
	"enum":     KwEnum,
	"int":      KwInt,
	"float":    KwFloat,
	"double":   KwDouble,
	"char":     KwChar,
	"string":   KwString,
	"bool":     KwBool,
	"i8":       KwI8,
	"i16":      KwI16,
	"i32":      KwI32,
	"i64":      KwI64,
	"u8":       KwU8,
	"u16":      KwU16,
	"u32":      KwU32,
	"u64":      KwU64,
	"f8":       KwF8,
	"f16":      KwF16,
	"f32":      KwF32,
	"f64":      KwF64,
}

// LookupKeyword returns the keyword kind for an exact, case-sensitive lexeme.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
