package ast

import (
	"pal/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	ExprIntLit
	ExprFloatLit
	ExprCharLit
	ExprStringLit
	ExprBoolLit
	ExprNullLit
	// ExprAssign represents "target op= value".
	ExprAssign
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprUnary represents a prefix unary expression.
	ExprUnary
	ExprPostfix
	// ExprCall represents a function call expression.
	ExprCall
	ExprIndex
	ExprMember
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprNew represents "new Type".
	ExprNew
)

var exprKindNames = [...]string{
	ExprIdent:     "Ident",
	ExprIntLit:    "IntLit",
	ExprFloatLit:  "FloatLit",
	ExprCharLit:   "CharLit",
	ExprStringLit: "StringLit",
	ExprBoolLit:   "BoolLit",
	ExprNullLit:   "NullLit",
	ExprAssign:    "Assign",
	ExprBinary:    "Binary",
	ExprUnary:     "Unary",
	ExprPostfix:   "Postfix",
	ExprCall:      "Call",
	ExprIndex:     "Index",
	ExprMember:    "Member",
	ExprGroup:     "Group",
	ExprNew:       "New",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Pos     source.LineCol
	Payload PayloadID
}

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// ExprBinaryAdd represents the addition operator (+).
	ExprBinaryAdd ExprBinaryOp = iota
	// ExprBinarySub represents the subtraction operator (-).
	ExprBinarySub
	// ExprBinaryMul represents the multiplication operator (*).
	ExprBinaryMul
	// ExprBinaryDiv represents the division operator (/).
	ExprBinaryDiv
	// ExprBinaryMod represents the modulo operator (%).
	ExprBinaryMod

	// ExprBinaryBitAnd represents the bitwise AND operator (&).
	ExprBinaryBitAnd
	// ExprBinaryBitOr represents the bitwise OR operator (|).
	ExprBinaryBitOr
	// ExprBinaryBitXor represents the bitwise XOR operator (^).
	ExprBinaryBitXor
	// ExprBinaryShiftLeft represents the left shift operator (<<).
	ExprBinaryShiftLeft
	ExprBinaryShiftRight

	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr

	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

var binaryOpText = [...]string{
	ExprBinaryAdd:        "+",
	ExprBinarySub:        "-",
	ExprBinaryMul:        "*",
	ExprBinaryDiv:        "/",
	ExprBinaryMod:        "%",
	ExprBinaryBitAnd:     "&",
	ExprBinaryBitOr:      "|",
	ExprBinaryBitXor:     "^",
	ExprBinaryShiftLeft:  "<<",
	ExprBinaryShiftRight: ">>",
	ExprBinaryLogicalAnd: "&&",
	ExprBinaryLogicalOr:  "||",
	ExprBinaryEq:         "==",
	ExprBinaryNotEq:      "!=",
	ExprBinaryLess:       "<",
	ExprBinaryLessEq:     "<=",
	ExprBinaryGreater:    ">",
	ExprBinaryGreaterEq:  ">=",
}

func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// ExprAssignOp enumerates plain and compound assignment.
type ExprAssignOp uint8

const (
	ExprAssignPlain ExprAssignOp = iota
	ExprAssignAdd
	ExprAssignSub
	ExprAssignMul
	ExprAssignDiv
	ExprAssignMod
	ExprAssignBitAnd
	ExprAssignBitOr
	ExprAssignBitXor
	ExprAssignShl
	ExprAssignShr
)

var assignOpText = [...]string{
	ExprAssignPlain:  "=",
	ExprAssignAdd:    "+=",
	ExprAssignSub:    "-=",
	ExprAssignMul:    "*=",
	ExprAssignDiv:    "/=",
	ExprAssignMod:    "%=",
	ExprAssignBitAnd: "&=",
	ExprAssignBitOr:  "|=",
	ExprAssignBitXor: "^=",
	ExprAssignShl:    "<<=",
	ExprAssignShr:    ">>=",
}

func (op ExprAssignOp) String() string {
	if int(op) < len(assignOpText) {
		return assignOpText[op]
	}
	return "?"
}

// ExprUnaryOp enumerates prefix operators.
type ExprUnaryOp uint8

const (
	ExprUnaryNeg ExprUnaryOp = iota
	ExprUnaryNot
	ExprUnaryBitNot
	ExprUnaryPreInc
	ExprUnaryPreDec
	ExprUnaryAddr
	ExprUnaryDeref
)

var unaryOpText = [...]string{
	ExprUnaryNeg:    "-",
	ExprUnaryNot:    "!",
	ExprUnaryBitNot: "~",
	ExprUnaryPreInc: "++",
	ExprUnaryPreDec: "--",
	ExprUnaryAddr:   "&",
	ExprUnaryDeref:  "*",
}

func (op ExprUnaryOp) String() string {
	if int(op) < len(unaryOpText) {
		return unaryOpText[op]
	}
	return "?"
}

type ExprPostfixOp uint8

const (
	ExprPostfixInc ExprPostfixOp = iota
	ExprPostfixDec
)

func (op ExprPostfixOp) String() string {
	if op == ExprPostfixDec {
		return "--"
	}
	return "++"
}

type ExprIdentData struct {
	Name string
}

type ExprIntLitData struct {
	Value uint64
	Raw   string
}

type ExprFloatLitData struct {
	Value float64
	Raw   string
}

// ExprTextLitData is the payload of char and string literals.
type ExprTextLitData struct {
	Value string // escapes resolved
	Raw   string // lexeme with quotes
}

type ExprBoolLitData struct {
	Value bool
}

type ExprAssignData struct {
	Op     ExprAssignOp
	Target ExprID
	Value  ExprID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprPostfixData struct {
	Op      ExprPostfixOp
	Operand ExprID
}

type ExprCallData struct {
	Target ExprID
	Args   []ExprID
}

type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

type ExprMemberData struct {
	Target ExprID
	Field  string
}

type ExprGroupData struct {
	Inner ExprID
}

type ExprNewData struct {
	Type TypeID
}
