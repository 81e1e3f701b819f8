package parser

import (
	"pal/internal/ast"
	"pal/internal/token"
)

// binaryLevels lists the binary operators by ascending precedence.
// Each level is one left-associative loop in parseBinary.
var binaryLevels = [...]map[token.Kind]ast.ExprBinaryOp{
	{token.OrOr: ast.ExprBinaryLogicalOr},
	{token.AndAnd: ast.ExprBinaryLogicalAnd},
	{token.EqEq: ast.ExprBinaryEq, token.BangEq: ast.ExprBinaryNotEq},
	{
		token.Lt:   ast.ExprBinaryLess,
		token.LtEq: ast.ExprBinaryLessEq,
		token.Gt:   ast.ExprBinaryGreater,
		token.GtEq: ast.ExprBinaryGreaterEq,
	},
	{token.Pipe: ast.ExprBinaryBitOr},
	{token.Caret: ast.ExprBinaryBitXor},
	{token.Amp: ast.ExprBinaryBitAnd},
	{token.Shl: ast.ExprBinaryShiftLeft, token.Shr: ast.ExprBinaryShiftRight},
	{token.Plus: ast.ExprBinaryAdd, token.Minus: ast.ExprBinarySub},
	{token.Star: ast.ExprBinaryMul, token.Slash: ast.ExprBinaryDiv, token.Percent: ast.ExprBinaryMod},
}

var assignOps = map[token.Kind]ast.ExprAssignOp{
	token.Assign:        ast.ExprAssignPlain,
	token.PlusAssign:    ast.ExprAssignAdd,
	token.MinusAssign:   ast.ExprAssignSub,
	token.StarAssign:    ast.ExprAssignMul,
	token.SlashAssign:   ast.ExprAssignDiv,
	token.PercentAssign: ast.ExprAssignMod,
	token.AmpAssign:     ast.ExprAssignBitAnd,
	token.PipeAssign:    ast.ExprAssignBitOr,
	token.CaretAssign:   ast.ExprAssignBitXor,
	token.ShlAssign:     ast.ExprAssignShl,
	token.ShrAssign:     ast.ExprAssignShr,
}

var prefixOps = map[token.Kind]ast.ExprUnaryOp{
	token.Minus:      ast.ExprUnaryNeg,
	token.Bang:       ast.ExprUnaryNot,
	token.Tilde:      ast.ExprUnaryBitNot,
	token.PlusPlus:   ast.ExprUnaryPreInc,
	token.MinusMinus: ast.ExprUnaryPreDec,
	token.Amp:        ast.ExprUnaryAddr,
	token.Star:       ast.ExprUnaryDeref,
}
