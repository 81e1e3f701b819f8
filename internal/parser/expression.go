package parser

import (
	"errors"
	"strconv"
	"strings"

	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/token"
)

func (p *Parser) parseExpression() ast.ExprID {
	return p.parseAssignment()
}

// parseAssignment is right associative: a = b = c is a = (b = c).
func (p *Parser) parseAssignment() ast.ExprID {
	start := p.peek()
	target := p.parseBinary(0)

	op, ok := assignOps[p.peek().Kind]
	if !ok {
		return target
	}
	p.advance()
	value := p.parseAssignment()
	if target.IsValid() && !p.assignable(target) {
		p.reportAt(start, diag.SynInvalidAssignTarget, "invalid assignment target")
	}
	return p.b.Exprs.NewAssign(p.spanFrom(start), posOf(start), op, target, value)
}

// assignable accepts identifiers, member and index accesses, dereferences,
// and parenthesized forms of those.
func (p *Parser) assignable(id ast.ExprID) bool {
	e := p.b.Exprs.Get(id)
	if e == nil {
		return false
	}
	switch e.Kind {
	case ast.ExprIdent, ast.ExprMember, ast.ExprIndex:
		return true
	case ast.ExprUnary:
		u, _ := p.b.Exprs.Unary(id)
		return u.Op == ast.ExprUnaryDeref
	case ast.ExprGroup:
		g, _ := p.b.Exprs.Group(id)
		return p.assignable(g.Inner)
	}
	return false
}

// parseBinary parses precedence level and everything tighter.
func (p *Parser) parseBinary(level int) ast.ExprID {
	if level == len(binaryLevels) {
		return p.parseUnary()
	}
	start := p.peek()
	left := p.parseBinary(level + 1)
	for {
		op, ok := binaryLevels[level][p.peek().Kind]
		if !ok {
			return left
		}
		p.advance()
		right := p.parseBinary(level + 1)
		left = p.b.Exprs.NewBinary(p.spanFrom(start), posOf(start), op, left, right)
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	tok := p.peek()
	if op, ok := prefixOps[tok.Kind]; ok {
		p.advance()
		operand := p.parseUnary()
		return p.b.Exprs.NewUnary(p.spanFrom(tok), posOf(tok), op, operand)
	}
	return p.parsePostfix()
}

// parsePostfix applies calls, indexing, member access and ++/-- left to right.
func (p *Parser) parsePostfix() ast.ExprID {
	start := p.peek()
	x := p.parsePrimary()
	if !x.IsValid() {
		return x
	}
	for {
		switch p.peek().Kind {
		case token.LParen:
			p.advance()
			args := p.parseArgs()
			p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
			x = p.b.Exprs.NewCall(p.spanFrom(start), posOf(start), x, args)
		case token.LBracket:
			p.advance()
			index := p.parseExpression()
			p.expect(token.RBracket, diag.SynExpectRightBracket, "expected ']' after index")
			x = p.b.Exprs.NewIndex(p.spanFrom(start), posOf(start), x, index)
		case token.Dot:
			p.advance()
			field, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name after '.'")
			if !ok {
				return x
			}
			x = p.b.Exprs.NewMember(p.spanFrom(start), posOf(start), x, field.Text)
		case token.PlusPlus:
			p.advance()
			x = p.b.Exprs.NewPostfix(p.spanFrom(start), posOf(start), ast.ExprPostfixInc, x)
		case token.MinusMinus:
			p.advance()
			x = p.b.Exprs.NewPostfix(p.spanFrom(start), posOf(start), ast.ExprPostfixDec, x)
		default:
			return x
		}
	}
}

func (p *Parser) parseArgs() []ast.ExprID {
	var args []ast.ExprID
	for !p.check(token.RParen) && !p.check(token.EOF) {
		arg := p.parseExpression()
		if !arg.IsValid() {
			break
		}
		args = append(args, arg)
		if !p.match(token.Comma) {
			break
		}
	}
	return args
}

func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.peek()
	sp, pos := tok.Span, posOf(tok)

	switch tok.Kind {
	case token.IntLit:
		return p.parseIntLit()
	case token.FloatLit:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if errors.Is(err, strconv.ErrRange) {
			p.reportAt(tok, diag.SynIntLiteralOutOfRange, "float literal out of range")
		}
		return p.b.Exprs.NewFloatLit(sp, pos, v, tok.Text)
	case token.CharLit:
		p.advance()
		return p.b.Exprs.NewCharLit(sp, pos, tok.Value, tok.Text)
	case token.StringLit:
		p.advance()
		return p.b.Exprs.NewStringLit(sp, pos, tok.Value, tok.Text)
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.b.Exprs.NewBoolLit(sp, pos, tok.Kind == token.KwTrue)
	case token.KwNull:
		p.advance()
		return p.b.Exprs.NewNullLit(sp, pos)
	case token.Ident:
		p.advance()
		return p.b.Exprs.NewIdent(sp, pos, tok.Text)
	case token.LParen:
		p.advance()
		inner := p.parseExpression()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close '(' at "+lineCol(tok))
		return p.b.Exprs.NewGroup(p.spanFrom(tok), pos, inner)
	case token.KwNew:
		p.advance()
		typ := p.parseType()
		return p.b.Exprs.NewNew(p.spanFrom(tok), pos, typ)
	}

	p.errorAt(tok, diag.SynExpectExpression, "expected expression, found "+describe(tok))
	return ast.NoExprID
}

// parseIntLit converts the current IntLit token. Hex literals without digits
// were already reported by the lexer and become 0 here.
func (p *Parser) parseIntLit() ast.ExprID {
	tok := p.advance()
	text, base := tok.Text, 10
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		text, base = text[2:], 16
	}

	var value uint64
	if text != "" && !strings.ContainsFunc(text, isNotDigit(base)) {
		v, err := strconv.ParseUint(text, base, 64)
		if errors.Is(err, strconv.ErrRange) {
			p.reportAt(tok, diag.SynIntLiteralOutOfRange, "integer literal out of range")
		}
		value = v
	}
	return p.b.Exprs.NewIntLit(tok.Span, posOf(tok), value, tok.Text)
}

func isNotDigit(base int) func(rune) bool {
	return func(r rune) bool {
		switch {
		case r >= '0' && r <= '9':
			return false
		case base == 16 && (r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'):
			return false
		}
		return true
	}
}
