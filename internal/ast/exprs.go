package ast

import (
	"pal/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena     *Arena[Expr]
	Idents    *Arena[ExprIdentData]
	Ints      *Arena[ExprIntLitData]
	Floats    *Arena[ExprFloatLitData]
	Texts     *Arena[ExprTextLitData]
	Bools     *Arena[ExprBoolLitData]
	Assigns   *Arena[ExprAssignData]
	Binaries  *Arena[ExprBinaryData]
	Unaries   *Arena[ExprUnaryData]
	Postfixes *Arena[ExprPostfixData]
	Calls     *Arena[ExprCallData]
	Indices   *Arena[ExprIndexData]
	Members   *Arena[ExprMemberData]
	Groups    *Arena[ExprGroupData]
	News      *Arena[ExprNewData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint as the initial capacity.
// If capHint is 0, a default capacity of 1<<8 is used.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/8 + 1
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Idents:    NewArena[ExprIdentData](capHint / 2),
		Ints:      NewArena[ExprIntLitData](capHint / 4),
		Floats:    NewArena[ExprFloatLitData](small),
		Texts:     NewArena[ExprTextLitData](small),
		Bools:     NewArena[ExprBoolLitData](small),
		Assigns:   NewArena[ExprAssignData](small),
		Binaries:  NewArena[ExprBinaryData](capHint / 4),
		Unaries:   NewArena[ExprUnaryData](small),
		Postfixes: NewArena[ExprPostfixData](small),
		Calls:     NewArena[ExprCallData](small),
		Indices:   NewArena[ExprIndexData](small),
		Members:   NewArena[ExprMemberData](small),
		Groups:    NewArena[ExprGroupData](small),
		News:      NewArena[ExprNewData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, pos source.LineCol, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Pos:     pos,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kinds ...ExprKind) (uint32, bool) {
	expr := e.Get(id)
	if expr == nil {
		return 0, false
	}
	for _, k := range kinds {
		if expr.Kind == k {
			return uint32(expr.Payload), true
		}
	}
	return 0, false
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, pos source.LineCol, name string) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, pos, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	p, ok := e.payload(id, ExprIdent)
	if !ok {
		return nil, false
	}
	return e.Idents.Get(p), true
}

func (e *Exprs) NewIntLit(span source.Span, pos source.LineCol, value uint64, raw string) ExprID {
	payload := e.Ints.Allocate(ExprIntLitData{Value: value, Raw: raw})
	return e.new(ExprIntLit, span, pos, PayloadID(payload))
}

func (e *Exprs) IntLit(id ExprID) (*ExprIntLitData, bool) {
	p, ok := e.payload(id, ExprIntLit)
	if !ok {
		return nil, false
	}
	return e.Ints.Get(p), true
}

func (e *Exprs) NewFloatLit(span source.Span, pos source.LineCol, value float64, raw string) ExprID {
	payload := e.Floats.Allocate(ExprFloatLitData{Value: value, Raw: raw})
	return e.new(ExprFloatLit, span, pos, PayloadID(payload))
}

func (e *Exprs) FloatLit(id ExprID) (*ExprFloatLitData, bool) {
	p, ok := e.payload(id, ExprFloatLit)
	if !ok {
		return nil, false
	}
	return e.Floats.Get(p), true
}

func (e *Exprs) NewCharLit(span source.Span, pos source.LineCol, value, raw string) ExprID {
	payload := e.Texts.Allocate(ExprTextLitData{Value: value, Raw: raw})
	return e.new(ExprCharLit, span, pos, PayloadID(payload))
}

func (e *Exprs) NewStringLit(span source.Span, pos source.LineCol, value, raw string) ExprID {
	payload := e.Texts.Allocate(ExprTextLitData{Value: value, Raw: raw})
	return e.new(ExprStringLit, span, pos, PayloadID(payload))
}

// CharLit returns the payload of a char literal.
func (e *Exprs) CharLit(id ExprID) (*ExprTextLitData, bool) {
	p, ok := e.payload(id, ExprCharLit)
	if !ok {
		return nil, false
	}
	return e.Texts.Get(p), true
}

// StringLit returns the payload of a string literal.
func (e *Exprs) StringLit(id ExprID) (*ExprTextLitData, bool) {
	p, ok := e.payload(id, ExprStringLit)
	if !ok {
		return nil, false
	}
	return e.Texts.Get(p), true
}

func (e *Exprs) NewBoolLit(span source.Span, pos source.LineCol, value bool) ExprID {
	payload := e.Bools.Allocate(ExprBoolLitData{Value: value})
	return e.new(ExprBoolLit, span, pos, PayloadID(payload))
}

func (e *Exprs) BoolLit(id ExprID) (*ExprBoolLitData, bool) {
	p, ok := e.payload(id, ExprBoolLit)
	if !ok {
		return nil, false
	}
	return e.Bools.Get(p), true
}

func (e *Exprs) NewNullLit(span source.Span, pos source.LineCol) ExprID {
	return e.new(ExprNullLit, span, pos, NoPayloadID)
}

func (e *Exprs) NewAssign(span source.Span, pos source.LineCol, op ExprAssignOp, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Op: op, Target: target, Value: value})
	return e.new(ExprAssign, span, pos, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	p, ok := e.payload(id, ExprAssign)
	if !ok {
		return nil, false
	}
	return e.Assigns.Get(p), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, pos source.LineCol, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, pos, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	p, ok := e.payload(id, ExprBinary)
	if !ok {
		return nil, false
	}
	return e.Binaries.Get(p), true
}

func (e *Exprs) NewUnary(span source.Span, pos source.LineCol, op ExprUnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, pos, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	p, ok := e.payload(id, ExprUnary)
	if !ok {
		return nil, false
	}
	return e.Unaries.Get(p), true
}

func (e *Exprs) NewPostfix(span source.Span, pos source.LineCol, op ExprPostfixOp, operand ExprID) ExprID {
	payload := e.Postfixes.Allocate(ExprPostfixData{Op: op, Operand: operand})
	return e.new(ExprPostfix, span, pos, PayloadID(payload))
}

func (e *Exprs) Postfix(id ExprID) (*ExprPostfixData, bool) {
	p, ok := e.payload(id, ExprPostfix)
	if !ok {
		return nil, false
	}
	return e.Postfixes.Get(p), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, pos source.LineCol, target ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Target: target, Args: args})
	return e.new(ExprCall, span, pos, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	p, ok := e.payload(id, ExprCall)
	if !ok {
		return nil, false
	}
	return e.Calls.Get(p), true
}

func (e *Exprs) NewIndex(span source.Span, pos source.LineCol, target, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, pos, PayloadID(payload))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	p, ok := e.payload(id, ExprIndex)
	if !ok {
		return nil, false
	}
	return e.Indices.Get(p), true
}

func (e *Exprs) NewMember(span source.Span, pos source.LineCol, target ExprID, field string) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Target: target, Field: field})
	return e.new(ExprMember, span, pos, PayloadID(payload))
}

func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	p, ok := e.payload(id, ExprMember)
	if !ok {
		return nil, false
	}
	return e.Members.Get(p), true
}

func (e *Exprs) NewGroup(span source.Span, pos source.LineCol, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, pos, PayloadID(payload))
}

func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	p, ok := e.payload(id, ExprGroup)
	if !ok {
		return nil, false
	}
	return e.Groups.Get(p), true
}

func (e *Exprs) NewNew(span source.Span, pos source.LineCol, typ TypeID) ExprID {
	payload := e.News.Allocate(ExprNewData{Type: typ})
	return e.new(ExprNew, span, pos, PayloadID(payload))
}

// Alloc returns the payload of a "new Type" expression.
func (e *Exprs) Alloc(id ExprID) (*ExprNewData, bool) {
	p, ok := e.payload(id, ExprNew)
	if !ok {
		return nil, false
	}
	return e.News.Get(p), true
}
