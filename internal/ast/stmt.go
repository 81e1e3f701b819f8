package ast

import (
	"pal/internal/source"
)

type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtVar
	StmtIf
	StmtWhile
	StmtFor
	StmtReturn
	StmtBreak
	StmtContinue
	StmtDelete
	StmtExpr
	StmtEmpty
)

func (k StmtKind) String() string {
	switch k {
	case StmtBlock:
		return "Block"
	case StmtVar:
		return "Var"
	case StmtIf:
		return "If"
	case StmtWhile:
		return "While"
	case StmtFor:
		return "For"
	case StmtReturn:
		return "Return"
	case StmtBreak:
		return "Break"
	case StmtContinue:
		return "Continue"
	case StmtDelete:
		return "Delete"
	case StmtExpr:
		return "ExprStmt"
	case StmtEmpty:
		return "Empty"
	}
	return "Stmt(?)"
}

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Pos     source.LineCol
	Payload PayloadID
}

type BlockStmt struct {
	Stmts []StmtID
}

type IfStmt struct {
	Cond ExprID
	Then StmtID
	Else StmtID // NoStmtID without else
}

type WhileStmt struct {
	Cond ExprID
	Body StmtID
}

// ForStmt is "for (init; cond; post) body"; every header part is optional.
type ForStmt struct {
	Init StmtID // StmtVar or StmtExpr
	Cond ExprID
	Post ExprID
	Body StmtID
}

type ReturnStmt struct {
	Value ExprID
}

type DeleteStmt struct {
	Target ExprID
}

type ExprStmt struct {
	X ExprID
}

type Stmts struct {
	Arena   *Arena[Stmt]
	Blocks  *Arena[BlockStmt]
	Vars    *Arena[VarDecl]
	Ifs     *Arena[IfStmt]
	Whiles  *Arena[WhileStmt]
	Fors    *Arena[ForStmt]
	Returns *Arena[ReturnStmt]
	Deletes *Arena[DeleteStmt]
	Exprs   *Arena[ExprStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/8 + 1
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Blocks:  NewArena[BlockStmt](capHint / 2),
		Vars:    NewArena[VarDecl](capHint / 2),
		Ifs:     NewArena[IfStmt](small),
		Whiles:  NewArena[WhileStmt](small),
		Fors:    NewArena[ForStmt](small),
		Returns: NewArena[ReturnStmt](small),
		Deletes: NewArena[DeleteStmt](small),
		Exprs:   NewArena[ExprStmt](capHint / 2),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, pos source.LineCol, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Pos: pos, Payload: payload}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kind StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != kind {
		return 0, false
	}
	return uint32(st.Payload), true
}

func (s *Stmts) NewBlock(span source.Span, pos source.LineCol, stmts []StmtID) StmtID {
	return s.new(StmtBlock, span, pos, PayloadID(s.Blocks.Allocate(BlockStmt{Stmts: stmts})))
}

func (s *Stmts) Block(id StmtID) (*BlockStmt, bool) {
	p, ok := s.payload(id, StmtBlock)
	if !ok {
		return nil, false
	}
	return s.Blocks.Get(p), true
}

func (s *Stmts) NewVar(span source.Span, pos source.LineCol, decl VarDecl) StmtID {
	return s.new(StmtVar, span, pos, PayloadID(s.Vars.Allocate(decl)))
}

func (s *Stmts) Var(id StmtID) (*VarDecl, bool) {
	p, ok := s.payload(id, StmtVar)
	if !ok {
		return nil, false
	}
	return s.Vars.Get(p), true
}

func (s *Stmts) NewIf(span source.Span, pos source.LineCol, cond ExprID, then, els StmtID) StmtID {
	return s.new(StmtIf, span, pos, PayloadID(s.Ifs.Allocate(IfStmt{Cond: cond, Then: then, Else: els})))
}

func (s *Stmts) If(id StmtID) (*IfStmt, bool) {
	p, ok := s.payload(id, StmtIf)
	if !ok {
		return nil, false
	}
	return s.Ifs.Get(p), true
}

func (s *Stmts) NewWhile(span source.Span, pos source.LineCol, cond ExprID, body StmtID) StmtID {
	return s.new(StmtWhile, span, pos, PayloadID(s.Whiles.Allocate(WhileStmt{Cond: cond, Body: body})))
}

func (s *Stmts) While(id StmtID) (*WhileStmt, bool) {
	p, ok := s.payload(id, StmtWhile)
	if !ok {
		return nil, false
	}
	return s.Whiles.Get(p), true
}

func (s *Stmts) NewFor(span source.Span, pos source.LineCol, data ForStmt) StmtID {
	return s.new(StmtFor, span, pos, PayloadID(s.Fors.Allocate(data)))
}

func (s *Stmts) For(id StmtID) (*ForStmt, bool) {
	p, ok := s.payload(id, StmtFor)
	if !ok {
		return nil, false
	}
	return s.Fors.Get(p), true
}

func (s *Stmts) NewReturn(span source.Span, pos source.LineCol, value ExprID) StmtID {
	return s.new(StmtReturn, span, pos, PayloadID(s.Returns.Allocate(ReturnStmt{Value: value})))
}

func (s *Stmts) Return(id StmtID) (*ReturnStmt, bool) {
	p, ok := s.payload(id, StmtReturn)
	if !ok {
		return nil, false
	}
	return s.Returns.Get(p), true
}

// NewBreak, NewContinue and NewEmpty carry no payload.
func (s *Stmts) NewBreak(span source.Span, pos source.LineCol) StmtID {
	return s.new(StmtBreak, span, pos, NoPayloadID)
}

func (s *Stmts) NewContinue(span source.Span, pos source.LineCol) StmtID {
	return s.new(StmtContinue, span, pos, NoPayloadID)
}

// NewEmpty records a bare ';'.
func (s *Stmts) NewEmpty(span source.Span, pos source.LineCol) StmtID {
	return s.new(StmtEmpty, span, pos, NoPayloadID)
}

func (s *Stmts) NewDelete(span source.Span, pos source.LineCol, target ExprID) StmtID {
	return s.new(StmtDelete, span, pos, PayloadID(s.Deletes.Allocate(DeleteStmt{Target: target})))
}

func (s *Stmts) Delete(id StmtID) (*DeleteStmt, bool) {
	p, ok := s.payload(id, StmtDelete)
	if !ok {
		return nil, false
	}
	return s.Deletes.Get(p), true
}

func (s *Stmts) NewExpr(span source.Span, pos source.LineCol, x ExprID) StmtID {
	return s.new(StmtExpr, span, pos, PayloadID(s.Exprs.Allocate(ExprStmt{X: x})))
}

func (s *Stmts) Expr(id StmtID) (*ExprStmt, bool) {
	p, ok := s.payload(id, StmtExpr)
	if !ok {
		return nil, false
	}
	return s.Exprs.Get(p), true
}
