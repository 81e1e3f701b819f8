package ast

import (
	"pal/internal/source"
	"pal/internal/token"
)

type TypeKind uint8

const (
	TypeBuiltin TypeKind = iota
	TypeUser
	TypePointer
	TypeArray
)

func (k TypeKind) String() string {
	switch k {
	case TypeBuiltin:
		return "Builtin"
	case TypeUser:
		return "User"
	case TypePointer:
		return "Pointer"
	case TypeArray:
		return "Array"
	}
	return "Type(?)"
}

type Type struct {
	Kind    TypeKind
	Span    source.Span
	Pos     source.LineCol
	Payload PayloadID
}

type TypeBuiltinData struct {
	Kind token.Kind // KwI32, KwVoid, ...
}

func (d *TypeBuiltinData) Name() string { return d.Kind.Lexeme() }

type TypeUserData struct {
	Name string
}

type TypePointerData struct {
	Elem TypeID
}

type TypeArrayData struct {
	Elem TypeID
	Len  ExprID // NoExprID for "[]"
}

type Types struct {
	Arena    *Arena[Type]
	Builtins *Arena[TypeBuiltinData]
	Users    *Arena[TypeUserData]
	Pointers *Arena[TypePointerData]
	Arrays   *Arena[TypeArrayData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Types{
		Arena:    NewArena[Type](capHint),
		Builtins: NewArena[TypeBuiltinData](capHint),
		Users:    NewArena[TypeUserData](capHint / 4),
		Pointers: NewArena[TypePointerData](capHint / 4),
		Arrays:   NewArena[TypeArrayData](capHint / 4),
	}
}

func (t *Types) new(kind TypeKind, span source.Span, pos source.LineCol, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(Type{Kind: kind, Span: span, Pos: pos, Payload: payload}))
}

func (t *Types) Get(id TypeID) *Type {
	return t.Arena.Get(uint32(id))
}

func (t *Types) payload(id TypeID, kind TypeKind) (uint32, bool) {
	n := t.Get(id)
	if n == nil || n.Kind != kind {
		return 0, false
	}
	return uint32(n.Payload), true
}

func (t *Types) NewBuiltin(span source.Span, pos source.LineCol, kind token.Kind) TypeID {
	return t.new(TypeBuiltin, span, pos, PayloadID(t.Builtins.Allocate(TypeBuiltinData{Kind: kind})))
}

func (t *Types) Builtin(id TypeID) (*TypeBuiltinData, bool) {
	p, ok := t.payload(id, TypeBuiltin)
	if !ok {
		return nil, false
	}
	return t.Builtins.Get(p), true
}

func (t *Types) NewUser(span source.Span, pos source.LineCol, name string) TypeID {
	return t.new(TypeUser, span, pos, PayloadID(t.Users.Allocate(TypeUserData{Name: name})))
}

func (t *Types) User(id TypeID) (*TypeUserData, bool) {
	p, ok := t.payload(id, TypeUser)
	if !ok {
		return nil, false
	}
	return t.Users.Get(p), true
}

func (t *Types) NewPointer(span source.Span, pos source.LineCol, elem TypeID) TypeID {
	return t.new(TypePointer, span, pos, PayloadID(t.Pointers.Allocate(TypePointerData{Elem: elem})))
}

func (t *Types) Pointer(id TypeID) (*TypePointerData, bool) {
	p, ok := t.payload(id, TypePointer)
	if !ok {
		return nil, false
	}
	return t.Pointers.Get(p), true
}

func (t *Types) NewArray(span source.Span, pos source.LineCol, elem TypeID, length ExprID) TypeID {
	return t.new(TypeArray, span, pos, PayloadID(t.Arrays.Allocate(TypeArrayData{Elem: elem, Len: length})))
}

func (t *Types) Array(id TypeID) (*TypeArrayData, bool) {
	p, ok := t.payload(id, TypeArray)
	if !ok {
		return nil, false
	}
	return t.Arrays.Get(p), true
}
