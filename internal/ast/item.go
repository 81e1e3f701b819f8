package ast

import (
	"strings"

	"pal/internal/source"
)

type ItemKind uint8

const (
	ItemImport ItemKind = iota
	ItemFn
	ItemVar
	ItemStruct
	ItemClass
	ItemEnum
)

func (k ItemKind) String() string {
	switch k {
	case ItemImport:
		return "Import"
	case ItemFn:
		return "Fn"
	case ItemVar:
		return "Var"
	case ItemStruct:
		return "Struct"
	case ItemClass:
		return "Class"
	case ItemEnum:
		return "Enum"
	}
	return "Item(?)"
}

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Pos     source.LineCol
	Payload PayloadID
}

// ImportItem is "import ./a.b;" or "import ../../a;".
type ImportItem struct {
	Local    bool // "./" prefix
	Up       int  // number of "../" prefixes
	Segments []string
}

// Path renders the import the way it was written.
func (im *ImportItem) Path() string {
	var sb strings.Builder
	if im.Local {
		sb.WriteString("./")
	}
	for range im.Up {
		sb.WriteString("../")
	}
	sb.WriteString(strings.Join(im.Segments, "."))
	return sb.String()
}

type FnKind uint8

const (
	FnFunction FnKind = iota
	FnMethod
	FnCtor
	FnDtor
)

func (k FnKind) String() string {
	switch k {
	case FnMethod:
		return "method"
	case FnCtor:
		return "constructor"
	case FnDtor:
		return "destructor"
	}
	return "function"
}

type Param struct {
	Name string
	Type TypeID
	Span source.Span
	Pos  source.LineCol
}

type FnItem struct {
	Name     string
	Kind     FnKind
	Params   []Param
	Variadic bool   // trailing "..."
	Result   TypeID // NoTypeID: no declared return type
	Body     StmtID // StmtBlock
}

// VarDecl is shared by top-level/member variables and local declarations.
type VarDecl struct {
	Name  string
	Type  TypeID
	Value ExprID // NoExprID: no initializer
	Const bool
}

type Visibility uint8

const (
	VisDefault Visibility = iota
	VisPublic
	VisPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisPrivate:
		return "private"
	}
	return ""
}

// Member is one ItemVar or ItemFn inside a struct or class body, with the
// access section it was declared under.
type Member struct {
	Visibility Visibility
	Item       ItemID
}

// RecordItem is the payload of both ItemStruct and ItemClass.
type RecordItem struct {
	Name    string
	Members []Member
}

type EnumVariant struct {
	Name   string
	Params []Param // payload fields, nil when absent
	Value  ExprID  // explicit discriminant, NoExprID when absent
	Span   source.Span
	Pos    source.LineCol
}

type EnumItem struct {
	Name     string
	Variants []EnumVariant
}

type Items struct {
	Arena   *Arena[Item]
	Imports *Arena[ImportItem]
	Fns     *Arena[FnItem]
	Vars    *Arena[VarDecl]
	Records *Arena[RecordItem]
	Enums   *Arena[EnumItem]
}

// NewItems creates and returns an *Items with per-kind arenas initialized to capHint.
func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:   NewArena[Item](capHint),
		Imports: NewArena[ImportItem](capHint / 4),
		Fns:     NewArena[FnItem](capHint),
		Vars:    NewArena[VarDecl](capHint),
		Records: NewArena[RecordItem](capHint / 4),
		Enums:   NewArena[EnumItem](capHint / 4),
	}
}

func (i *Items) new(kind ItemKind, span source.Span, pos source.LineCol, payload PayloadID) ItemID {
	return ItemID(i.Arena.Allocate(Item{Kind: kind, Span: span, Pos: pos, Payload: payload}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewImport(span source.Span, pos source.LineCol, data ImportItem) ItemID {
	return i.new(ItemImport, span, pos, PayloadID(i.Imports.Allocate(data)))
}

func (i *Items) Import(id ItemID) (*ImportItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemImport {
		return nil, false
	}
	return i.Imports.Get(uint32(item.Payload)), true
}

func (i *Items) NewFn(span source.Span, pos source.LineCol, data FnItem) ItemID {
	return i.new(ItemFn, span, pos, PayloadID(i.Fns.Allocate(data)))
}

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

func (i *Items) NewVar(span source.Span, pos source.LineCol, data VarDecl) ItemID {
	return i.new(ItemVar, span, pos, PayloadID(i.Vars.Allocate(data)))
}

func (i *Items) Var(id ItemID) (*VarDecl, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemVar {
		return nil, false
	}
	return i.Vars.Get(uint32(item.Payload)), true
}

func (i *Items) NewStruct(span source.Span, pos source.LineCol, data RecordItem) ItemID {
	return i.new(ItemStruct, span, pos, PayloadID(i.Records.Allocate(data)))
}

func (i *Items) Struct(id ItemID) (*RecordItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemStruct {
		return nil, false
	}
	return i.Records.Get(uint32(item.Payload)), true
}

func (i *Items) NewClass(span source.Span, pos source.LineCol, data RecordItem) ItemID {
	return i.new(ItemClass, span, pos, PayloadID(i.Records.Allocate(data)))
}

func (i *Items) Class(id ItemID) (*RecordItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemClass {
		return nil, false
	}
	return i.Records.Get(uint32(item.Payload)), true
}

func (i *Items) NewEnum(span source.Span, pos source.LineCol, data EnumItem) ItemID {
	return i.new(ItemEnum, span, pos, PayloadID(i.Enums.Allocate(data)))
}

func (i *Items) Enum(id ItemID) (*EnumItem, bool) {
	item := i.Get(id)
	if item == nil || item.Kind != ItemEnum {
		return nil, false
	}
	return i.Enums.Get(uint32(item.Payload)), true
}
