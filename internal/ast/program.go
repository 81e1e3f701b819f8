package ast

import (
	"pal/internal/source"
)

// Program is the root of a parsed file: imports first, then declarations,
// each in source order.
type Program struct {
	Span    source.Span
	Pos     source.LineCol
	Imports []ItemID
	Decls   []ItemID
}

type Programs struct {
	Arena *Arena[Program]
}

func NewPrograms(capHint uint) *Programs {
	return &Programs{Arena: NewArena[Program](capHint)}
}

func (p *Programs) New(span source.Span, pos source.LineCol) ProgramID {
	return ProgramID(p.Arena.Allocate(Program{Span: span, Pos: pos}))
}

func (p *Programs) Get(id ProgramID) *Program {
	return p.Arena.Get(uint32(id))
}
