package ast

type Hints struct{ Items, Stmts, Exprs, Types uint }

// Builder owns every node of one parsed file. Dropping it drops the tree.
type Builder struct {
	Programs *Programs
	Items    *Items
	Stmts    *Stmts
	Exprs    *Exprs
	Types    *Types
}

func NewBuilder(hints Hints) *Builder {
	if hints.Items == 0 {
		hints.Items = 1 << 6
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 7
	}
	return &Builder{
		Programs: NewPrograms(1),
		Items:    NewItems(hints.Items),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Types:    NewTypes(hints.Types),
	}
}

// HintsFor sizes the arenas from a token count.
func HintsFor(tokens int) Hints {
	n := uint(0)
	if tokens > 0 {
		n = uint(tokens)
	}
	return Hints{Items: n/16 + 1, Stmts: n/4 + 1, Exprs: n/2 + 1, Types: n/8 + 1}
}
