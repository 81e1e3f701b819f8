package ast

// NodeClass tells which arena a Node lives in.
type NodeClass uint8

const (
	NodeProgram NodeClass = iota
	NodeItem
	NodeStmt
	NodeExpr
	NodeType
)

func (c NodeClass) String() string {
	switch c {
	case NodeProgram:
		return "program"
	case NodeItem:
		return "item"
	case NodeStmt:
		return "stmt"
	case NodeExpr:
		return "expr"
	case NodeType:
		return "type"
	}
	return "node(?)"
}

// Node is a class-tagged reference to any node in a Builder.
type Node struct {
	Class NodeClass
	ID    uint32
}

func ProgramNode(id ProgramID) Node { return Node{Class: NodeProgram, ID: uint32(id)} }
func ItemNode(id ItemID) Node       { return Node{Class: NodeItem, ID: uint32(id)} }
func StmtNode(id StmtID) Node       { return Node{Class: NodeStmt, ID: uint32(id)} }
func ExprNode(id ExprID) Node       { return Node{Class: NodeExpr, ID: uint32(id)} }
func TypeNode(id TypeID) Node       { return Node{Class: NodeType, ID: uint32(id)} }

type children []Node

func (c *children) item(id ItemID) {
	if id.IsValid() {
		*c = append(*c, ItemNode(id))
	}
}

func (c *children) stmt(id StmtID) {
	if id.IsValid() {
		*c = append(*c, StmtNode(id))
	}
}

func (c *children) expr(id ExprID) {
	if id.IsValid() {
		*c = append(*c, ExprNode(id))
	}
}

func (c *children) typ(id TypeID) {
	if id.IsValid() {
		*c = append(*c, TypeNode(id))
	}
}

func (c *children) params(ps []Param) {
	for _, p := range ps {
		c.typ(p.Type)
	}
}

// Children lists the direct children of n in source order.
// Absent (zero) references are skipped.
func (b *Builder) Children(n Node) []Node {
	var out children
	switch n.Class {
	case NodeProgram:
		if p := b.Programs.Get(ProgramID(n.ID)); p != nil {
			for _, id := range p.Imports {
				out.item(id)
			}
			for _, id := range p.Decls {
				out.item(id)
			}
		}
	case NodeItem:
		b.itemChildren(ItemID(n.ID), &out)
	case NodeStmt:
		b.stmtChildren(StmtID(n.ID), &out)
	case NodeExpr:
		b.exprChildren(ExprID(n.ID), &out)
	case NodeType:
		if d, ok := b.Types.Pointer(TypeID(n.ID)); ok {
			out.typ(d.Elem)
		} else if d, ok := b.Types.Array(TypeID(n.ID)); ok {
			out.typ(d.Elem)
			out.expr(d.Len)
		}
	}
	return out
}

func (b *Builder) itemChildren(id ItemID, out *children) {
	item := b.Items.Get(id)
	if item == nil {
		return
	}
	switch item.Kind {
	case ItemFn:
		fn, _ := b.Items.Fn(id)
		out.params(fn.Params)
		out.typ(fn.Result)
		out.stmt(fn.Body)
	case ItemVar:
		v, _ := b.Items.Var(id)
		out.typ(v.Type)
		out.expr(v.Value)
	case ItemStruct, ItemClass:
		rec := b.Items.Records.Get(uint32(item.Payload))
		for _, m := range rec.Members {
			out.item(m.Item)
		}
	case ItemEnum:
		en, _ := b.Items.Enum(id)
		for _, v := range en.Variants {
			out.params(v.Params)
			out.expr(v.Value)
		}
	}
}

func (b *Builder) stmtChildren(id StmtID, out *children) {
	st := b.Stmts.Get(id)
	if st == nil {
		return
	}
	switch st.Kind {
	case StmtBlock:
		blk, _ := b.Stmts.Block(id)
		for _, s := range blk.Stmts {
			out.stmt(s)
		}
	case StmtVar:
		v, _ := b.Stmts.Var(id)
		out.typ(v.Type)
		out.expr(v.Value)
	case StmtIf:
		d, _ := b.Stmts.If(id)
		out.expr(d.Cond)
		out.stmt(d.Then)
		out.stmt(d.Else)
	case StmtWhile:
		d, _ := b.Stmts.While(id)
		out.expr(d.Cond)
		out.stmt(d.Body)
	case StmtFor:
		d, _ := b.Stmts.For(id)
		out.stmt(d.Init)
		out.expr(d.Cond)
		out.expr(d.Post)
		out.stmt(d.Body)
	case StmtReturn:
		d, _ := b.Stmts.Return(id)
		out.expr(d.Value)
	case StmtDelete:
		d, _ := b.Stmts.Delete(id)
		out.expr(d.Target)
	case StmtExpr:
		d, _ := b.Stmts.Expr(id)
		out.expr(d.X)
	}
}

func (b *Builder) exprChildren(id ExprID, out *children) {
	ex := b.Exprs.Get(id)
	if ex == nil {
		return
	}
	switch ex.Kind {
	case ExprAssign:
		d, _ := b.Exprs.Assign(id)
		out.expr(d.Target)
		out.expr(d.Value)
	case ExprBinary:
		d, _ := b.Exprs.Binary(id)
		out.expr(d.Left)
		out.expr(d.Right)
	case ExprUnary:
		d, _ := b.Exprs.Unary(id)
		out.expr(d.Operand)
	case ExprPostfix:
		d, _ := b.Exprs.Postfix(id)
		out.expr(d.Operand)
	case ExprCall:
		d, _ := b.Exprs.Call(id)
		out.expr(d.Target)
		for _, a := range d.Args {
			out.expr(a)
		}
	case ExprIndex:
		d, _ := b.Exprs.Index(id)
		out.expr(d.Target)
		out.expr(d.Index)
	case ExprMember:
		d, _ := b.Exprs.Member(id)
		out.expr(d.Target)
	case ExprGroup:
		d, _ := b.Exprs.Group(id)
		out.expr(d.Inner)
	case ExprNew:
		d, _ := b.Exprs.Alloc(id)
		out.typ(d.Type)
	}
}

// VisitFunc is called for every node in pre-order. Returning false skips
// the node's children.
type VisitFunc func(n Node, depth int) bool

// Walk visits the tree rooted at the program in pre-order.
func Walk(b *Builder, root ProgramID, fn VisitFunc) {
	walk(b, ProgramNode(root), 0, fn)
}

// WalkNode visits the subtree rooted at n.
func WalkNode(b *Builder, n Node, fn VisitFunc) {
	walk(b, n, 0, fn)
}

func walk(b *Builder, n Node, depth int, fn VisitFunc) {
	if !fn(n, depth) {
		return
	}
	for _, c := range b.Children(n) {
		walk(b, c, depth+1, fn)
	}
}
