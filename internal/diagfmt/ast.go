package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"

	"pal/internal/ast"
	"pal/internal/source"
)

// ASTNode is a self-contained copy of one tree node, detached from the
// builder's arenas so it can be printed or serialized.
type ASTNode struct {
	Class    string     `json:"class"`
	Kind     string     `json:"kind"`
	Label    string     `json:"label,omitempty"`
	Line     uint32     `json:"line"`
	Column   uint32     `json:"column"`
	Children []*ASTNode `json:"children,omitempty"`
}

// BuildASTTree copies the tree rooted at prog in source order.
func BuildASTTree(b *ast.Builder, prog ast.ProgramID) *ASTNode {
	var (
		root  *ASTNode
		stack []*ASTNode
	)
	ast.Walk(b, prog, func(n ast.Node, depth int) bool {
		node := describeNode(b, n)
		stack = stack[:depth]
		if depth == 0 {
			root = node
		} else {
			parent := stack[depth-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
		return true
	})
	return root
}

func describeNode(b *ast.Builder, n ast.Node) *ASTNode {
	out := &ASTNode{Class: n.Class.String()}
	var pos source.LineCol
	switch n.Class {
	case ast.NodeProgram:
		out.Kind = "Program"
		if p := b.Programs.Get(ast.ProgramID(n.ID)); p != nil {
			pos = p.Pos
		}
	case ast.NodeItem:
		id := ast.ItemID(n.ID)
		if it := b.Items.Get(id); it != nil {
			out.Kind, pos = it.Kind.String(), it.Pos
			out.Label = itemLabel(b, id, it.Kind)
		}
	case ast.NodeStmt:
		id := ast.StmtID(n.ID)
		if st := b.Stmts.Get(id); st != nil {
			out.Kind, pos = st.Kind.String(), st.Pos
			if v, ok := b.Stmts.Var(id); ok {
				out.Label = varLabel(v)
			}
		}
	case ast.NodeExpr:
		id := ast.ExprID(n.ID)
		if ex := b.Exprs.Get(id); ex != nil {
			out.Kind, pos = ex.Kind.String(), ex.Pos
			out.Label = exprLabel(b, id, ex.Kind)
		}
	case ast.NodeType:
		id := ast.TypeID(n.ID)
		if ty := b.Types.Get(id); ty != nil {
			out.Kind, pos = ty.Kind.String(), ty.Pos
			if d, ok := b.Types.Builtin(id); ok {
				out.Label = d.Name()
			} else if d, ok := b.Types.User(id); ok {
				out.Label = d.Name
			}
		}
	}
	out.Line, out.Column = pos.Line, pos.Col
	return out
}

func itemLabel(b *ast.Builder, id ast.ItemID, kind ast.ItemKind) string {
	switch kind {
	case ast.ItemImport:
		im, _ := b.Items.Import(id)
		return im.Path()
	case ast.ItemFn:
		fn, _ := b.Items.Fn(id)
		names := make([]string, 0, len(fn.Params)+1)
		for _, p := range fn.Params {
			names = append(names, p.Name)
		}
		if fn.Variadic {
			names = append(names, "...")
		}
		label := fmt.Sprintf("%s(%s)", fn.Name, strings.Join(names, ", "))
		if fn.Kind != ast.FnFunction {
			label = fn.Kind.String() + " " + label
		}
		return label
	case ast.ItemVar:
		v, _ := b.Items.Var(id)
		return varLabel(v)
	case ast.ItemStruct, ast.ItemClass:
		rec := b.Items.Records.Get(uint32(b.Items.Get(id).Payload))
		return rec.Name
	case ast.ItemEnum:
		en, _ := b.Items.Enum(id)
		names := make([]string, len(en.Variants))
		for i, v := range en.Variants {
			names[i] = v.Name
		}
		return fmt.Sprintf("%s {%s}", en.Name, strings.Join(names, ", "))
	}
	return ""
}

func varLabel(v *ast.VarDecl) string {
	if v.Const {
		return "const " + v.Name
	}
	return v.Name
}

func exprLabel(b *ast.Builder, id ast.ExprID, kind ast.ExprKind) string {
	switch kind {
	case ast.ExprIdent:
		d, _ := b.Exprs.Ident(id)
		return d.Name
	case ast.ExprIntLit:
		d, _ := b.Exprs.IntLit(id)
		return d.Raw
	case ast.ExprFloatLit:
		d, _ := b.Exprs.FloatLit(id)
		return d.Raw
	case ast.ExprCharLit:
		d, _ := b.Exprs.CharLit(id)
		return d.Raw
	case ast.ExprStringLit:
		d, _ := b.Exprs.StringLit(id)
		return d.Raw
	case ast.ExprBoolLit:
		d, _ := b.Exprs.BoolLit(id)
		return fmt.Sprint(d.Value)
	case ast.ExprNullLit:
		return "null"
	case ast.ExprAssign:
		d, _ := b.Exprs.Assign(id)
		return d.Op.String()
	case ast.ExprBinary:
		d, _ := b.Exprs.Binary(id)
		return d.Op.String()
	case ast.ExprUnary:
		d, _ := b.Exprs.Unary(id)
		return d.Op.String()
	case ast.ExprPostfix:
		d, _ := b.Exprs.Postfix(id)
		return d.Op.String()
	case ast.ExprMember:
		d, _ := b.Exprs.Member(id)
		return "." + d.Field
	}
	return ""
}

// FormatASTTree draws the tree with box-drawing connectors, one node per line.
func FormatASTTree(w io.Writer, b *ast.Builder, prog ast.ProgramID) error {
	root := BuildASTTree(b, prog)
	if root == nil {
		return nil
	}
	var sb strings.Builder
	sb.WriteString(root.line())
	sb.WriteByte('\n')
	writeChildren(&sb, root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeChildren(sb *strings.Builder, n *ASTNode, prefix string) {
	for i, c := range n.Children {
		last := i == len(n.Children)-1
		connector, next := "├── ", "│   "
		if last {
			connector, next = "└── ", "    "
		}
		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(c.line())
		sb.WriteByte('\n')
		writeChildren(sb, c, prefix+next)
	}
}

func (n *ASTNode) line() string {
	if n.Label == "" {
		return fmt.Sprintf("%s (%d:%d)", n.Kind, n.Line, n.Column)
	}
	return fmt.Sprintf("%s %s (%d:%d)", n.Kind, n.Label, n.Line, n.Column)
}

func FormatASTJSON(w io.Writer, b *ast.Builder, prog ast.ProgramID) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildASTTree(b, prog))
}

// FormatASTRepr dumps the detached tree as Go syntax.
func FormatASTRepr(w io.Writer, b *ast.Builder, prog ast.ProgramID) error {
	repr.New(w, repr.Indent("  "), repr.OmitEmpty(true)).Println(BuildASTTree(b, prog))
	return nil
}
