package parser

import (
	"fmt"
	"strings"
	"testing"

	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/lexer"
)

func parseSource(t *testing.T, src string) (*Result, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	toks := lexer.Tokenize("test.pal", []byte(src), bag)
	res := Parse("test.pal", toks, bag)
	if res == nil || !res.Program.IsValid() {
		t.Fatalf("Parse(%q) returned no program", src)
	}
	return res, bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parserDiags(bag *diag.Bag) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range bag.Items() {
		if d.Category == diag.CatParser {
			out = append(out, d)
		}
	}
	return out
}

func program(res *Result) *ast.Program {
	return res.Builder.Programs.Get(res.Program)
}

// onlyDecl returns the single top-level declaration of res.
func onlyDecl(t *testing.T, res *Result) (ast.ItemID, *ast.Item) {
	t.Helper()
	prog := program(res)
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(prog.Decls))
	}
	return prog.Decls[0], res.Builder.Items.Get(prog.Decls[0])
}

// bodyStmts returns the statements of the single function in src.
func bodyStmts(t *testing.T, src string) (*Result, []ast.StmtID) {
	t.Helper()
	res, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(bag))
	}
	id, _ := onlyDecl(t, res)
	fn, ok := res.Builder.Items.Fn(id)
	if !ok {
		t.Fatalf("declaration is not a function")
	}
	block, ok := res.Builder.Stmts.Block(fn.Body)
	if !ok {
		t.Fatalf("function body is not a block")
	}
	return res, block.Stmts
}

// initOf returns the initializer of the first local declaration in src.
func initOf(t *testing.T, src string) (*Result, ast.ExprID) {
	t.Helper()
	res, stmts := bodyStmts(t, src)
	decl, ok := res.Builder.Stmts.Var(stmts[0])
	if !ok {
		t.Fatalf("first statement is not a declaration")
	}
	return res, decl.Value
}

// sexpr renders an expression as a compact s-expression for shape assertions.
func sexpr(b *ast.Builder, id ast.ExprID) string {
	e := b.Exprs.Get(id)
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
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
		return "(" + d.Op.String() + " " + sexpr(b, d.Target) + " " + sexpr(b, d.Value) + ")"
	case ast.ExprBinary:
		d, _ := b.Exprs.Binary(id)
		return "(" + d.Op.String() + " " + sexpr(b, d.Left) + " " + sexpr(b, d.Right) + ")"
	case ast.ExprUnary:
		d, _ := b.Exprs.Unary(id)
		return "(" + d.Op.String() + " " + sexpr(b, d.Operand) + ")"
	case ast.ExprPostfix:
		d, _ := b.Exprs.Postfix(id)
		return "(post" + d.Op.String() + " " + sexpr(b, d.Operand) + ")"
	case ast.ExprCall:
		d, _ := b.Exprs.Call(id)
		parts := []string{"call", sexpr(b, d.Target)}
		for _, a := range d.Args {
			parts = append(parts, sexpr(b, a))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprIndex:
		d, _ := b.Exprs.Index(id)
		return "(index " + sexpr(b, d.Target) + " " + sexpr(b, d.Index) + ")"
	case ast.ExprMember:
		d, _ := b.Exprs.Member(id)
		return "(. " + sexpr(b, d.Target) + " " + d.Field + ")"
	case ast.ExprGroup:
		d, _ := b.Exprs.Group(id)
		return "(group " + sexpr(b, d.Inner) + ")"
	case ast.ExprNew:
		d, _ := b.Exprs.Alloc(id)
		return "(new " + typeString(b, d.Type) + ")"
	}
	return "?"
}

func typeString(b *ast.Builder, id ast.TypeID) string {
	t := b.Types.Get(id)
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case ast.TypeBuiltin:
		d, _ := b.Types.Builtin(id)
		return d.Name()
	case ast.TypeUser:
		d, _ := b.Types.User(id)
		return d.Name
	case ast.TypePointer:
		d, _ := b.Types.Pointer(id)
		return typeString(b, d.Elem) + "*"
	case ast.TypeArray:
		d, _ := b.Types.Array(id)
		return typeString(b, d.Elem) + "[" + sexprOrEmpty(b, d.Len) + "]"
	}
	return "?"
}

func sexprOrEmpty(b *ast.Builder, id ast.ExprID) string {
	if !id.IsValid() {
		return ""
	}
	return sexpr(b, id)
}
