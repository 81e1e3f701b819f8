package parser

import (
	"testing"

	"pal/internal/ast"
	"pal/internal/source"
)

func TestExpressionShapes(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"a - b - c", "(- (- a b) c)"},
		{"a / b % c * d", "(* (% (/ a b) c) d)"},
		{"a || b && c", "(|| a (&& b c))"},
		{"a && b || c && d", "(|| (&& a b) (&& c d))"},
		{"a == b != c", "(!= (== a b) c)"},
		{"5 > 3", "(> 5 3)"},
		{"a < b + c", "(< a (+ b c))"},
		{"a == b < c", "(== a (< b c))"},
		{"a | b ^ c & d", "(| a (^ b (& c d)))"},
		{"a & b << 2", "(& a (<< b 2))"},
		{"a << 1 + b", "(<< a (+ 1 b))"},
		{"-x * y", "(* (- x) y)"},
		{"!a && b", "(&& (! a) b)"},
		{"~*p", "(~ (* p))"},
		{"&a[0]", "(& (index a 0))"},
		{"++i + i--", "(+ (++ i) (post-- i))"},
		{"foo(1, 2, 3)", "(call foo 1 2 3)"},
		{"foo()", "(call foo)"},
		{"a.b.c(x)[i]", "(index (call (. (. a b) c) x) i)"},
		{"point.x", "(. point x)"},
		{"new Node*", "(new Node*)"},
		{"true", "true"},
		{"null", "null"},
		{"'\\n'", "'\\n'"},
		{"\"hi\"", "\"hi\""},
		{"0x1F + 2.5", "(+ 0x1F 2.5)"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			res, id := initOf(t, "main() { v: i32 = "+tt.expr+"; }")
			if got := sexpr(res.Builder, id); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	tests := []struct {
		stmt string
		want string
	}{
		{"a = b = c;", "(= a (= b c))"},
		{"a += b -= 1;", "(+= a (-= b 1))"},
		{"x <<= y >>= 2;", "(<<= x (>>= y 2))"},
		{"a = b || c;", "(= a (|| b c))"},
		{"*p = q;", "(= (* p) q)"},
		{"(a) = 1;", "(= (group a) 1)"},
		{"s.f[i] %= 3;", "(%= (index (. s f) i) 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.stmt, func(t *testing.T) {
			res, stmts := bodyStmts(t, "main() { "+tt.stmt+" }")
			es, ok := res.Builder.Stmts.Expr(stmts[0])
			if !ok {
				t.Fatalf("not an expression statement")
			}
			if got := sexpr(res.Builder, es.X); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLiteralValues(t *testing.T) {
	res, stmts := bodyStmts(t, `main() { a: u64 = 0xFF; b: u64 = 18446744073709551615; c: f64 = 2.718; d: char = '\t'; e: string = "a\"b"; f: bool = false; }`)
	b := res.Builder
	value := func(i int) ast.ExprID {
		decl, _ := b.Stmts.Var(stmts[i])
		return decl.Value
	}

	if d, ok := b.Exprs.IntLit(value(0)); !ok || d.Value != 255 || d.Raw != "0xFF" {
		t.Errorf("hex literal = %+v", d)
	}
	if d, ok := b.Exprs.IntLit(value(1)); !ok || d.Value != 18446744073709551615 {
		t.Errorf("max u64 literal = %+v", d)
	}
	if d, ok := b.Exprs.FloatLit(value(2)); !ok || d.Value != 2.718 {
		t.Errorf("float literal = %+v", d)
	}
	if d, ok := b.Exprs.CharLit(value(3)); !ok || d.Value != "\t" || d.Raw != `'\t'` {
		t.Errorf("char literal = %+v", d)
	}
	if d, ok := b.Exprs.StringLit(value(4)); !ok || d.Value != `a"b` || d.Raw != `"a\"b"` {
		t.Errorf("string literal = %+v", d)
	}
	if d, ok := b.Exprs.BoolLit(value(5)); !ok || d.Value {
		t.Errorf("bool literal = %+v", d)
	}
}

func TestExpressionPositions(t *testing.T) {
	res, id := initOf(t, "main() {\n  v: i32 =\n    alpha + beta;\n}")
	e := res.Builder.Exprs.Get(id)
	if e.Pos != (source.LineCol{Line: 3, Col: 5}) {
		t.Fatalf("binary stamped at %+v, want 3:5", e.Pos)
	}
	bin, _ := res.Builder.Exprs.Binary(id)
	right := res.Builder.Exprs.Get(bin.Right)
	if right.Pos != (source.LineCol{Line: 3, Col: 13}) {
		t.Fatalf("right operand stamped at %+v, want 3:13", right.Pos)
	}
	if e.Span.Len() != uint32(len("alpha + beta")) {
		t.Fatalf("binary span length = %d", e.Span.Len())
	}
}
