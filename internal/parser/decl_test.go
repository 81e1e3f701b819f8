package parser

import (
	"testing"

	"pal/internal/ast"
	"pal/internal/source"
)

func TestImports(t *testing.T) {
	tests := []struct {
		src   string
		path  string
		local bool
		up    int
	}{
		{"import std;", "std", false, 0},
		{"import std.io;", "std.io", false, 0},
		{"import ./local.module;", "./local.module", true, 0},
		{"import ../parent.sibling;", "../parent.sibling", false, 1},
		{"import ../../a.b.c;", "../../a.b.c", false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res, bag := parseSource(t, tt.src)
			if bag.Len() != 0 {
				t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
			}
			prog := program(res)
			if len(prog.Imports) != 1 || len(prog.Decls) != 0 {
				t.Fatalf("imports=%d decls=%d", len(prog.Imports), len(prog.Decls))
			}
			imp, ok := res.Builder.Items.Import(prog.Imports[0])
			if !ok {
				t.Fatal("not an import")
			}
			if imp.Path() != tt.path || imp.Local != tt.local || imp.Up != tt.up {
				t.Fatalf("got %+v (%s)", *imp, imp.Path())
			}
		})
	}
}

func TestMultipleImportsKeepOrder(t *testing.T) {
	res, _ := parseSource(t, "import std.io;\nimport std.collections;\nmain() {}")
	prog := program(res)
	if len(prog.Imports) != 2 || len(prog.Decls) != 1 {
		t.Fatalf("imports=%d decls=%d", len(prog.Imports), len(prog.Decls))
	}
	second, _ := res.Builder.Items.Import(prog.Imports[1])
	if second.Path() != "std.collections" {
		t.Fatalf("second import = %s", second.Path())
	}
	if item := res.Builder.Items.Get(prog.Imports[1]); item.Pos != (source.LineCol{Line: 2, Col: 1}) {
		t.Fatalf("second import at %+v", item.Pos)
	}
}

func TestFunctionDecl(t *testing.T) {
	res, bag := parseSource(t, "sum(first: i32, rest: u8*, ...): i64 { return first; }")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
	id, item := onlyDecl(t, res)
	if item.Kind != ast.ItemFn {
		t.Fatalf("kind = %s", item.Kind)
	}
	fn, _ := res.Builder.Items.Fn(id)
	if fn.Name != "sum" || fn.Kind != ast.FnFunction || !fn.Variadic {
		t.Fatalf("fn = %+v", *fn)
	}
	if len(fn.Params) != 2 || fn.Params[0].Name != "first" || fn.Params[1].Name != "rest" {
		t.Fatalf("params = %+v", fn.Params)
	}
	if got := typeString(res.Builder, fn.Params[1].Type); got != "u8*" {
		t.Errorf("second param type = %s", got)
	}
	if got := typeString(res.Builder, fn.Result); got != "i64" {
		t.Errorf("result type = %s", got)
	}
	block, _ := res.Builder.Stmts.Block(fn.Body)
	if len(block.Stmts) != 1 || res.Builder.Stmts.Get(block.Stmts[0]).Kind != ast.StmtReturn {
		t.Fatalf("body = %+v", block.Stmts)
	}
}

func TestFunctionWithoutResult(t *testing.T) {
	res, _ := parseSource(t, "main() {}")
	id, _ := onlyDecl(t, res)
	fn, _ := res.Builder.Items.Fn(id)
	if fn.Result.IsValid() || len(fn.Params) != 0 || fn.Variadic {
		t.Fatalf("fn = %+v", *fn)
	}
}

func TestVarDecls(t *testing.T) {
	tests := []struct {
		src     string
		name    string
		typ     string
		isConst bool
		hasInit bool
	}{
		{"x: i32;", "x", "i32", false, false},
		{"x: i32 = 42;", "x", "i32", false, true},
		{"const PI: f64 = 3.14159;", "PI", "f64", true, true},
		{"ptr: i32* = null;", "ptr", "i32*", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res, _ := parseSource(t, tt.src)
			id, item := onlyDecl(t, res)
			if item.Kind != ast.ItemVar {
				t.Fatalf("kind = %s", item.Kind)
			}
			v, _ := res.Builder.Items.Var(id)
			if v.Name != tt.name || v.Const != tt.isConst || v.Value.IsValid() != tt.hasInit {
				t.Fatalf("var = %+v", *v)
			}
			if got := typeString(res.Builder, v.Type); got != tt.typ {
				t.Fatalf("type = %s, want %s", got, tt.typ)
			}
		})
	}
}

func TestTypes(t *testing.T) {
	tests := []struct {
		src  string
		want string
		kind ast.TypeKind
	}{
		{"x: int;", "int", ast.TypeBuiltin},
		{"x: MyClass;", "MyClass", ast.TypeUser},
		{"x: i32**;", "i32**", ast.TypePointer},
		{"x: i32[10];", "i32[10]", ast.TypeArray},
		{"x: i32[];", "i32[]", ast.TypeArray},
		{"x: i32[2][3][4];", "i32[2][3][4]", ast.TypeArray},
		{"x: i32[10]*;", "i32[10]*", ast.TypePointer},
		{"x: i32*[10];", "i32*[10]", ast.TypeArray},
		{"x: (i32);", "i32", ast.TypeBuiltin},
		{"x: (i32)*;", "i32*", ast.TypePointer},
		{"x: i32**[5][10];", "i32**[5][10]", ast.TypeArray},
		{"x: void*;", "void*", ast.TypePointer},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res, bag := parseSource(t, tt.src)
			if bag.Len() != 0 {
				t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
			}
			id, _ := onlyDecl(t, res)
			v, _ := res.Builder.Items.Var(id)
			if got := typeString(res.Builder, v.Type); got != tt.want {
				t.Fatalf("type = %s, want %s", got, tt.want)
			}
			if k := res.Builder.Types.Get(v.Type).Kind; k != tt.kind {
				t.Fatalf("outer kind = %s, want %s", k, tt.kind)
			}
		})
	}
}

func TestStructMembers(t *testing.T) {
	res, _ := parseSource(t, "struct Point { x: f32; y: f32; norm(): f32 { return x; } }")
	id, item := onlyDecl(t, res)
	if item.Kind != ast.ItemStruct {
		t.Fatalf("kind = %s", item.Kind)
	}
	rec, _ := res.Builder.Items.Struct(id)
	if rec.Name != "Point" || len(rec.Members) != 3 {
		t.Fatalf("struct = %+v", *rec)
	}
	fn, ok := res.Builder.Items.Fn(rec.Members[2].Item)
	if !ok || fn.Kind != ast.FnMethod || fn.Name != "norm" {
		t.Fatalf("third member is not method norm")
	}
}

func TestClassMembers(t *testing.T) {
	src := `class Counter {
  n: i32;
public:
  Counter() { n = 0; }
  ~Counter() {}
  get(): i32 { return n; }
private:
  secret: i32 = 7;
}`
	res, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
	id, item := onlyDecl(t, res)
	if item.Kind != ast.ItemClass {
		t.Fatalf("kind = %s", item.Kind)
	}
	rec, _ := res.Builder.Items.Class(id)

	type member struct {
		vis  ast.Visibility
		kind ast.ItemKind
		fn   ast.FnKind
	}
	want := []member{
		{ast.VisDefault, ast.ItemVar, 0},
		{ast.VisPublic, ast.ItemFn, ast.FnCtor},
		{ast.VisPublic, ast.ItemFn, ast.FnDtor},
		{ast.VisPublic, ast.ItemFn, ast.FnMethod},
		{ast.VisPrivate, ast.ItemVar, 0},
	}
	if len(rec.Members) != len(want) {
		t.Fatalf("members = %d, want %d", len(rec.Members), len(want))
	}
	for i, w := range want {
		m := rec.Members[i]
		got := member{vis: m.Visibility, kind: res.Builder.Items.Get(m.Item).Kind}
		if fn, ok := res.Builder.Items.Fn(m.Item); ok {
			got.fn = fn.Kind
		}
		if got != w {
			t.Errorf("member %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestConstructorOnlyInsideItsClass(t *testing.T) {
	res, _ := parseSource(t, "class A { B() {} }")
	id, _ := onlyDecl(t, res)
	rec, _ := res.Builder.Items.Class(id)
	fn, _ := res.Builder.Items.Fn(rec.Members[0].Item)
	if fn.Kind != ast.FnMethod {
		t.Fatalf("B() inside class A parsed as %s", fn.Kind)
	}
}

func TestEnums(t *testing.T) {
	res, bag := parseSource(t, "enum Shape { Circle(radius: f32), Rectangle(w: f32, h: f32), Empty = 3, }")
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
	id, item := onlyDecl(t, res)
	if item.Kind != ast.ItemEnum {
		t.Fatalf("kind = %s", item.Kind)
	}
	en, _ := res.Builder.Items.Enum(id)
	if en.Name != "Shape" || len(en.Variants) != 3 {
		t.Fatalf("enum = %+v", *en)
	}
	if v := en.Variants[1]; v.Name != "Rectangle" || len(v.Params) != 2 || v.Params[1].Name != "h" {
		t.Errorf("Rectangle = %+v", v)
	}
	if v := en.Variants[2]; v.Params != nil || sexpr(res.Builder, v.Value) != "3" {
		t.Errorf("Empty = %+v", v)
	}
}

func TestEnumRecoversAtComma(t *testing.T) {
	res, bag := parseSource(t, "enum E { A, = 2, B }")
	if len(parserDiags(bag)) != 1 {
		t.Fatalf("diagnostics: %s", diagnosticsSummary(bag))
	}
	id, _ := onlyDecl(t, res)
	en, _ := res.Builder.Items.Enum(id)
	if len(en.Variants) != 2 || en.Variants[1].Name != "B" {
		t.Fatalf("variants = %+v", en.Variants)
	}
}

func TestStatements(t *testing.T) {
	src := `main(): i32 {
  for (i: i32 = 0; i < 10; i++) { continue; }
  for (;;) { break; }
  while (x) x = x - 1;
  if (a) {} else if (b) {} else {}
  delete p;
  return 0;
}`
	res, stmts := bodyStmts(t, src)
	b := res.Builder

	kinds := []ast.StmtKind{ast.StmtFor, ast.StmtFor, ast.StmtWhile, ast.StmtIf, ast.StmtDelete, ast.StmtReturn}
	if len(stmts) != len(kinds) {
		t.Fatalf("statements = %d", len(stmts))
	}
	for i, k := range kinds {
		if got := b.Stmts.Get(stmts[i]).Kind; got != k {
			t.Errorf("stmt %d = %s, want %s", i, got, k)
		}
	}

	full, _ := b.Stmts.For(stmts[0])
	if b.Stmts.Get(full.Init).Kind != ast.StmtVar || sexpr(b, full.Cond) != "(< i 10)" || sexpr(b, full.Post) != "(post++ i)" {
		t.Errorf("for header = %+v", *full)
	}
	empty, _ := b.Stmts.For(stmts[1])
	if empty.Init.IsValid() || empty.Cond.IsValid() || empty.Post.IsValid() {
		t.Errorf("empty for header = %+v", *empty)
	}

	loop, _ := b.Stmts.While(stmts[2])
	if b.Stmts.Get(loop.Body).Kind != ast.StmtExpr {
		t.Errorf("while body kind = %s", b.Stmts.Get(loop.Body).Kind)
	}

	chain, _ := b.Stmts.If(stmts[3])
	if b.Stmts.Get(chain.Else).Kind != ast.StmtIf {
		t.Errorf("else-if not nested as If")
	}

	ret, _ := b.Stmts.Return(stmts[5])
	if sexpr(b, ret.Value) != "0" {
		t.Errorf("return value = %s", sexpr(b, ret.Value))
	}
	if pos := b.Stmts.Get(stmts[5]).Pos; pos != (source.LineCol{Line: 7, Col: 3}) {
		t.Errorf("return stamped at %+v", pos)
	}
}

func TestEmptyStatements(t *testing.T) {
	res, stmts := bodyStmts(t, "main() { ; for (;;) ; }")
	b := res.Builder
	if len(stmts) != 2 {
		t.Fatalf("statements = %d", len(stmts))
	}
	first := b.Stmts.Get(stmts[0])
	if first.Kind != ast.StmtEmpty || first.Span.End-first.Span.Start != 1 {
		t.Errorf("first statement = %s %+v", first.Kind, first.Span)
	}
	if first.Pos != (source.LineCol{Line: 1, Col: 10}) {
		t.Errorf("empty statement stamped at %+v", first.Pos)
	}
	loop, ok := b.Stmts.For(stmts[1])
	if !ok {
		t.Fatalf("second statement is %s", b.Stmts.Get(stmts[1]).Kind)
	}
	if b.Stmts.Get(loop.Body).Kind != ast.StmtEmpty {
		t.Errorf("for body kind = %s", b.Stmts.Get(loop.Body).Kind)
	}
}

func TestProgramSpan(t *testing.T) {
	src := "x: i32;\nmain() {}\n"
	res, _ := parseSource(t, src)
	prog := program(res)
	if prog.Span.Start != 0 || prog.Span.End != uint32(len(src)) {
		t.Fatalf("program span = %v", prog.Span)
	}
	if prog.Pos != (source.LineCol{Line: 1, Col: 1}) {
		t.Fatalf("program pos = %+v", prog.Pos)
	}
}
