package parser

import (
	"testing"

	"github.com/alecthomas/repr"

	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/lexer"
	"pal/internal/token"
	"pal/internal/trace"
)

func TestAcceptedPrograms(t *testing.T) {
	sources := []string{
		"",
		"import std;",
		"import std.io;",
		"import ./local.module;",
		"import ../parent.sibling;",
		"import std.io;\nimport std.collections;",
		"x: int;", "x: float;", "x: string;", "x: bool;", "c: char;", "d: double;",
		"x: i8;", "x: i16;", "x: i32;", "x: i64;", "x: u8;", "x: u16;", "x: u32;", "x: u64;",
		"x: f32;", "x: f64;", "x: void*;", "x: string*;", "x: MyClass;", "x: MyClass*;",
		"x: i32*;", "x: i32**;", "x: i32***;", "x: i32****;",
		"x: i32[10];", "x: i32[3][3];", "x: i32[2][3][4][5];", "x: i32[];",
		"x: i32[10]*;", "x: i32*[10];", "x: (i32);", "x: (i32*);", "x: (i32)*;", "x: i32**[5][10];",
		"x: i32 = 42;",
		"const PI: f64 = 3.14159;",
		"name: string = \"Alice\";",
		"c: char = 'a';", "b: bool = true;", "f: float = 3.14;", "ptr: i32* = null;",
		"main() {}",
		"main(): i32 {}",
		"foo(): void {}",
		"square(x: i32): i32 {}",
		"add(a: i32, b: i32): i32 {}",
		"sum(first: i32, ...): i32 {}",
		"printf(...) {}",
		"struct Point {}",
		"struct Point { x: f32; y: f32; }",
		"struct Point { x: f32; len(): f32 { return x; } }",
		"class MyClass {}",
		"class MyClass { public: x: i32; }",
		"class MyClass { public: getValue(): i32 {} }",
		"class MyClass { MyClass() {} }",
		"class MyClass { ~MyClass() {} }",
		"enum Color { Red, Green, Blue }",
		"enum Color { Red, Green, Blue, }",
		"enum Color { Red = 1, Green = 2, Blue = 3 }",
		"enum Shape { Circle(radius: f32), Rectangle(w: f32, h: f32) }",
		"main() { if (true) {} }",
		"main() { if (x > 0) {} else {} }",
		"main() { if (x > 0) {} else if (x < 0) {} else {} }",
		"main() { while (true) {} }",
		"main() { for (i: i32 = 0; i < 10; i++) {} }",
		"main() { for (i = 0; i < 10; i += 1) {} }",
		"main() { for (;;) {} }",
		"main() { for (;;) ; }",
		"main() { ; }",
		"main() { ;; x = 1;; }",
		"main() { while (x) ; if (y) ; else ; }",
		"main() { while (true) { break; } }",
		"main() { while (true) { continue; } }",
		"main() { return; }",
		"main(): i32 { return 42; }",
		"main() { x: i32 = 42; }",
		"main() { x: i32; y: i32; z: i32; }",
		"main() { x: i32 = 1 + 2 * 3; }",
		"main() { x: bool = 5 > 3; }",
		"main() { x: bool = true && false; }",
		"main() { x: i32 = 5; x += 3; }",
		"main() { foo(1, 2, 3); }",
		"main() { x: f32 = point.x; }",
		"main() { x: i32 = arr[0]; }",
		"main() { ptr: i32* = new i32; }",
		"main() { ptr: i32* = new i32; delete ptr; }",
		"main() { name: string = \"Alice\"; msg: string = \"Hello, ${name}!\"; }",
		"main() { *p = &x; a[i].f = -~!y; --n; }",
		"main() { { { } } }",
	}
	for _, src := range sources {
		t.Run(src, func(t *testing.T) {
			_, bag := parseSource(t, src)
			if bag.Len() != 0 {
				t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestRejectedPrograms(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"import std.io", diag.SynExpectSemicolon},
		{"import 123;", diag.SynExpectModuleSeg},
		{"x: i32 = 42", diag.SynExpectSemicolon},
		{"const X: i32;", diag.SynConstNeedsInit},
		{"main() {", diag.SynUnclosedBrace},
		{"main() { x: i32 = (1 + 2; }", diag.SynUnclosedParen},
		{"main() { x: i32 = (1 + 2 }", diag.SynUnclosedParen},
		{"main() { x: f32 = (f32)42; }", diag.SynExpectExpression},
		{"main() { 1 = 2; }", diag.SynInvalidAssignTarget},
		{"main() { f() = 2; }", diag.SynInvalidAssignTarget},
		{"x: u8 = 99999999999999999999;", diag.SynIntLiteralOutOfRange},
		{"sum(..., a: i32) {}", diag.SynVariadicMustBeLast},
		{"main(x i32) { return 1; }", diag.SynExpectColon},
		{"main(x: i32 { return 1; }", diag.SynUnclosedParen},
		{"class C { ~D() {} }", diag.SynBadDestructor},
		{"class C { ~C(x: i32) {} }", diag.SynBadDestructor},
		{"enum E { A, , B }", diag.SynExpectIdentifier},
		{"enum E Red", diag.SynEnumExpectBody},
		{"enum E { A B }", diag.SynEnumExpectRBrace},
		{"struct P { 42; }", diag.SynUnexpectedToken},
		{"; main() {}", diag.SynUnexpectedTopLevel},
		{"main { }", diag.SynUnexpectedToken},
		{"x: = 1;", diag.SynExpectType},
		{"main() { x: i32[4 = 1; }", diag.SynExpectRightBracket},
		{"main() { if x {} }", diag.SynExpectLParen},
		{"main() { for (i = 0 i < 3;) {} }", diag.SynExpectSemicolon},
		{"main() { for (;; i++ {} }", diag.SynUnclosedParen},
		{"main() { a.1; }", diag.SynExpectIdentifier},
		{"main() { match (x) { 0 => {} 1 => {} _ => {} } }", diag.FutMatchNotSupported},
		{"main() { match (x) { n if n > 0 => {} _ => {} } }", diag.FutMatchNotSupported},
		{"main() { match (x) { 1 | 2 | 3 => {} _ => {} } }", diag.FutMatchNotSupported},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res, bag := parseSource(t, tt.src)
			diags := parserDiags(bag)
			if len(diags) != 1 {
				t.Fatalf("expected exactly 1 parser diagnostic, got %d: %s", len(diags), diagnosticsSummary(bag))
			}
			if diags[0].Code != tt.code {
				t.Errorf("code = %s, want %s (%s)", diags[0].Code.ID(), tt.code.ID(), diags[0].Message)
			}
			if diags[0].Severity != diag.SevError {
				t.Errorf("severity = %s", diags[0].Severity)
			}
			if res.Errors < 1 {
				t.Errorf("Result.Errors = %d", res.Errors)
			}
		})
	}
}

func TestMissingSemicolonDiagnosticText(t *testing.T) {
	res, bag := parseSource(t, "import std.io")
	if got := len(program(res).Imports); got != 1 {
		t.Fatalf("import dropped: %d imports", got)
	}
	want := "test.pal:1:14: error: expected ';' after import, found end of file"
	if got := diag.Format(bag.Get(0)); got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestProgramNeverAbsent(t *testing.T) {
	for _, toks := range [][]token.Token{
		nil,
		{},
		{{Kind: token.Ident, Text: "x", Line: 1, Column: 1}},
		{{Kind: token.RBrace, Text: "}", Line: 1, Column: 1}},
	} {
		res := ParseTokens(toks, Options{})
		if !res.Program.IsValid() || program(res) == nil {
			t.Fatalf("no program for %s", repr.String(toks))
		}
	}
}

func TestCallerTokensNotModified(t *testing.T) {
	toks := make([]token.Token, 1, 4)
	toks[0] = token.Token{Kind: token.Ident, Text: "x"}
	ParseTokens(toks, Options{})
	if len(toks) != 1 || toks[:2][1].Kind != token.Invalid {
		t.Fatalf("caller's slice was modified: %s", repr.String(toks[:2]))
	}
}

func TestSynthesizedEOFPosition(t *testing.T) {
	tests := []struct {
		src          string
		line, column uint32
	}{
		{"x = 1", 1, 6},
		{"a\n  bc", 2, 5},
		{"s = \"ab\ncde\"", 2, 5},
		{"s = \"one\ntwo\n\"", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			toks := lexer.Tokenize("t.pal", []byte(tt.src), nil)
			toks = toks[:len(toks)-1] // drop the lexer's EOF
			out := terminated(toks)
			eof := out[len(out)-1]
			if eof.Kind != token.EOF {
				t.Fatalf("last token is %s", eof.Kind)
			}
			if eof.Line != tt.line || eof.Column != tt.column {
				t.Errorf("EOF at %d:%d, want %d:%d", eof.Line, eof.Column, tt.line, tt.column)
			}
			if eof.Span.Start != uint32(len(tt.src)) || eof.Span.End != eof.Span.Start {
				t.Errorf("EOF span = %+v", eof.Span)
			}
		})
	}
}

func TestOneDiagnosticPerMistake(t *testing.T) {
	src := "main() {\n  x: i32 = ;\n  y: i32 = 1 +* ;\n  z = ) ( ] ;\n  ok: i32 = 1;\n}"
	res, bag := parseSource(t, src)
	diags := parserDiags(bag)
	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %s", diagnosticsSummary(bag))
	}
	for i, wantLine := range []uint32{2, 3, 4} {
		if diags[i].Line != wantLine {
			t.Errorf("diagnostic %d on line %d, want %d", i, diags[i].Line, wantLine)
		}
	}

	id, _ := onlyDecl(t, res)
	fn, _ := res.Builder.Items.Fn(id)
	block, _ := res.Builder.Stmts.Block(fn.Body)
	last := block.Stmts[len(block.Stmts)-1]
	decl, ok := res.Builder.Stmts.Var(last)
	if !ok || decl.Name != "ok" {
		t.Fatalf("statement after errors not recovered: %s", repr.String(res.Builder.Stmts.Get(last)))
	}
}

func TestMaxErrors(t *testing.T) {
	bag := diag.NewBag(0)
	toks := lexer.Tokenize("m.pal", []byte("; ; ; ;"), nil)
	res := ParseTokens(toks, Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 2})
	if bag.Len() != 2 {
		t.Fatalf("recorded %d diagnostics, want 2", bag.Len())
	}
	if res.Errors != 4 {
		t.Fatalf("Errors = %d, want 4", res.Errors)
	}
}

func TestNilBag(t *testing.T) {
	toks := lexer.Tokenize("n.pal", []byte("main( {"), nil)
	res := Parse("n.pal", toks, nil)
	if res.Errors == 0 {
		t.Fatal("errors not counted without a bag")
	}
}

func TestLexerAndParserCategories(t *testing.T) {
	_, bag := parseSource(t, "main() { x: i32 = 1 $ 2; }")
	var lex, syn int
	for _, d := range bag.Items() {
		switch d.Category {
		case diag.CatLexer:
			lex++
		case diag.CatParser:
			syn++
		}
	}
	if lex != 1 || syn != 1 {
		t.Fatalf("lexer=%d parser=%d: %s", lex, syn, diagnosticsSummary(bag))
	}
}

func TestSynchronizeTerminates(t *testing.T) {
	const n = 50
	toks := make([]token.Token, 0, n+1)
	for range n {
		toks = append(toks, token.Token{Kind: token.Ident, Text: "a"})
	}
	toks = append(toks, token.Token{Kind: token.EOF})

	for start := range n + 1 {
		p := &Parser{toks: toks, pos: start, b: ast.NewBuilder(ast.Hints{}), panicking: true}
		calls := 0
		for !p.check(token.EOF) {
			before := p.pos
			p.synchronize()
			calls++
			if p.pos <= before {
				t.Fatalf("start %d: synchronize did not advance (pos %d)", start, p.pos)
			}
			if calls > n {
				t.Fatalf("start %d: too many calls", start)
			}
		}
		p.synchronize()
		if p.panicking {
			t.Fatalf("start %d: panic not cleared at EOF", start)
		}
	}
}

func TestSynchronizeStopsAtBoundaries(t *testing.T) {
	tests := []struct {
		src  string
		stop token.Kind // kind of the token left under the cursor
	}{
		{"a b ; c", token.Ident},
		{"a b , c", token.Ident},
		{"a b } c", token.RBrace},
		{"a b import c", token.KwImport},
		{"a b if c", token.KwIf},
		{"a b for c", token.KwFor},
		{"a b while c", token.KwWhile},
		{"a b return c", token.KwReturn},
		{"a b c", token.EOF},
		{"} a ; b", token.Ident},
	}
	for _, tt := range tests {
		toks := lexer.Tokenize("s.pal", []byte(tt.src), nil)
		p := &Parser{toks: toks, b: ast.NewBuilder(ast.Hints{}), panicking: true}
		p.synchronize()
		if got := p.peek().Kind; got != tt.stop {
			t.Errorf("%q: stopped at %s, want %s", tt.src, got, tt.stop)
		}
		if p.panicking {
			t.Errorf("%q: still panicking", tt.src)
		}
	}
}

func TestRecoveryTraceEvents(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelDebug)
	toks := lexer.Tokenize("t.pal", []byte("import 1;"), nil)
	ParseTokens(toks, Options{Tracer: ring, Filename: "t.pal"})

	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %s", repr.String(events))
	}
	ev := events[0]
	if ev.Name != "sync" || ev.Scope != trace.ScopeNode || ev.File != "t.pal" {
		t.Fatalf("unexpected event %s", repr.String(ev))
	}
	// "1" and ";" are skipped; parsing resumes at EOF.
	if ev.Tokens == nil || *ev.Tokens != (trace.TokenRange{From: 1, To: 3}) || ev.Detail != "skipped 2" {
		t.Fatalf("skipped range = %s", repr.String(ev))
	}
	if ev.Extra["at"] != "1:10" || ev.Extra["stop"] != "EOF" {
		t.Fatalf("resume point = %v", ev.Extra)
	}
}

func TestRecoveryTraceRanges(t *testing.T) {
	tests := []struct {
		src  string
		want []trace.TokenRange
		stop []string
	}{
		// the ';' is consumed by the declaration, so nothing is left to skip
		{"x: i32 = ;\ny: i32 = 1;", []trace.TokenRange{{From: 5, To: 5}}, []string{"Ident"}},
		{"main() { x = 1 2 3; y = 1; }", []trace.TokenRange{{From: 7, To: 10}}, []string{"Ident"}},
		{"main() { x = 1 2 return; }", []trace.TokenRange{{From: 7, To: 8}}, []string{"KwReturn"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			ring := trace.NewRingTracer(16, trace.LevelDebug)
			toks := lexer.Tokenize("r.pal", []byte(tt.src), nil)
			ParseTokens(toks, Options{Tracer: ring, Filename: "r.pal"})

			events := ring.Snapshot()
			if len(events) != len(tt.want) {
				t.Fatalf("got %d events: %s", len(events), repr.String(events))
			}
			for i, ev := range events {
				if ev.Tokens == nil || *ev.Tokens != tt.want[i] {
					t.Errorf("event %d skipped %v, want %v", i, ev.Tokens, tt.want[i])
				}
				if ev.Extra["stop"] != tt.stop[i] {
					t.Errorf("event %d stopped at %s, want %s", i, ev.Extra["stop"], tt.stop[i])
				}
			}
		})
	}
}

func TestNodesReferencedOnce(t *testing.T) {
	src := `import std.io;
class Box {
public:
  v: i32 = 1;
  Box() { v = 0; }
  get(): i32 { return v; }
}
enum Kind { A = 1, B(x: i32) }
main(argc: i32, argv: char**): i32 {
  for (i: i32 = 0; i < argc; i++) { if (argv[i] == null) { break; } else { continue; } }
  p: Box* = new Box;
  p.v += f(1, 2.5, 'c', "s") * -3;
  delete p;
  return 0;
}`
	res, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}

	seen := map[ast.Node]int{}
	ast.Walk(res.Builder, res.Program, func(n ast.Node, _ int) bool {
		seen[n]++
		return true
	})
	for n, c := range seen {
		if c != 1 {
			t.Errorf("%s #%d visited %d times", n.Class, n.ID, c)
		}
	}
	if got, want := countClass(seen, ast.NodeExpr), int(res.Builder.Exprs.Arena.Len()); got != want {
		t.Errorf("walk reached %d of %d expressions", got, want)
	}
	if got, want := countClass(seen, ast.NodeStmt), int(res.Builder.Stmts.Arena.Len()); got != want {
		t.Errorf("walk reached %d of %d statements", got, want)
	}
}

func countClass(seen map[ast.Node]int, class ast.NodeClass) int {
	n := 0
	for node := range seen {
		if node.Class == class {
			n++
		}
	}
	return n
}
