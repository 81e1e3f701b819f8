package fuzztests

import (
	"testing"
)

const maxSeedBytes = 64 << 10

// languageSeeds cover every construct of the grammar plus the recovery
// paths that used to be fragile.
var languageSeeds = []string{
	"",
	"import std.io;\nimport std.collections;\nmain() {}",
	"x: i32 = 1;\nconst y: f64 = 2.5;",
	"add(a: i32, b: i32): i32 { return a + b; }",
	"class MyClass { public: x: i32; MyClass() {} ~MyClass() {} getValue(): i32 { return x; } }",
	"struct Point { x: f32; y: f32; }",
	"union U { i: i32; f: f32; }",
	"enum Color { Red = 1, Green = 2, Blue = 3 }",
	"enum Shape { Circle(radius: f32), Rectangle(w: f32, h: f32), Empty = 3, }",
	"main() { for (i: i32 = 0; i < 10; i++) { if (i % 2 == 0) { continue; } else { break; } } }",
	"main() { while (x > 0) { x -= 1; } }",
	"main() { match (x) { 1 | 2 | 3 => {} _ => {} } }",
	"main() { *p = &x; a[i].f = -~!y; --n; }",
	"main() { s: string = \"Hello, ${name}!\\n\"; c: char = '\\t'; }",
	"main() { v = 0x1F + 0b101 + 1.5; }",
	"main() { x = ; y = 2; }",
	"main( {",
	"enum E { A, , B }",
	"main() { for (;; i++ {} }",
	"/* unterminated",
	"'",
	"\"abc",
	"$ @ # \x80\xff",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add(clampSeed([]byte(s)))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
