package diag

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{
			name: "with file",
			d:    Diagnostic{Severity: SevError, Filename: "main.pal", HasFile: true, Line: 3, Column: 7, Message: "unterminated string literal"},
			want: "main.pal:3:7: error: unterminated string literal",
		},
		{
			name: "without file",
			d:    Diagnostic{Severity: SevWarning, Line: 1, Column: 1, Message: "odd"},
			want: "1:1: warning: odd",
		},
		{
			name: "info",
			d:    Diagnostic{Severity: SevInfo, Line: 2, Column: 4, Message: "note"},
			want: "2:4: info: note",
		},
		{
			name: "critical",
			d:    Diagnostic{Severity: SevCritical, Filename: "a", HasFile: true, Line: 10, Column: 20, Message: "boom"},
			want: "a:10:20: critical: boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.d); got != tt.want {
				t.Fatalf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordPreservesOrder(t *testing.T) {
	b := NewBag(0)
	b.Record(SevError, CatLexer, LexUnknownChar, "first", "f.pal", 1, 1, 1)
	b.Record(SevWarning, CatParser, SynUnexpectedToken, "second", "", 2, 5, 3)
	b.Record(SevInfo, CatGeneric, UnknownCode, "third", "f.pal", 1, 1, 0)

	if b.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", b.Len())
	}
	for i, want := range []string{"first", "second", "third"} {
		if got := b.Get(i).Message; got != want {
			t.Errorf("item %d message = %q, want %q", i, got, want)
		}
	}
	if b.Get(1).HasFile {
		t.Errorf("empty filename must not set HasFile")
	}
	if !b.Get(0).HasFile || b.Get(0).Category != CatLexer {
		t.Errorf("first diagnostic fields lost: %+v", b.Get(0))
	}
}

func TestRecordCopiesMessage(t *testing.T) {
	b := NewBag(0)
	buf := []byte("original")
	b.Record(SevError, CatLexer, LexUnknownChar, string(buf), "", 1, 1, 1)
	copy(buf, "mutated!")
	if got := b.Get(0).Message; got != "original" {
		t.Fatalf("stored message changed to %q", got)
	}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Record(SevError, CatLexer, LexUnknownChar, "a", "", 1, 1, 1) {
		t.Fatal("first record rejected")
	}
	if !b.Record(SevError, CatLexer, LexUnknownChar, "b", "", 1, 2, 1) {
		t.Fatal("second record rejected")
	}
	if b.Record(SevError, CatLexer, LexUnknownChar, "c", "", 1, 3, 1) {
		t.Fatal("record past the limit must be dropped")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestClear(t *testing.T) {
	b := NewBag(0)
	b.Record(SevError, CatParser, SynUnexpectedToken, "x", "", 1, 1, 1)
	b.Clear()
	if b.Len() != 0 || b.HasErrors() {
		t.Fatalf("bag not empty after Clear: %d", b.Len())
	}
	b.Record(SevInfo, CatParser, SynInfo, "y", "", 1, 1, 1)
	if b.Len() != 1 {
		t.Fatalf("bag unusable after Clear")
	}
}

func TestCountsAndErrors(t *testing.T) {
	b := NewBag(0)
	b.Record(SevWarning, CatParser, SynInfo, "w", "", 1, 1, 1)
	if b.HasErrors() {
		t.Fatal("warnings alone are not errors")
	}
	b.Record(SevCritical, CatGeneric, UnknownCode, "c", "", 1, 1, 1)
	if !b.HasErrors() {
		t.Fatal("critical counts as an error")
	}
	if b.Count(SevWarning) != 1 || b.Count(SevCritical) != 1 || b.Count(SevError) != 0 {
		t.Fatalf("unexpected counts")
	}
}

func TestMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Record(SevError, CatLexer, LexUnknownChar, "a", "", 1, 1, 1)
	other := NewBag(0)
	other.Record(SevError, CatParser, SynUnexpectedToken, "b", "", 2, 1, 1)
	other.Record(SevError, CatParser, SynUnexpectedToken, "c", "", 3, 1, 1)
	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	if a.Get(2).Message != "c" {
		t.Fatalf("merge lost order")
	}
}

func TestCodeIDAndCategory(t *testing.T) {
	tests := []struct {
		code Code
		id   string
		cat  Category
	}{
		{LexUnterminatedString, "LEX1002", CatLexer},
		{SynUnexpectedToken, "SYN2001", CatParser},
		{FutMatchNotSupported, "FUT7001", CatParser},
		{IOLoadFileError, "IO4001", CatGeneric},
		{SemaInfo, "SEM3000", CatSemantic},
		{GenInfo, "GEN5000", CatCodegen},
		{UnknownCode, "E0000", CatGeneric},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
		if got := tt.code.Category(); got != tt.cat {
			t.Errorf("%d.Category() = %s, want %s", tt.code, got, tt.cat)
		}
	}
}

func TestSeverityAndCategoryStrings(t *testing.T) {
	sev := map[Severity]string{SevInfo: "info", SevWarning: "warning", SevError: "error", SevCritical: "critical"}
	for s, want := range sev {
		if s.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
	cat := map[Category]string{CatLexer: "lexer", CatParser: "parser", CatSemantic: "semantic", CatCodegen: "codegen", CatGeneric: "generic"}
	for c, want := range cat {
		if c.String() != want {
			t.Errorf("Category(%d).String() = %q, want %q", c, c.String(), want)
		}
	}
}
