package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"pal/internal/ast"
	"pal/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// 1) the program span lies within the file content
// 2) every item span belongs to the file and lies within the program span
// 3) imports and declarations each keep source order
func CheckSpanInvariants(b *ast.Builder, prog ast.ProgramID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	p := b.Programs.Get(prog)
	if p == nil {
		return fmt.Errorf("program node not found")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if p.Span.End < p.Span.Start || p.Span.End > lenContent {
		return fmt.Errorf("program span %v outside content of %d bytes", p.Span, lenContent)
	}
	if p.Span.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", p.Span.File, sf.ID)
	}

	for _, list := range [][]ast.ItemID{p.Imports, p.Decls} {
		var prevStart uint32
		for i, it := range list {
			item := b.Items.Get(it)
			if item == nil {
				return fmt.Errorf("nil item for id=%d", it)
			}
			sp := item.Span
			if sp.End < sp.Start {
				return fmt.Errorf("inverted item span: %v", sp)
			}
			if sp.File != sf.ID {
				return fmt.Errorf("item span file mismatch: got=%d want=%d", sp.File, sf.ID)
			}
			if sp.Start < p.Span.Start || sp.End > p.Span.End {
				return fmt.Errorf("%s span %v is outside program span %v", item.Kind, sp, p.Span)
			}
			if i > 0 && sp.Start < prevStart {
				return fmt.Errorf("%s at %v starts before the previous item", item.Kind, sp)
			}
			prevStart = sp.Start
		}
	}
	return nil
}
