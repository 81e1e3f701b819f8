package parser

import (
	"pal/internal/ast"
	"pal/internal/diag"
	"pal/internal/token"
)

// parseImport handles 'import' RelPrefix? Ident ('.' Ident)* ';'.
// The item is kept when at least one segment was read, even if ';' is missing.
func (p *Parser) parseImport() ast.ItemID {
	kw := p.advance()
	var imp ast.ImportItem

	switch {
	case p.check(token.Dot) && p.peekN(1).Kind == token.Slash:
		p.advance()
		p.advance()
		imp.Local = true
	default:
		for p.check(token.Dot) && p.peekN(1).Kind == token.Dot && p.peekN(2).Kind == token.Slash {
			p.advance()
			p.advance()
			p.advance()
			imp.Up++
		}
	}

	seg, ok := p.expect(token.Ident, diag.SynExpectModuleSeg, "expected module name after 'import'")
	if !ok {
		return ast.NoItemID
	}
	imp.Segments = append(imp.Segments, seg.Text)
	for p.match(token.Dot) {
		seg, ok = p.expect(token.Ident, diag.SynExpectModuleSeg, "expected module name after '.'")
		if !ok {
			break
		}
		imp.Segments = append(imp.Segments, seg.Text)
	}
	if ok {
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import")
	}
	return p.b.Items.NewImport(p.spanFrom(kw), posOf(kw), imp)
}
