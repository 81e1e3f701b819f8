package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"pal/internal/diag"
	"pal/internal/source"
)

type palette struct {
	err, warn, info, critical *color.Color
	code, path, gutter, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:      color.New(color.FgRed, color.Bold),
		warn:     color.New(color.FgYellow, color.Bold),
		info:     color.New(color.FgCyan, color.Bold),
		critical: color.New(color.FgMagenta, color.Bold),
		code:     color.New(color.Bold),
		path:     color.New(color.FgBlue),
		gutter:   color.New(color.FgBlue, color.Bold),
		caret:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.critical, p.code, p.path, p.gutter, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevWarning:
		return p.warn
	case diag.SevInfo:
		return p.info
	case diag.SevCritical:
		return p.critical
	}
	return p.err
}

// Pretty renders the diagnostics in bag with a source excerpt and a caret
// under the reported range. fs may be nil, in which case excerpts are
// omitted; files are looked up by the diagnostic's filename.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	pal := newPalette(opts.Color)
	items := bag.Items()
	var sb strings.Builder
	for i := range limit(len(items), opts.Max) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writePretty(&sb, items[i], fs, opts, pal)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writePretty(sb *strings.Builder, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	label := strings.ToUpper(d.Severity.String())
	fmt.Fprintf(sb, "%s%s: %s\n",
		pal.severity(d.Severity).Sprint(label),
		pal.code.Sprintf("[%s]", d.Code.ID()),
		d.Message)

	loc := fmt.Sprintf("%d:%d", d.Line, d.Column)
	if d.HasFile {
		loc = formatPath(d.Filename, opts.PathMode, opts.BaseDir) + ":" + loc
	}
	fmt.Fprintf(sb, "  --> %s\n", pal.path.Sprint(loc))

	file := lookupFile(fs, d)
	if file == nil || d.Line == 0 {
		return
	}

	first := d.Line - min(uint32(opts.Context), d.Line-1)
	last := d.Line + uint32(opts.Context)
	width := len(strconv.FormatUint(uint64(last), 10))
	blank := strings.Repeat(" ", width)

	fmt.Fprintf(sb, " %s %s\n", blank, pal.gutter.Sprint("|"))
	for n := first; n <= last; n++ {
		if n != d.Line && n > uint32(len(file.LineIdx))+1 {
			break
		}
		text := file.GetLine(n)
		fmt.Fprintf(sb, " %s %s %s\n", pal.gutter.Sprintf("%*d", width, n), pal.gutter.Sprint("|"), text)
		if n == d.Line {
			pad, marks := caretFor(text, d.Column, d.Length)
			fmt.Fprintf(sb, " %s %s %s%s\n", blank, pal.gutter.Sprint("|"), pad, pal.caret.Sprint(marks))
		}
	}
}

func lookupFile(fs *source.FileSet, d diag.Diagnostic) *source.File {
	if fs == nil || !d.HasFile {
		return nil
	}
	id, ok := fs.GetLatest(d.Filename)
	if !ok {
		return nil
	}
	return fs.Get(id)
}

// caretFor returns the padding that reaches byte column col (1-based) of
// line in display cells, and a run of carets covering length bytes.
// Tabs in the prefix are kept so the caret lines up in any tab width.
func caretFor(line string, col, length uint32) (pad, marks string) {
	start := min(int(max(col, 1))-1, len(line))
	end := min(start+int(length), len(line))

	var pb strings.Builder
	for _, r := range line[:start] {
		if r == '\t' {
			pb.WriteByte('\t')
			continue
		}
		pb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	n := max(runewidth.StringWidth(line[start:end]), 1)
	return pb.String(), strings.Repeat("^", n)
}
