package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"pal/internal/diag"
)

// LocationJSON is where a diagnostic points, in bytes and in line/column.
type LocationJSON struct {
	File      string `json:"file,omitempty"`
	Line      uint32 `json:"line"`
	Column    uint32 `json:"column"`
	Length    uint32 `json:"length"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Category string       `json:"category"`
	Code     string       `json:"code"`
	Title    string       `json:"title,omitempty"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticsOutput is the root object of the JSON diagnostics format.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// BuildDiagnosticsOutput converts bag into its JSON shape without encoding it.
func BuildDiagnosticsOutput(bag *diag.Bag, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	if bag == nil {
		return out
	}
	items := bag.Items()
	for i := range limit(len(items), opts.Max) {
		d := items[i]
		loc := LocationJSON{
			Line:      d.Line,
			Column:    d.Column,
			Length:    d.Length,
			StartByte: d.Span.Start,
			EndByte:   d.Span.End,
		}
		if d.HasFile {
			loc.File = formatPath(d.Filename, opts.PathMode, opts.BaseDir)
		}
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Severity: d.Severity.String(),
			Category: d.Category.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: loc,
		})
	}
	out.Count = len(out.Diagnostics)
	out.Errors = bag.Count(diag.SevError) + bag.Count(diag.SevCritical)
	out.Warnings = bag.Count(diag.SevWarning)
	return out
}

// JSON writes bag as one indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, opts))
}

// Short writes one diag.Format line per diagnostic.
func Short(w io.Writer, bag *diag.Bag, most int) error {
	if bag == nil {
		return nil
	}
	items := bag.Items()
	var sb strings.Builder
	for i := range limit(len(items), most) {
		sb.WriteString(diag.Format(items[i]))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
