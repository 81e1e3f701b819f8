package diag

import (
	"pal/internal/source"
)

// Location is where a diagnostic points: a human position plus the span it
// was derived from.
type Location struct {
	Filename string
	Line     uint32
	Column   uint32
	Length   uint32
	Span     source.Span
}

type Diagnostic struct {
	Severity Severity
	Category Category
	Code     Code
	Message  string
	Filename string
	HasFile  bool
	Line     uint32
	Column   uint32
	Length   uint32
	Span     source.Span
}

// New builds a diagnostic whose category follows the code range.
func New(sev Severity, code Code, at Location, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Category: code.Category(),
		Code:     code,
		Message:  msg,
		Filename: at.Filename,
		HasFile:  at.Filename != "",
		Line:     at.Line,
		Column:   at.Column,
		Length:   at.Length,
		Span:     at.Span,
	}
}

func NewError(code Code, at Location, msg string) Diagnostic {
	return New(SevError, code, at, msg)
}

// Location returns the position part of d.
func (d Diagnostic) Location() Location {
	return Location{
		Filename: d.Filename,
		Line:     d.Line,
		Column:   d.Column,
		Length:   d.Length,
		Span:     d.Span,
	}
}

func (d Diagnostic) String() string {
	return Format(d)
}
