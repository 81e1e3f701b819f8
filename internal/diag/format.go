package diag

import (
	"fmt"
)

// Format renders d as "<file>:<line>:<column>: <severity>: <message>",
// dropping the file part when d has no filename.
func Format(d Diagnostic) string {
	if d.HasFile {
		return fmt.Sprintf("%s:%d:%d: %s: %s", d.Filename, d.Line, d.Column, d.Severity, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
}
