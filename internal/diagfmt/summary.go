package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Counts tallies diagnostics over one command run.
type Counts struct {
	Files    int
	Errors   int
	Warnings int
}

var (
	summaryErrStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	summaryOKStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	summaryDimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// SummaryText is the uncolored summary line.
func SummaryText(c Counts) string {
	return fmt.Sprintf("%s, %s in %s",
		plural(c.Errors, "error"), plural(c.Warnings, "warning"), plural(c.Files, "file"))
}

// Summary writes the closing line of a diag run.
func Summary(w io.Writer, c Counts, useColor bool) error {
	line := SummaryText(c)
	if useColor {
		style := summaryOKStyle
		if c.Errors > 0 {
			style = summaryErrStyle
		} else if c.Warnings > 0 {
			style = summaryDimStyle
		}
		line = style.Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
