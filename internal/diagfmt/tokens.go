package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"pal/internal/token"
)

type TokenOutput struct {
	Kind   string `json:"kind" yaml:"kind"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Line   uint32 `json:"line" yaml:"line"`
	Column uint32 `json:"column" yaml:"column"`
	Offset uint32 `json:"offset" yaml:"offset"`
	Length uint32 `json:"length" yaml:"length"`
}

// BuildTokensOutput stops at the first EOF token.
func BuildTokensOutput(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		to := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Line,
			Column: tok.Column,
			Offset: tok.Offset(),
			Length: tok.Length(),
		}
		if tok.Kind == token.CharLit || tok.Kind == token.StringLit {
			to.Value = tok.Value
		}
		out = append(out, to)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty writes one numbered line per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	var sb strings.Builder
	for i, tok := range BuildTokensOutput(tokens) {
		fmt.Fprintf(&sb, "%3d: %-12s", i+1, tok.Kind)
		if tok.Text != "" {
			fmt.Fprintf(&sb, " %q", tok.Text)
		}
		fmt.Fprintf(&sb, " at %d:%d", tok.Line, tok.Column)
		if tok.Value != "" && tok.Value != tok.Text {
			fmt.Fprintf(&sb, " value=%q", tok.Value)
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildTokensOutput(tokens))
}

func FormatTokensYAML(w io.Writer, tokens []token.Token) error {
	out, err := yaml.Marshal(BuildTokensOutput(tokens))
	if err != nil {
		return fmt.Errorf("marshal tokens: %w", err)
	}
	_, err = w.Write(out)
	return err
}
