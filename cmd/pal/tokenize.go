package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pal/internal/diagfmt"
	"pal/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.pal>",
		Short: "Tokenize a pal source file",
		Long:  `Tokenize breaks a pal source file into its tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|yaml)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	var write func(io.Writer, driver.FileResult) error
	switch format {
	case "pretty":
		write = func(w io.Writer, f driver.FileResult) error { return diagfmt.FormatTokensPretty(w, f.Tokens) }
	case "json":
		write = func(w io.Writer, f driver.FileResult) error { return diagfmt.FormatTokensJSON(w, f.Tokens) }
	case "yaml":
		write = func(w io.Writer, f driver.FileResult) error { return diagfmt.FormatTokensYAML(w, f.Tokens) }
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return runWith(cmd, args[0], func(ctx context.Context, s *settings) error {
		opts, err := s.driverOptions(false)
		if err != nil {
			return err
		}
		run, err := driver.Tokenize(ctx, args[0], opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		if err := reportDiagnostics(cmd.ErrOrStderr(), run, s); err != nil {
			return err
		}
		return writeEach(cmd.OutOrStdout(), run, write)
	})
}

// writeEach writes every loaded file, separated by a header line when the
// run covers more than one file.
func writeEach(w io.Writer, run *driver.Run, write func(io.Writer, driver.FileResult) error) error {
	for _, f := range run.Files {
		if !f.Loaded {
			continue
		}
		if len(run.Files) > 1 {
			if _, err := fmt.Fprintf(w, "== %s ==\n", f.Path); err != nil {
				return err
			}
		}
		if err := write(w, f); err != nil {
			return err
		}
	}
	return nil
}

// reportDiagnostics pretty-prints whatever the run collected to w.
func reportDiagnostics(w io.Writer, run *driver.Run, s *settings) error {
	bag := run.Bag()
	if bag.Len() == 0 {
		return nil
	}
	return diagfmt.Pretty(w, bag, run.FileSet, diagfmt.PrettyOpts{
		Color:   s.colorFor(w),
		Context: 1,
	})
}
