package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pal/internal/diagfmt"
	"pal/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.pal|directory>",
		Short: "Parse pal sources and print their syntax trees",
		Long:  `Parse analyzes a pal source file or every *.pal file in a directory and prints the syntax trees`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "tree", "output format (tree|json|repr)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	var write func(io.Writer, driver.FileResult) error
	switch format {
	case "tree":
		write = func(w io.Writer, f driver.FileResult) error {
			return diagfmt.FormatASTTree(w, f.Parse.Builder, f.Parse.Program)
		}
	case "json":
		write = func(w io.Writer, f driver.FileResult) error {
			return diagfmt.FormatASTJSON(w, f.Parse.Builder, f.Parse.Program)
		}
	case "repr":
		write = func(w io.Writer, f driver.FileResult) error {
			return diagfmt.FormatASTRepr(w, f.Parse.Builder, f.Parse.Program)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	return runWith(cmd, args[0], func(ctx context.Context, s *settings) error {
		opts, err := s.driverOptions(false)
		if err != nil {
			return err
		}
		run, err := driver.Parse(ctx, args[0], opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := reportDiagnostics(cmd.ErrOrStderr(), run, s); err != nil {
			return err
		}
		return writeEach(cmd.OutOrStdout(), run, write)
	})
}
