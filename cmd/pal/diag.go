package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pal/internal/diagfmt"
	"pal/internal/driver"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] <file.pal|directory>",
		Short: "Report lexical and syntax errors in pal sources",
		Long:  `Diag checks a pal source file or every *.pal file in a directory and exits with status 1 when errors were found`,
		Args:  cobra.ExactArgs(1),
		RunE:  runDiag,
	}
	cmd.Flags().String("format", "pretty", "output format (short|pretty|json)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the diagnostics cache")
	cmd.Flags().String("ui", "auto", "progress view on stderr (auto|on|off)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func runDiag(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "short", "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	return runWith(cmd, args[0], func(ctx context.Context, s *settings) error {
		opts, err := s.driverOptions(true)
		if err != nil {
			return err
		}
		var run *driver.Run
		files, listErr := driver.ListInputs(args[0])
		// Progress goes to stderr so stdout stays machine readable.
		if stderr := cmd.ErrOrStderr(); listErr == nil && shouldUseTUI(mode, stderr, len(files)) {
			run, err = runDiagnoseWithUI(ctx, "pal diag "+args[0], args[0], files, opts, stderr)
		} else {
			run, err = driver.Diagnose(ctx, args[0], opts)
		}
		if err != nil {
			return fmt.Errorf("diagnostics failed: %w", err)
		}

		out := cmd.OutOrStdout()
		bag := run.Bag()
		switch format {
		case "short":
			err = diagfmt.Short(out, bag, 0)
		case "pretty":
			err = diagfmt.Pretty(out, bag, run.FileSet, diagfmt.PrettyOpts{Color: s.colorFor(out), Context: 1})
		case "json":
			err = diagfmt.JSON(out, bag, diagfmt.JSONOpts{})
		}
		if err != nil {
			return err
		}

		errs, warns := run.Counts()
		if format != "json" {
			stderr := cmd.ErrOrStderr()
			counts := diagfmt.Counts{Files: len(run.Files), Errors: errs, Warnings: warns}
			if err := diagfmt.Summary(stderr, counts, s.colorFor(stderr)); err != nil {
				return err
			}
		}
		if errs > 0 {
			return errDiagnostics
		}
		return nil
	})
}
