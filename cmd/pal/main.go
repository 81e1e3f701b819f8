package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ztrue/tracerr"
	"golang.org/x/term"

	"pal/internal/version"
)

// errDiagnostics makes the process exit with status 1 without printing
// anything more: the diagnostics themselves were already written.
var errDiagnostics = errors.New("errors found")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pal",
		Short:         "pal language front end",
		Long:          `pal tokenizes, parses and checks pal source files`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file (0=unlimited)")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	root.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")
	root.PersistentFlags().String("config", "", "path to pal.toml (default: nearest one above the working directory)")

	root.AddCommand(newTokenizeCmd(), newParseCmd(), newDiagCmd(), newCleanCmd(), newVersionCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintln(os.Stderr, "error:", err)
			// Internal failures carry the stack of the panic.
			var traced tracerr.Error
			if errors.As(err, &traced) {
				source := tracerr.SprintSource(traced)
				if isTerminal(os.Stderr) {
					source = tracerr.SprintSourceColor(traced)
				}
				fmt.Fprintln(os.Stderr, source)
			}
		}
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
