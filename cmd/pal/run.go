package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// runWith resolves settings and tracing for cmd, then runs fn under the
// command's driver span.
func runWith(cmd *cobra.Command, path string, fn func(ctx context.Context, s *settings) error) (err error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	session, err := setupProfiling(cmd)
	if err != nil {
		cleanup(true)
		return err
	}
	ctx, span := commandSpan(cmd, path)
	defer func() {
		if stopErr := session.Stop(); stopErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profiling: %v\n", stopErr)
		}
		status := "ok"
		if err != nil {
			status = err.Error()
		}
		span.End(status)
		s.printTimings(cmd.ErrOrStderr())
		cleanup(err != nil && !errors.Is(err, errDiagnostics))
	}()
	return fn(ctx, s)
}
