package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"pal/internal/driver"
	"pal/internal/ui"
)

type diagnoseOutcome struct {
	run *driver.Run
	err error
}

// runDiagnoseWithUI runs driver.Diagnose while a progress view draws on out.
func runDiagnoseWithUI(ctx context.Context, title, path string, files []string, opts driver.Options, out io.Writer) (*driver.Run, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan diagnoseOutcome, 1)

	go func() {
		o := opts
		o.Progress = driver.ChannelSink{Ch: events}
		run, err := driver.Diagnose(ctx, path, o)
		outcomeCh <- diagnoseOutcome{run: run, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(out), tea.WithInput(nil), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// The view may stop early; keep the workers from blocking on a full channel.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.run, uiErr
	}
	return outcome.run, outcome.err
}
