package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pal/internal/driver"
	"pal/internal/observ"
)

// settings is the effective configuration of one command: pal.toml values
// overridden by any flag given explicitly.
type settings struct {
	configPath     string
	colorMode      string
	maxDiagnostics int
	jobs           int
	cacheEnabled   bool
	cacheDir       string
	timer          *observ.Timer // nil unless --timings
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	explicit, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, path, err := driver.LoadConfigFrom(explicit, wd)
	if err != nil {
		return nil, err
	}

	s := &settings{
		configPath:     path,
		colorMode:      cfg.Diagnostics.Color,
		maxDiagnostics: cfg.Diagnostics.Max,
		jobs:           cfg.Parse.Jobs,
		cacheEnabled:   cfg.Cache.Enabled,
		cacheDir:       cfg.Cache.Dir,
	}

	if flags.Changed("color") {
		if s.colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
		switch s.colorMode {
		case "auto", "on", "off":
		default:
			return nil, fmt.Errorf("invalid --color %q (must be auto, on or off)", s.colorMode)
		}
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		if s.maxDiagnostics < 0 {
			return nil, fmt.Errorf("--max-diagnostics must not be negative")
		}
	}
	if f := flags.Lookup("jobs"); f != nil && f.Changed {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if f := flags.Lookup("no-cache"); f != nil && f.Changed {
		noCache, err := flags.GetBool("no-cache")
		if err != nil {
			return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
		}
		s.cacheEnabled = s.cacheEnabled && !noCache
	}

	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		s.timer = observ.NewTimer()
	}
	return s, nil
}

// colorFor resolves --color auto against w being a terminal.
func (s *settings) colorFor(w io.Writer) bool {
	switch s.colorMode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func (s *settings) driverOptions(withCache bool) (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           s.jobs,
		Timer:          s.timer,
	}
	if withCache && s.cacheEnabled {
		cache, err := driver.OpenDiskCache(s.cacheDir)
		if err != nil {
			return opts, fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}
	return opts, nil
}

func (s *settings) printTimings(w io.Writer) {
	if s.timer == nil {
		return
	}
	fmt.Fprint(w, s.timer.Summary())
}
