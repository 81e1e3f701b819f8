package diagfmt

import (
	"path/filepath"
	"strings"
)

// PathMode controls how file paths are rendered in diagnostics.
type PathMode uint8

const (
	// PathModeAuto keeps short paths as written and shortens long ones to their basename.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	// PathModeRelative renders paths relative to the options' BaseDir.
	PathModeRelative
	PathModeBasename
)

// autoPathLimit is the length above which PathModeAuto falls back to the basename.
const autoPathLimit = 40

type PrettyOpts struct {
	Color    bool
	Context  uint // lines of source shown around the primary line
	PathMode PathMode
	BaseDir  string
	Max      int // 0 renders every diagnostic
}

type JSONOpts struct {
	PathMode PathMode
	BaseDir  string
	Max      int
}

func formatPath(path string, mode PathMode, base string) string {
	if path == "" {
		return ""
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeRelative:
		if base == "" {
			return path
		}
		if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeAuto:
		if len(path) > autoPathLimit {
			return filepath.Base(path)
		}
	}
	return path
}

func limit(n, most int) int {
	if most > 0 && most < n {
		return most
	}
	return n
}
