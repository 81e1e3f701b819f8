package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs a fresh command tree with its own config file and cache
// directory so the host environment cannot leak in.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	if !hasFlag(args, "--config") {
		cfg := filepath.Join(dir, "pal.toml")
		if err := os.WriteFile(cfg, []byte("[diagnostics]\ncolor = \"off\"\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		args = append([]string{"--config", cfg}, args...)
	}

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func hasFlag(args []string, name string) bool {
	for _, a := range args {
		if a == name || strings.HasPrefix(a, name+"=") {
			return true
		}
	}
	return false
}

func source(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokenizeFormats(t *testing.T) {
	path := source(t, "a.pal", "x = 1;")
	tests := []struct {
		format string
		want   string
	}{
		{"pretty", `"x" at 1:1`},
		{"json", `"kind": "Ident"`},
		{"yaml", "kind: Ident"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, _, err := execute(t, "tokenize", "--format", tt.format, path)
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output lacks %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	path := source(t, "a.pal", "x = 1;")
	for _, command := range []string{"tokenize", "parse", "diag"} {
		if _, _, err := execute(t, command, "--format", "xml", path); err == nil || !strings.Contains(err.Error(), "unknown format") {
			t.Errorf("%s: expected unknown format error, got %v", command, err)
		}
	}
}

func TestInvalidUIMode(t *testing.T) {
	path := source(t, "a.pal", "x = 1;")
	_, _, err := execute(t, "diag", "--ui", "fancy", path)
	if err == nil || !strings.Contains(err.Error(), "invalid --ui value") {
		t.Fatalf("expected a ui mode error, got %v", err)
	}
}

func TestProfilingFlags(t *testing.T) {
	path := source(t, "a.pal", "main() {}")
	dir := t.TempDir()
	cpu, mem := filepath.Join(dir, "cpu.out"), filepath.Join(dir, "mem.out")
	if _, _, err := execute(t, "--cpu-profile", cpu, "--mem-profile", mem, "parse", path); err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, p := range []string{cpu, mem} {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s not written: %v", filepath.Base(p), err)
		}
	}
}

func TestParseTree(t *testing.T) {
	path := source(t, "a.pal", "main() {}")
	out, stderr, err := execute(t, "parse", path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !strings.HasPrefix(out, "Program (1:1)\n└── Fn main() (1:1)") {
		t.Fatalf("unexpected tree:\n%s", out)
	}
	if stderr != "" {
		t.Fatalf("clean input should not print diagnostics: %q", stderr)
	}
}

func TestParseDirectoryHeaders(t *testing.T) {
	dir := t.TempDir()
	for name, src := range map[string]string{"a.pal": "main() {}", "b.pal": "x: i32 = 1;"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	out, _, err := execute(t, "parse", "--jobs", "2", "--format", "json", dir)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	a := strings.Index(out, "== "+filepath.Join(dir, "a.pal")+" ==")
	b := strings.Index(out, "== "+filepath.Join(dir, "b.pal")+" ==")
	if a < 0 || b < 0 || a > b {
		t.Fatalf("missing or unordered headers:\n%s", out)
	}
}

func TestParseReportsButSucceeds(t *testing.T) {
	path := source(t, "a.pal", "import std.io")
	out, stderr, err := execute(t, "parse", path)
	if err != nil {
		t.Fatalf("parse should not fail on syntax errors: %v", err)
	}
	if !strings.Contains(stderr, "ERROR[SYN2012]") || !strings.Contains(out, "Program") {
		t.Fatalf("stdout:\n%s\nstderr:\n%s", out, stderr)
	}
}

func TestDiagExitStatus(t *testing.T) {
	bad := source(t, "bad.pal", "import std.io")
	out, stderr, err := execute(t, "diag", "--format", "short", bad)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if want := bad + ":1:14: error: expected ';' after import, found end of file\n"; out != want {
		t.Fatalf("stdout = %q, want %q", out, want)
	}
	if !strings.Contains(stderr, "1 error, 0 warnings in 1 file") {
		t.Fatalf("missing summary: %q", stderr)
	}

	good := source(t, "good.pal", "import std.io;")
	if _, _, err := execute(t, "diag", good); err != nil {
		t.Fatalf("clean file should pass: %v", err)
	}
}

func TestDiagJSON(t *testing.T) {
	path := source(t, "bad.pal", "x: i32 = $;")
	out, stderr, err := execute(t, "diag", "--no-cache", "--format", "json", path)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	var doc struct {
		Count  int `json:"count"`
		Errors int `json:"errors"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out)
	}
	if doc.Count == 0 || doc.Errors != doc.Count {
		t.Fatalf("unexpected totals: %+v", doc)
	}
	if stderr != "" {
		t.Fatalf("json mode writes no summary, got %q", stderr)
	}
}

func TestConfigAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "pal.toml")
	if err := os.WriteFile(cfg, []byte("[diagnostics]\nmax = 1\ncolor = \"off\"\n\n[cache]\nenabled = false\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	path := source(t, "m.pal", "a: i32 = $;\nb: i32 = $;\nc: i32 = $;\n")

	out, _, _ := execute(t, "--config", cfg, "diag", "--format", "short", path)
	if n := strings.Count(out, "\n"); n != 1 {
		t.Fatalf("config max=1 should keep one diagnostic, got %d:\n%s", n, out)
	}
	out, _, _ = execute(t, "--config", cfg, "--max-diagnostics", "2", "diag", "--format", "short", path)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Fatalf("flag should override config, got %d:\n%s", n, out)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[diagnostics]\ncolour = \"on\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, "--config", bad, "diag", path); err == nil || !strings.Contains(err.Error(), "unknown keys") {
		t.Fatalf("expected a config error, got %v", err)
	}
}

func TestCleanDropsCache(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	cfg := filepath.Join(dir, "pal.toml")
	if err := os.WriteFile(cfg, []byte("[diagnostics]\ncolor = \"off\"\n\n[cache]\ndir = \"cache\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	path := source(t, "a.pal", "import std.io")
	if _, _, err := execute(t, "--config", cfg, "diag", path); !errors.Is(err, errDiagnostics) {
		t.Fatalf("diag: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(cacheDir, "diag"))
	if len(entries) != 1 {
		t.Fatalf("expected one cache entry, got %d", len(entries))
	}

	out, _, err := execute(t, "--config", cfg, "clean")
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if out != "removed "+cacheDir+"\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if entries, _ := os.ReadDir(filepath.Join(cacheDir, "diag")); len(entries) != 0 {
		t.Fatalf("cache still has %d entries", len(entries))
	}
}

func TestTraceToFile(t *testing.T) {
	path := source(t, "a.pal", "main() { x = ; }")
	traceFile := filepath.Join(t.TempDir(), "trace.log")
	if _, _, err := execute(t, "--trace", traceFile, "--trace-level", "debug", "parse", path); err != nil {
		t.Fatalf("parse: %v", err)
	}
	data, err := os.ReadFile(traceFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"driver:pal parse", "pass:lex", "pass:parse", "node:sync"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("trace lacks %q:\n%s", want, data)
		}
	}
}

func TestTimings(t *testing.T) {
	path := source(t, "a.pal", "main() {}")
	_, stderr, err := execute(t, "--timings", "tokenize", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "timings:") || !strings.Contains(stderr, "total") {
		t.Fatalf("missing timings: %q", stderr)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version", "--format", "json", "--full")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if payload.Tool != "pal" || payload.Version == "" || payload.GitCommit == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	out, _, err = execute(t, "--color", "off", "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "\x1b[") || !strings.HasPrefix(out, "pal ") {
		t.Fatalf("unexpected pretty version: %q", out)
	}
}
