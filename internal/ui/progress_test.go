package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"pal/internal/driver"
)

func TestProgressTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("diag", []string{"a.pal", "b.pal"}, events).(*progressModel)

	steps := []driver.Event{
		{Pass: driver.PassLoad, Status: driver.StatusWorking},
		{File: "a.pal", Status: driver.StatusQueued},
		{File: "a.pal", Pass: driver.PassParse, Status: driver.StatusWorking},
		{File: "b.pal", Status: driver.StatusError},
		{File: "other.pal", Status: driver.StatusDone},
	}
	for _, ev := range steps {
		m.Update(eventMsg(ev))
	}

	if m.items[0].status != "parsing" || m.items[1].status != "error" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if got, want := m.fraction(), (0.6+1.0)/2; got != want {
		t.Fatalf("fraction = %v, want %v", got, want)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: diag", "parsing a.pal", "error b.pal"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestEmptyProgressView(t *testing.T) {
	m := NewProgressModel("diag", nil, nil)
	if v := m.View(); v != "" {
		t.Fatalf("expected empty view, got %q", v)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.pal", 20, "short.pal"},
		{"very/long/path/file.pal", 10, "very/lo..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if tt.width > 0 && runewidth.StringWidth(got) > tt.width {
			t.Errorf("truncate(%q, %d) is too wide: %q", tt.in, tt.width, got)
		}
	}
}
