package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/arefin-khan/loglens/internal/model"
)

func summaryFixture() Summary {
	return Summary{
		Counts: map[model.Level]int{
			model.LevelInfo:    0,
			model.LevelDebug:   1,
			model.LevelError:   1,
			model.LevelWarning: 0,
		},
	}
}

func TestTextRendererCountsTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	if err := r.Render(summaryFixture()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"Logging Level     | Count",
		"------------------|-------",
		"INFO              | 0",
		"DEBUG             | 1",
		"ERROR             | 1",
		"WARNING           | 0",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), buf.String())
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestTextRendererDetails(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	s := summaryFixture()
	s.Level = "ERROR"
	s.Entries = []model.Record{
		{Date: "2024-01-22", Time: "12:46:00", Level: model.LevelError, Message: "Disk full"},
	}

	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "Log details for level 'ERROR':") {
		t.Errorf("missing details header:\n%s", out)
	}
	if !strings.Contains(out, "2024-01-22 12:46:00 - Disk full") {
		t.Errorf("missing detail line:\n%s", out)
	}
}

func TestTextRendererNoEntries(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	s := summaryFixture()
	s.Level = "WARNING"

	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "No log entries for this level.") {
		t.Errorf("expected literal no-entries message:\n%s", buf.String())
	}
}

func TestTextRendererNoFilterNoDetails(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextRenderer(&buf, false)

	if err := r.Render(summaryFixture()); err != nil {
		t.Fatal(err)
	}

	if strings.Contains(buf.String(), "Log details") {
		t.Errorf("details section rendered without a filter:\n%s", buf.String())
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	s := summaryFixture()
	s.Level = "DEBUG"
	s.Entries = []model.Record{
		{Date: "2024-01-22", Time: "12:45:05", Level: model.LevelDebug, Message: "Checking system health."},
	}

	if err := r.Render(s); err != nil {
		t.Fatal(err)
	}

	var got Summary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\nraw: %s", err, buf.String())
	}

	if got.Counts[model.LevelDebug] != 1 {
		t.Errorf("expected DEBUG count 1, got %d", got.Counts[model.LevelDebug])
	}
	if got.Level != "DEBUG" {
		t.Errorf("expected level DEBUG, got %q", got.Level)
	}
	if len(got.Entries) != 1 || got.Entries[0].Message != "Checking system health." {
		t.Errorf("unexpected entries: %+v", got.Entries)
	}
}
