package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arefin-khan/loglens/internal/model"
)

// Summary is the fully aggregated report handed to a renderer: per-level
// counts, plus the filtered entries when a level filter was requested.
type Summary struct {
	Counts  map[model.Level]int `json:"counts"`
	Level   string              `json:"level,omitempty"` // requested filter, uppercase; empty when none
	Entries []model.Record      `json:"entries,omitempty"`
}

// Renderer writes a Summary to an output stream.
type Renderer interface {
	Render(s Summary) error
}

// ---------------------------------------------------------------------------
// Text Renderer (counts table + detail listing)
// ---------------------------------------------------------------------------

var (
	styleInfo    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	styleDebug   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true)
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleWarning = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))            // yellow
)

// TextRenderer prints the report as a fixed two-column table followed by
// an optional per-level listing.
type TextRenderer struct {
	w     io.Writer
	color bool
}

// NewTextRenderer returns a Renderer writing human-readable text to w.
func NewTextRenderer(w io.Writer, color bool) *TextRenderer {
	return &TextRenderer{w: w, color: color}
}

func (r *TextRenderer) Render(s Summary) error {
	if _, err := fmt.Fprintln(r.w, "Logging Level     | Count"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, "------------------|-------"); err != nil {
		return err
	}
	for _, lvl := range model.Levels() {
		if _, err := fmt.Fprintf(r.w, "%s | %d\n", r.levelCell(lvl), s.Counts[lvl]); err != nil {
			return err
		}
	}

	if s.Level == "" {
		return nil
	}

	if _, err := fmt.Fprintf(r.w, "\nLog details for level '%s':\n", s.Level); err != nil {
		return err
	}
	if len(s.Entries) == 0 {
		_, err := fmt.Fprintln(r.w, "No log entries for this level.")
		return err
	}
	for _, rec := range s.Entries {
		if _, err := fmt.Fprintf(r.w, "%s %s - %s\n", rec.Date, rec.Time, rec.Message); err != nil {
			return err
		}
	}
	return nil
}

// levelCell pads the level name to the table column width, then applies
// color. Padding before styling keeps the ANSI codes out of the width math.
func (r *TextRenderer) levelCell(lvl model.Level) string {
	padded := fmt.Sprintf("%-17s", lvl)
	if !r.color {
		return padded
	}
	switch lvl {
	case model.LevelDebug:
		return styleDebug.Render(padded)
	case model.LevelError:
		return styleError.Render(padded)
	case model.LevelWarning:
		return styleWarning.Render(padded)
	default:
		return styleInfo.Render(padded)
	}
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// JSONRenderer prints the whole summary as a single JSON document.
type JSONRenderer struct {
	enc *json.Encoder
}

// NewJSONRenderer returns a Renderer that writes JSON to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONRenderer{enc: enc}
}

func (r *JSONRenderer) Render(s Summary) error {
	return r.enc.Encode(s)
}
