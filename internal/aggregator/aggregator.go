package aggregator

import (
	"strings"

	"github.com/arefin-khan/loglens/internal/model"
)

// CountByLevel tallies records per severity level. Every known level is
// present in the result, zero-filled, so callers never need a default.
func CountByLevel(records []model.Record) map[model.Level]int {
	counts := make(map[model.Level]int, len(model.Levels()))
	for _, lvl := range model.Levels() {
		counts[lvl] = 0
	}
	for _, rec := range records {
		counts[rec.Level]++
	}
	return counts
}

// FilterByLevel returns the records whose level matches, in their original
// order. The level comparison is case-insensitive; an unknown level simply
// matches nothing.
func FilterByLevel(records []model.Record, level string) []model.Record {
	want := model.Level(strings.ToUpper(level))

	filtered := make([]model.Record, 0)
	for _, rec := range records {
		if rec.Level == want {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
