package parser

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/arefin-khan/loglens/internal/model"
)

// Classified parse failures. Callers tell them apart with errors.Is; the
// wrapped error additionally carries the offending line.
var (
	ErrEmptyLine     = errors.New("empty line")
	ErrMissingFields = errors.New("invalid log line (no date/time/rest)")
	ErrLevelNotFound = errors.New("log level not found")
)

// levelRE finds the leftmost occurrence of any known level keyword,
// case-insensitively and as a bare substring. Substring (not token) search
// is deliberate: real lines sometimes glue the level to the message with
// no separator at all ("DEBUGChecking system health.").
var levelRE = regexp.MustCompile(`(?i)INFO|DEBUG|ERROR|WARNING`)

// fieldsRE splits on runs of whitespace.
var fieldsRE = regexp.MustCompile(`\s+`)

// leadingSeparators is the set stripped from the front of the message,
// covering the usual "LEVEL: msg", "LEVEL - msg" and "LEVEL. msg" shapes.
// Only the leading run is stripped; interior separators stay.
const leadingSeparators = " :.-"

// Parse converts one raw log line into a Record.
//
// The line is expected to carry a date token, a time token, and then the
// level plus message, e.g.
//
//	2024-01-22 12:45:05 DEBUG Checking system health.
//	2024-01-22 12:45:05 DEBUGChecking system health.
//
// It fails with ErrEmptyLine for whitespace-only input, ErrMissingFields
// when fewer than three whitespace-separated segments are present, and
// ErrLevelNotFound when no level keyword occurs in the remainder.
func Parse(line string) (model.Record, error) {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return model.Record{}, ErrEmptyLine
	}

	// Split out date and time; the remainder keeps its internal whitespace.
	parts := fieldsRE.Split(trimmed, 3)
	if len(parts) < 3 {
		return model.Record{}, errors.Wrapf(ErrMissingFields, "%q", line)
	}
	date, clock, rest := parts[0], parts[1], parts[2]

	loc := levelRE.FindStringIndex(rest)
	if loc == nil {
		return model.Record{}, errors.Wrapf(ErrLevelNotFound, "%q", line)
	}

	level, ok := model.ParseLevel(rest[loc[0]:loc[1]])
	if !ok {
		// Unreachable: the regexp only matches the four known keywords.
		return model.Record{}, errors.Wrapf(ErrLevelNotFound, "%q", line)
	}

	return model.Record{
		Date:    date,
		Time:    clock,
		Level:   level,
		Message: strings.TrimLeft(rest[loc[1]:], leadingSeparators),
	}, nil
}
