package model

import "strings"

// Level is the severity of a log record. Only the four values below are
// ever produced; the parser rejects lines carrying anything else.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelDebug   Level = "DEBUG"
	LevelError   Level = "ERROR"
	LevelWarning Level = "WARNING"
)

// Levels returns all known levels in presentation order.
func Levels() []Level {
	return []Level{LevelInfo, LevelDebug, LevelError, LevelWarning}
}

// ParseLevel matches a string against the known levels, case-insensitively.
func ParseLevel(s string) (Level, bool) {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelInfo:
		return LevelInfo, true
	case LevelDebug:
		return LevelDebug, true
	case LevelError:
		return LevelError, true
	case LevelWarning:
		return LevelWarning, true
	}
	return "", false
}

// Record represents a single parsed log line. Values are never mutated
// after the parser creates them.
type Record struct {
	Date    string `json:"date"`    // first whitespace-separated token
	Time    string `json:"time"`    // second whitespace-separated token
	Level   Level  `json:"level"`   // INFO, DEBUG, ERROR, WARNING
	Message string `json:"message"` // free text after the level keyword
}
