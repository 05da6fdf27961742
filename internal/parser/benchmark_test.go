package parser

import (
	"fmt"
	"testing"
)

// BenchmarkParse measures single-line parsing throughput.
func BenchmarkParse(b *testing.B) {
	line := "2024-01-22 12:45:05 DEBUG Checking system health."

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(line)
	}
}

// BenchmarkParseGlued measures parsing when the level is glued to the message.
func BenchmarkParseGlued(b *testing.B) {
	line := "2024-01-22 12:45:05 ERRORDisk full"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(line)
	}
}

// BenchmarkParseMixed measures sustained throughput over a varied batch,
// including lines that fail classification.
func BenchmarkParseMixed(b *testing.B) {
	lines := make([]string, 1000)
	for i := range lines {
		switch i % 4 {
		case 0:
			lines[i] = fmt.Sprintf("2024-01-22 12:45:05 INFO request %d completed", i)
		case 1:
			lines[i] = fmt.Sprintf("2024-01-22 12:45:05 WARNING: slow query %dms", i*10)
		case 2:
			lines[i] = fmt.Sprintf("2024-01-22 12:45:05 DEBUGitem %d", i)
		case 3:
			lines[i] = "garbage line"
		}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(lines[i%1000])
	}
}
