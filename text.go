package webcat

import (
	"strings"
	"unicode/utf8"
)

// MaxContentLength is the hard cap on extracted body text. Text beyond the
// cap is truncated and marked with TruncationMarker.
const MaxContentLength = 10000

// TruncationMarker is appended to content that was cut at MaxContentLength.
const TruncationMarker = "..."

// CleanText normalizes raw extracted text: lines are trimmed, lines of two
// characters or fewer are dropped, survivors are joined with single spaces,
// repeated whitespace is collapsed, and the result is capped at
// MaxContentLength. Shared by every Extractor implementation so that all
// variants produce content under the same rules.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 2 {
			kept = append(kept, line)
		}
	}

	cleaned := strings.Join(strings.Fields(strings.Join(kept, " ")), " ")

	if len(cleaned) > MaxContentLength {
		cleaned = Truncate(cleaned, MaxContentLength) + TruncationMarker
	}
	return cleaned
}

// Truncate caps s at limit bytes, backing the cut up so it never splits a
// multibyte rune.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
