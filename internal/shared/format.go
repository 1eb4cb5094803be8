package shared

import (
	"strings"
	"time"
)

// FormatAdded renders an API "added" timestamp (RFC 3339) as a short date.
// Unparseable values are returned as-is so raw server output still displays.
func FormatAdded(added string) string {
	if added == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, added)
	if err != nil {
		return added
	}
	return ts.Format("2006-01-02")
}

// NormalizeWord lowercases and trims a word for comparisons and URL paths.
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
