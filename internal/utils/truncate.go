package utils

import "strings"

// Truncate shortens s to at most limit runes and marks the cut with "...".
// Surrounding whitespace is dropped first.
func Truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimRight(string(runes[:limit]), " ,|") + "..."
}
