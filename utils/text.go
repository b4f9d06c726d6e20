package utils

import (
	"strings"
	"unicode"
)

// ToLowerNoSpaces lowercases s and strips all whitespace. Search fields such
// as lowerName and lowerCuisine are stored in this form.
func ToLowerNoSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// ContainsFold is a case-insensitive substring check.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Truncate shortens s to at most n runes, appending an ellipsis when cut.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}
