// Package text holds small text helpers shared by the views: rune-aware
// truncation, and sanitizing and excerpting of blog HTML.
package text

import "strings"

// Truncate shortens s to at most max runes, ending with "…" when cut.
// Trailing whitespace before the ellipsis is dropped.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimRight(string(r[:max]), " \t\n") + "…"
}
