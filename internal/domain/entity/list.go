package entity

import "strings"

// SplitList turns comma separated input into a list, trimming every segment.
// Segments are neither de-duplicated nor filtered, so "react," yields
// ["react", ""]. Blank input yields nil.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// JoinList is the inverse of SplitList for pre-filling inputs.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}
