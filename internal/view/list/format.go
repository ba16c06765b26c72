package list

import (
	"strconv"
	"strings"
)

// NotAvailable stands in for a missing optional value.
const NotAvailable = "N/A"

// Truncated joins the first max items and appends "+N more" for the rest.
func Truncated(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:max], ", ") + " +" + strconv.Itoa(len(items)-max) + " more"
}

// OrNA returns s, or "N/A" when s is blank.
func OrNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotAvailable
	}
	return s
}

// YesNo renders a boolean cell.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func itoa(n int) string { return strconv.Itoa(n) }
