// Package pagination does the page arithmetic for in-memory lists.
package pagination

// DefaultPageSize is the fixed page size of every dashboard table.
const DefaultPageSize = 10

// TotalPages is ceil(total/size). An empty list has zero pages.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Clamp moves page into [1, totalPages]. With no pages it returns 1 so the
// empty table still renders as page 1.
func Clamp(page, totalPages int) int {
	if page < 1 || totalPages < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Offset is the index of the first item on a 1-based page.
func Offset(page, size int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * size
}

// Bounds returns the half-open [start, end) slice bounds of page within
// total items.
func Bounds(page, size, total int) (start, end int) {
	start = min(Offset(page, size), total)
	end = min(start+size, total)
	return start, end
}
