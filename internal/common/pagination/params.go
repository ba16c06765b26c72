package pagination

import (
	"net/url"
	"strconv"
)

// ParsePage reads the 1-based "page" query value. Missing or malformed
// values mean page 1; out-of-range pages are clamped later.
func ParsePage(q url.Values) int {
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
