package list

import (
	"net/url"
	"slices"

	"portfolio-dashboard/internal/common/pagination"
)

// Query is the table state carried in the URL:
// ?filter=go&sort=title&dir=asc&hide=description&page=2
type Query struct {
	Filter string
	Sort   string
	Dir    Direction
	Hidden []string
	Page   int
}

// ParseQuery reads table state from URL values. Unknown directions mean
// unsorted.
func ParseQuery(v url.Values) Query {
	q := Query{
		Filter: v.Get("filter"),
		Sort:   v.Get("sort"),
		Page:   pagination.ParsePage(v),
	}
	switch d := Direction(v.Get("dir")); d {
	case Ascending, Descending:
		q.Dir = d
	}
	if q.Dir == Unsorted {
		q.Sort = ""
	}
	for _, h := range v["hide"] {
		if h != "" && !slices.Contains(q.Hidden, h) {
			q.Hidden = append(q.Hidden, h)
		}
	}
	return q
}

// Encode renders q as a query string without the leading '?'.
func (q Query) Encode() string {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("filter", q.Filter)
	}
	if q.Sort != "" && q.Dir != Unsorted {
		v.Set("sort", q.Sort)
		v.Set("dir", string(q.Dir))
	}
	for _, h := range q.Hidden {
		v.Add("hide", h)
	}
	if q.Page > 1 {
		v.Set("page", itoa(q.Page))
	}
	return v.Encode()
}

// IsHidden reports whether column key is hidden.
func (q Query) IsHidden(key string) bool {
	return slices.Contains(q.Hidden, key)
}

// WithPage returns q on another page.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// WithSort returns q sorted by key in dir, back on page 1.
func (q Query) WithSort(key string, dir Direction) Query {
	q.Sort, q.Dir, q.Page = key, dir, 1
	if dir == Unsorted {
		q.Sort = ""
	}
	return q
}

// WithToggled flips the visibility of column key.
func (q Query) WithToggled(key string) Query {
	if q.IsHidden(key) {
		q.Hidden = slices.DeleteFunc(slices.Clone(q.Hidden), func(h string) bool { return h == key })
	} else {
		q.Hidden = append(slices.Clone(q.Hidden), key)
	}
	return q
}
