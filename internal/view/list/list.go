// Package list turns already-fetched entities into one table page:
// filter on a single column, optional sort, column visibility and fixed
// size pages. Nothing here performs I/O.
package list

import (
	"cmp"
	"slices"
	"strings"

	"portfolio-dashboard/internal/common/pagination"
)

// Direction is a column sort direction.
type Direction string

const (
	Unsorted   Direction = ""
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Next cycles unsorted, ascending, descending, unsorted.
func (d Direction) Next() Direction {
	switch d {
	case Unsorted:
		return Ascending
	case Ascending:
		return Descending
	default:
		return Unsorted
	}
}

// Column describes one table column of T.
type Column[T any] struct {
	Key    string
	Header string
	// Value renders the cell. It is also the filter and default sort key.
	Value func(*T) string
	// Compare orders two rows; nil compares Value.
	Compare  func(a, b *T) int
	Sortable bool
	// Fixed columns cannot be hidden.
	Fixed bool
}

func (c Column[T]) compare(a, b *T) int {
	if c.Compare != nil {
		return c.Compare(a, b)
	}
	return cmp.Compare(c.Value(a), c.Value(b))
}

// Config is the per-resource table definition.
type Config[T any] struct {
	Columns []Column[T]
	// FilterKey names the one column the filter box searches.
	FilterKey string
	// PageSize defaults to pagination.DefaultPageSize.
	PageSize int
	// ID returns the row identity used by actions.
	ID func(*T) string
	// Actions returns the row menu. The action column is always shown.
	Actions func(*T) []Action
}

func (c Config[T]) column(key string) (Column[T], bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}

func (c Config[T]) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return pagination.DefaultPageSize
}

// Filter keeps items whose value contains needle, case-sensitively. An
// empty needle returns items itself. The input is never modified.
func Filter[T any](items []*T, value func(*T) string, needle string) []*T {
	if needle == "" {
		return items
	}
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if strings.Contains(value(it), needle) {
			out = append(out, it)
		}
	}
	return out
}

// Sort returns a stably sorted copy. Unsorted returns items itself.
func Sort[T any](items []*T, compare func(a, b *T) int, dir Direction) []*T {
	if dir == Unsorted || compare == nil {
		return items
	}
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b *T) int {
		if dir == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return out
}

// Paginate returns the items of the 1-based page after clamping it, the
// clamped page and the page count.
func Paginate[T any](items []*T, page, size int) (rows []*T, current, totalPages int) {
	totalPages = pagination.TotalPages(len(items), size)
	current = pagination.Clamp(page, totalPages)
	start, end := pagination.Bounds(current, size, len(items))
	return items[start:end], current, totalPages
}

// HeaderCell is one visible column header.
type HeaderCell struct {
	Key       string
	Label     string
	Sortable  bool
	Direction Direction
	// SortQuery is the query that clicking the header applies.
	SortQuery string
}

// Toggle is one entry of the column visibility menu.
type Toggle struct {
	Key     string
	Label   string
	Visible bool
	Query   string
}

// Row is one rendered table row.
type Row struct {
	ID      string
	Cells   []string
	Actions []Action
}

// Page is everything a table template needs.
type Page struct {
	Query       Query
	FilterLabel string
	Headers     []HeaderCell
	Toggles     []Toggle
	Rows        []Row
	Total       int // after filtering
	Page        int
	TotalPages  int
	PrevQuery   string
	NextQuery   string
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// Empty reports whether no row survived filtering.
func (p Page) Empty() bool { return p.Total == 0 }

// Build applies q to items: filter, sort, then paginate.
func Build[T any](items []*T, cfg Config[T], q Query) Page {
	rows := items
	filterLabel := ""
	if col, ok := cfg.column(cfg.FilterKey); ok {
		filterLabel = col.Header
		rows = Filter(rows, col.Value, q.Filter)
	}

	sortCol, sortable := cfg.column(q.Sort)
	if !sortable || !sortCol.Sortable {
		q.Sort, q.Dir = "", Unsorted
	}
	if q.Sort != "" {
		rows = Sort(rows, sortCol.compare, q.Dir)
	}

	pageRows, current, totalPages := Paginate(rows, q.Page, cfg.pageSize())
	q.Page = current

	p := Page{
		Query:       q,
		FilterLabel: filterLabel,
		Total:       len(rows),
		Page:        current,
		TotalPages:  totalPages,
	}
	if p.HasPrev() {
		p.PrevQuery = q.WithPage(current - 1).Encode()
	}
	if p.HasNext() {
		p.NextQuery = q.WithPage(current + 1).Encode()
	}

	var visible []Column[T]
	for _, col := range cfg.Columns {
		hidden := !col.Fixed && q.IsHidden(col.Key)
		if !col.Fixed {
			p.Toggles = append(p.Toggles, Toggle{
				Key:     col.Key,
				Label:   col.Header,
				Visible: !hidden,
				Query:   q.WithToggled(col.Key).Encode(),
			})
		}
		if hidden {
			continue
		}
		visible = append(visible, col)

		h := HeaderCell{Key: col.Key, Label: col.Header, Sortable: col.Sortable}
		if col.Sortable {
			if q.Sort == col.Key {
				h.Direction = q.Dir
			}
			h.SortQuery = q.WithSort(col.Key, h.Direction.Next()).Encode()
		}
		p.Headers = append(p.Headers, h)
	}

	p.Rows = make([]Row, 0, len(pageRows))
	for _, it := range pageRows {
		row := Row{Cells: make([]string, 0, len(visible))}
		if cfg.ID != nil {
			row.ID = cfg.ID(it)
		}
		for _, col := range visible {
			row.Cells = append(row.Cells, col.Value(it))
		}
		if cfg.Actions != nil {
			row.Actions = cfg.Actions(it)
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}
