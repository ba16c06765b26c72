package list

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id    string
	title string
	role  string
}

func items(titles ...string) []*item {
	out := make([]*item, len(titles))
	for i, t := range titles {
		out[i] = &item{id: fmt.Sprintf("id%02d", i), title: t, role: "backend"}
	}
	return out
}

func titles(in []*item) []string {
	out := make([]string, len(in))
	for i, it := range in {
		out[i] = it.title
	}
	return out
}

func testConfig() Config[item] {
	return Config[item]{
		Columns: []Column[item]{
			{Key: "title", Header: "Title", Value: func(i *item) string { return i.title }, Sortable: true, Fixed: true},
			{Key: "role", Header: "Role", Value: func(i *item) string { return i.role }, Sortable: true},
			{Key: "id", Header: "ID", Value: func(i *item) string { return i.id }},
		},
		FilterKey: "title",
		ID:        func(i *item) string { return i.id },
		Actions: func(i *item) []Action {
			return RowActions("/items", i.id, "update-item", "delete-item")
		},
	}
}

/* ───────── Filter ───────── */

func TestFilter_EmptyNeedleIsIdentity(t *testing.T) {
	in := items("Go API", "Portfolio", "Blog engine")
	got := Filter(in, func(i *item) string { return i.title }, "")
	require.Len(t, got, 3)
	assert.Same(t, in[0], got[0])
}

func TestFilter_CaseSensitiveSubstring(t *testing.T) {
	in := items("Go API", "go tools", "Cargo", "Portfolio")
	got := Filter(in, func(i *item) string { return i.title }, "Go")
	assert.Equal(t, []string{"Go API"}, titles(got))

	got = Filter(in, func(i *item) string { return i.title }, "go")
	assert.Equal(t, []string{"go tools", "Cargo"}, titles(got))
}

func TestFilter_PureAndIdempotent(t *testing.T) {
	in := items("alpha", "beta", "alphabet")
	before := titles(in)
	value := func(i *item) string { return i.title }

	once := Filter(in, value, "alpha")
	twice := Filter(once, value, "alpha")

	assert.Equal(t, before, titles(in), "input modified")
	if diff := cmp.Diff(titles(once), titles(twice)); diff != "" {
		t.Errorf("filter not idempotent (-once +twice):\n%s", diff)
	}
}

/* ───────── Sort ───────── */

func TestSort_Directions(t *testing.T) {
	in := items("b", "c", "a")
	compare := func(a, b *item) int { return strings.Compare(a.title, b.title) }

	assert.Equal(t, []string{"a", "b", "c"}, titles(Sort(in, compare, Ascending)))
	assert.Equal(t, []string{"c", "b", "a"}, titles(Sort(in, compare, Descending)))
	assert.Equal(t, []string{"b", "c", "a"}, titles(Sort(in, compare, Unsorted)))
	assert.Equal(t, []string{"b", "c", "a"}, titles(in), "input modified")
}

func TestSort_Stable(t *testing.T) {
	in := []*item{
		{id: "1", title: "x", role: "backend"},
		{id: "2", title: "y", role: "frontend"},
		{id: "3", title: "z", role: "backend"},
	}
	got := Sort(in, func(a, b *item) int { return strings.Compare(a.role, b.role) }, Ascending)
	ids := []string{got[0].id, got[1].id, got[2].id}
	assert.Equal(t, []string{"1", "3", "2"}, ids)
}

func TestDirection_Next(t *testing.T) {
	assert.Equal(t, Ascending, Unsorted.Next())
	assert.Equal(t, Descending, Ascending.Next())
	assert.Equal(t, Unsorted, Descending.Next())
}

/* ───────── Paginate ───────── */

func TestPaginate(t *testing.T) {
	in := make([]*item, 25)
	for i := range in {
		in[i] = &item{title: fmt.Sprint(i)}
	}

	tests := []struct {
		page        int
		wantLen     int
		wantCurrent int
	}{
		{1, 10, 1},
		{3, 5, 3},
		{0, 10, 1},
		{9, 5, 3},
	}
	for _, tt := range tests {
		rows, current, total := Paginate(in, tt.page, 10)
		assert.Len(t, rows, tt.wantLen, "page %d", tt.page)
		assert.Equal(t, tt.wantCurrent, current)
		assert.Equal(t, 3, total)
	}

	rows, current, total := Paginate([]*item{}, 1, 10)
	assert.Empty(t, rows)
	assert.Equal(t, 1, current)
	assert.Equal(t, 0, total)
}

/* ───────── Build ───────── */

func TestBuild_FilterSortPage(t *testing.T) {
	var in []*item
	for i := 0; i < 12; i++ {
		in = append(in, &item{id: fmt.Sprintf("p%02d", i), title: fmt.Sprintf("Project %02d", i), role: "fullstack"})
	}
	in = append(in, &item{id: "x", title: "Other"})

	p := Build(in, testConfig(), Query{Filter: "Project", Sort: "title", Dir: Descending, Page: 2})

	assert.Equal(t, 12, p.Total)
	assert.Equal(t, 2, p.TotalPages)
	assert.Equal(t, 2, p.Page)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, []string{"Project 01", "fullstack", "p01"}, p.Rows[0].Cells)
	assert.Equal(t, "Project 00", p.Rows[1].Cells[0])
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Equal(t, "dir=desc&filter=Project&sort=title", p.PrevQuery)
	assert.Equal(t, "Title", p.FilterLabel)
}

func TestBuild_HiddenColumns(t *testing.T) {
	p := Build(items("a"), testConfig(), Query{Hidden: []string{"role", "title"}})

	var keys []string
	for _, h := range p.Headers {
		keys = append(keys, h.Key)
	}
	assert.Equal(t, []string{"title", "id"}, keys, "fixed column stays visible")
	assert.Equal(t, []string{"a", "id00"}, p.Rows[0].Cells)

	require.Len(t, p.Toggles, 2)
	assert.False(t, p.Toggles[0].Visible)
	assert.Equal(t, "hide=title", p.Toggles[0].Query, "toggling a hidden column shows it again")
	assert.True(t, p.Toggles[1].Visible)
}

func TestBuild_IgnoresUnsortableColumn(t *testing.T) {
	p := Build(items("b", "a"), testConfig(), Query{Sort: "id", Dir: Descending})
	assert.Equal(t, "", p.Query.Sort)
	assert.Equal(t, "b", p.Rows[0].Cells[0])
}

func TestBuild_HeaderSortCycle(t *testing.T) {
	p := Build(items("a"), testConfig(), Query{Sort: "title", Dir: Ascending})
	h := p.Headers[0]
	assert.Equal(t, Ascending, h.Direction)
	assert.Equal(t, "dir=desc&sort=title", h.SortQuery)
	assert.Equal(t, "dir=asc&sort=role", p.Headers[1].SortQuery)
	assert.Empty(t, p.Headers[2].SortQuery)
}

func TestBuild_Empty(t *testing.T) {
	p := Build(items("a", "b"), testConfig(), Query{Filter: "zzz"})
	assert.True(t, p.Empty())
	assert.Empty(t, p.Rows)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext())
}

func TestBuild_RowActions(t *testing.T) {
	p := Build(items("a"), testConfig(), Query{})
	want := []Action{
		{Label: "View", Kind: ActionLink, Href: "/items/id00"},
		{Label: "Edit", Kind: ActionLink, Href: "/items/update-item/id00"},
		{Label: "Delete", Kind: ActionDanger, Href: "/items/delete-item/id00"},
	}
	if diff := cmp.Diff(want, p.Rows[0].Actions); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "id00", p.Rows[0].ID)
}

/* ───────── Query ───────── */

func TestParseQuery(t *testing.T) {
	v, err := url.ParseQuery("filter=Go&sort=title&dir=asc&hide=role&hide=role&hide=&page=3")
	require.NoError(t, err)

	q := ParseQuery(v)
	want := Query{Filter: "Go", Sort: "title", Dir: Ascending, Hidden: []string{"role"}, Page: 3}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("ParseQuery mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "dir=asc&filter=Go&hide=role&page=3&sort=title", q.Encode())
}

func TestParseQuery_UnknownDirection(t *testing.T) {
	q := ParseQuery(url.Values{"sort": {"title"}, "dir": {"sideways"}})
	assert.Equal(t, Unsorted, q.Dir)
	assert.Equal(t, "", q.Sort)
}

func TestQuery_WithToggledDoesNotAlias(t *testing.T) {
	q := Query{Hidden: make([]string, 1, 4)}
	q.Hidden[0] = "a"
	a := q.WithToggled("b")
	b := q.WithToggled("c")
	assert.Equal(t, []string{"a", "b"}, a.Hidden)
	assert.Equal(t, []string{"a", "c"}, b.Hidden)
	assert.Equal(t, []string{"a"}, q.Hidden)
}

/* ───────── Formatting ───────── */

func TestTruncated(t *testing.T) {
	assert.Equal(t, "React, Go", Truncated([]string{"React", "Go"}, 3))
	assert.Equal(t, "A, B, C +2 more", Truncated([]string{"A", "B", "C", "D", "E"}, 3))
	assert.Equal(t, "", Truncated(nil, 3))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, NotAvailable, OrNA(""))
	assert.Equal(t, NotAvailable, OrNA("  "))
	assert.Equal(t, "https://x.dev", OrNA("https://x.dev"))
	assert.Equal(t, "Yes", YesNo(true))
}

func TestCopyAction(t *testing.T) {
	assert.Nil(t, CopyAction("Copy Live Link", ""))
	got := CopyAction("Copy Live Link", "https://x.dev")
	require.Len(t, got, 1)
	assert.Equal(t, ActionCopy, got[0].Kind)
}
