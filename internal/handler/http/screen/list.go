package screen

import (
	"net/http"

	"portfolio-dashboard/internal/usecase/resource"
	"portfolio-dashboard/internal/view/list"
)

type listView struct {
	Title      string
	Noun       string
	CreateHref string
	Table      list.Page
	Error      string
}

// ListHandler renders the filtered, sorted and paginated table.
type ListHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h ListHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := listView{Title: h.Res.Title, Noun: h.Res.Noun}
	if h.Res.Schema != nil {
		v.CreateHref = h.Res.createPath()
	}

	items, err := h.Res.Service.List(r.Context())
	status := http.StatusOK
	if err != nil {
		logFailure(r, "list "+h.Res.Key, err)
		v.Error = resource.UserMessage(err)
		status = errorStatus(err)
	} else {
		v.Table = list.Build(items, h.Res.Table, list.ParseQuery(r.URL.Query()))
	}

	h.Deps.Render.Render(w, r, status, "list", Page{Title: h.Res.Title, Active: h.Res.Key, Data: v})
}
