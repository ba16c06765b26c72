package screen

import "net/http"

// DetailHandler renders one item.
type DetailHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h DetailHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, _, ok := load(r.Context(), h.Deps, h.Res, w, r)
	if !ok {
		return
	}
	v := h.Res.Detail(item, h.Deps.now())
	if !h.Res.Updatable {
		v.EditHref = ""
	}
	h.Deps.Render.Render(w, r, http.StatusOK, "detail", Page{Title: v.Title, Active: h.Res.Key, Data: v})
}
