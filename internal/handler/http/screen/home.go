package screen

import (
	"net/http"

	"portfolio-dashboard/internal/usecase/dashboard"
)

// HomeHandler shows the item count of every collection.
type HomeHandler struct {
	Sources []dashboard.Source
	Deps    Deps
}

func (h HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tiles := dashboard.Summary(r.Context(), h.Sources)
	for _, t := range tiles {
		if t.Err != nil {
			logFailure(r, "count "+t.Name, t.Err)
		}
	}
	h.Deps.Render.Render(w, r, http.StatusOK, "home", Page{Title: "Dashboard", Active: "home", Data: tiles})
}
