package screen

import (
	"net/http"

	"portfolio-dashboard/internal/handler/http/flash"
	"portfolio-dashboard/internal/handler/http/pathutil"
	"portfolio-dashboard/internal/usecase/resource"
)

type confirmView struct {
	Noun   string
	Label  string
	Action string
	Cancel string
}

// DeleteConfirmHandler asks before deleting.
type DeleteConfirmHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h DeleteConfirmHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, id, ok := load(r.Context(), h.Deps, h.Res, w, r)
	if !ok {
		return
	}
	v := confirmView{
		Noun:   h.Res.Noun,
		Label:  h.Res.Label(item),
		Action: h.Res.Base() + "/" + h.Res.deleteSegment() + "/" + id,
		Cancel: h.Res.Base(),
	}
	h.Deps.Render.Render(w, r, http.StatusOK, "confirm", Page{Title: "Delete " + h.Res.Noun, Active: h.Res.Key, Data: v})
}

// DeleteHandler removes the item and returns to the list, which is fetched
// again. A rejection is shown as the list notice; the item stays.
type DeleteHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h DeleteHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := pathutil.ValidateID(id); err != nil {
		h.Deps.Render.Error(w, r, http.StatusBadRequest, "Invalid "+h.Res.Noun+" id")
		return
	}

	err := h.Res.Service.Delete(r.Context(), id)
	h.Deps.Hooks.mutation(h.Res.Key, "delete", err == nil)
	if err != nil {
		logFailure(r, "delete "+h.Res.Noun, err)
		flash.Set(w, flash.Error, resource.UserMessage(err))
	} else {
		flash.Set(w, flash.Success, titleCase(h.Res.Noun)+" deleted successfully")
	}
	http.Redirect(w, r, h.Res.Base(), http.StatusSeeOther)
}
