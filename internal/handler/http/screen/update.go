package screen

import (
	"context"
	"net/http"

	"portfolio-dashboard/internal/handler/http/flash"
	"portfolio-dashboard/internal/handler/http/pathutil"
	"portfolio-dashboard/internal/usecase/resource"
	"portfolio-dashboard/internal/view/form"
)

func updateForm[T any](res *Resource[T], id string) form.Definition[T] {
	return form.Definition[T]{
		Title:       "Update " + titleCase(res.Noun),
		Action:      res.Base() + "/" + res.updateSegment() + "/" + id,
		SubmitLabel: "Save Changes",
		Schema:      res.Schema,
	}
}

// UpdateFormHandler renders the form pre-filled from the stored item.
type UpdateFormHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h UpdateFormHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, id, ok := load(r.Context(), h.Deps, h.Res, w, r)
	if !ok {
		return
	}
	v := updateForm(h.Res, id).Update(item)
	h.Deps.Render.Render(w, r, http.StatusOK, "form", Page{Title: v.Title, Active: h.Res.Key, Data: v})
}

// UpdateHandler validates and replaces the stored item.
type UpdateHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h UpdateHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := pathutil.ValidateID(id); err != nil {
		h.Deps.Render.Error(w, r, http.StatusBadRequest, "Invalid "+h.Res.Noun+" id")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.Deps.Render.Error(w, r, http.StatusBadRequest, "The form could not be read")
		return
	}

	def := updateForm(h.Res, id)
	out := def.Submit(r.Context(), form.ModeUpdate, r.PostForm,
		func(ctx context.Context, item *T) (*T, error) { return h.Res.Service.Update(ctx, id, item) },
		resource.UserMessage,
		titleCase(h.Res.Noun)+" updated successfully")

	h.Deps.Hooks.mutation(h.Res.Key, "update", out.OK())
	if !out.OK() {
		h.Deps.Render.Render(w, r, http.StatusUnprocessableEntity, "form", Page{Title: def.Title, Active: h.Res.Key, Data: out.View})
		return
	}

	flash.Set(w, flash.Success, out.View.Message)
	http.Redirect(w, r, h.Res.Base(), http.StatusSeeOther)
}
