package screen

import (
	"context"
	"net/http"

	"portfolio-dashboard/internal/handler/http/flash"
	"portfolio-dashboard/internal/usecase/resource"
	"portfolio-dashboard/internal/view/form"
)

func createForm[T any](res *Resource[T]) form.Definition[T] {
	return form.Definition[T]{
		Title:       "Create " + titleCase(res.Noun),
		Action:      res.createPath(),
		SubmitLabel: "Create " + titleCase(res.Noun),
		Schema:      res.Schema,
	}
}

// CreateFormHandler renders the empty form.
type CreateFormHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h CreateFormHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v := createForm(h.Res).Create()
	h.Deps.Render.Render(w, r, http.StatusOK, "form", Page{Title: v.Title, Active: h.Res.Key, Data: v})
}

// CreateHandler validates and stores a new item. Success redirects to the
// list with a notice; failure re-renders the form with the submitted values.
type CreateHandler[T any] struct {
	Res  *Resource[T]
	Deps Deps
}

func (h CreateHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Deps.Render.Error(w, r, http.StatusBadRequest, "The form could not be read")
		return
	}

	def := createForm(h.Res)
	out := def.Submit(r.Context(), form.ModeCreate, r.PostForm,
		func(ctx context.Context, item *T) (*T, error) { return h.Res.Service.Create(ctx, item) },
		resource.UserMessage,
		titleCase(h.Res.Noun)+" created successfully")

	h.Deps.Hooks.mutation(h.Res.Key, "create", out.OK())
	if !out.OK() {
		h.Deps.Render.Render(w, r, http.StatusUnprocessableEntity, "form", Page{Title: def.Title, Active: h.Res.Key, Data: out.View})
		return
	}

	flash.Set(w, flash.Success, out.View.Message)
	http.Redirect(w, r, h.Res.Base(), http.StatusSeeOther)
}
