package screen

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"portfolio-dashboard/internal/handler/http/pathutil"
	"portfolio-dashboard/internal/usecase/resource"
	"portfolio-dashboard/internal/view/detail"
	"portfolio-dashboard/internal/view/form"
	"portfolio-dashboard/internal/view/list"
)

// Resource configures the screens of one collection.
type Resource[T any] struct {
	Key   string // URL segment and nav key, e.g. "projects"
	Noun  string // singular, e.g. "project"
	Title string // e.g. "Projects"

	Service *resource.Service[T]
	ID      func(*T) string
	Label   func(*T) string

	Table list.Config[T]
	// Schema backs the create form; nil disables creation.
	Schema form.Schema[T]
	// Updatable enables the pre-filled update form.
	Updatable bool
	// Deletable enables the confirm and delete routes.
	Deletable bool
	Detail    func(*T, time.Time) detail.View
}

// Base is the collection path, e.g. "/projects".
func (r *Resource[T]) Base() string { return "/" + r.Key }

func (r *Resource[T]) createPath() string { return r.Base() + "/create-" + r.Noun }

func (r *Resource[T]) updateSegment() string {
	if !r.Updatable {
		return ""
	}
	return "update-" + r.Noun
}

func (r *Resource[T]) deleteSegment() string {
	if !r.Deletable {
		return ""
	}
	return "delete-" + r.Noun
}

// Hooks receives mutation outcomes, e.g. for metrics.
type Hooks struct {
	Mutation func(resource, action string, ok bool)
}

func (h Hooks) mutation(res, action string, ok bool) {
	if h.Mutation != nil {
		h.Mutation(res, action, ok)
	}
}

// Deps are shared by every screen handler.
type Deps struct {
	Render *Renderer
	Logger *slog.Logger
	Now    func() time.Time
	Hooks  Hooks
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// load fetches the item named by the {id} path value and renders the
// failure page itself when that is impossible.
func load[T any](ctx context.Context, d Deps, res *Resource[T], w http.ResponseWriter, r *http.Request) (*T, string, bool) {
	id := r.PathValue("id")
	if err := pathutil.ValidateID(id); err != nil {
		d.Render.Error(w, r, http.StatusBadRequest, "Invalid "+res.Noun+" id")
		return nil, "", false
	}
	item, err := res.Service.Get(ctx, id)
	if err != nil {
		status, msg := errorStatus(err), resource.UserMessage(err)
		logFailure(r, "load "+res.Noun, err)
		d.Render.Error(w, r, status, msg)
		return nil, "", false
	}
	return item, id, true
}
