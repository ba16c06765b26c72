package screen

import (
	"net/http"
	"unicode"
	"unicode/utf8"
)

// Register mounts the screens of res on mux.
func Register[T any](mux *http.ServeMux, res *Resource[T], d Deps) {
	base := res.Base()
	mux.Handle("GET "+base, ListHandler[T]{res, d})
	mux.Handle("GET "+base+"/{id}", DetailHandler[T]{res, d})

	if res.Schema != nil {
		mux.Handle("GET "+res.createPath(), CreateFormHandler[T]{res, d})
		mux.Handle("POST "+res.createPath(), CreateHandler[T]{res, d})
	}
	if res.Updatable {
		path := base + "/" + res.updateSegment() + "/{id}"
		mux.Handle("GET "+path, UpdateFormHandler[T]{res, d})
		mux.Handle("POST "+path, UpdateHandler[T]{res, d})
	}
	if res.Deletable {
		path := base + "/" + res.deleteSegment() + "/{id}"
		mux.Handle("GET "+path, DeleteConfirmHandler[T]{res, d})
		mux.Handle("POST "+path, DeleteHandler[T]{res, d})
	}
}

// RegisterAuth mounts sign-in, sign-out and the home page. limit wraps the
// login handler, e.g. with a throttle; nil leaves it unwrapped.
func RegisterAuth(mux *http.ServeMux, login LoginHandler, logout LogoutHandler, home HomeHandler, limit func(http.Handler) http.Handler) {
	var lh http.Handler = login
	if limit != nil {
		lh = limit(lh)
	}
	mux.Handle("GET /login", login)
	mux.Handle("POST /login", lh)
	mux.Handle("POST /logout", logout)
	mux.Handle("GET /{$}", home)
}

// NotFound renders the error page for unmatched paths.
func NotFound(d Deps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d.Render.Error(w, r, http.StatusNotFound, "This page does not exist")
	})
}

func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
