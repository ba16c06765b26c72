package screen

import (
	"log/slog"
	"net/http"
	"net/url"

	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/handler/http/flash"
	"portfolio-dashboard/internal/handler/http/guard"
	"portfolio-dashboard/internal/observability/logging"
	"portfolio-dashboard/internal/session"
	"portfolio-dashboard/internal/usecase/auth"
	"portfolio-dashboard/internal/usecase/resource"
	"portfolio-dashboard/internal/view/form"
)

var loginForm = form.Definition[entity.Credentials]{
	Title:       "Sign in",
	Action:      "/login",
	SubmitLabel: "Sign in",
	Schema:      form.LoginSchema(),
}

type loginView struct {
	form.View
	Next string
}

// LoginHandler serves the sign-in form and exchanges credentials for the
// session cookie.
type LoginHandler struct {
	Auth     *auth.Service
	Sessions *session.Accessor
	Deps     Deps
	// Result observes every submitted login.
	Result func(ok bool)
}

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.submit(w, r)
		return
	}
	if session.FromContext(r.Context()) != nil {
		http.Redirect(w, r, guard.SafeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
		return
	}
	v := loginView{View: loginForm.Create(), Next: r.URL.Query().Get("next")}
	h.Deps.Render.Render(w, r, http.StatusOK, "login", Page{Title: "Sign in", Data: v})
}

func (h LoginHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Deps.Render.Error(w, r, http.StatusBadRequest, "The form could not be read")
		return
	}
	next := r.PostForm.Get("next")
	creds := loginForm.Schema.Decode(r.PostForm)

	sess, err := h.Auth.Login(r.Context(), *creds)
	if h.Result != nil {
		h.Result(err == nil)
	}
	if err != nil {
		logFailure(r, "login", err)

		// the password is never echoed back
		filled := url.Values{"email": {r.PostForm.Get("email")}}
		v := loginView{View: loginForm.Create(), Next: next}
		v.Fields = loginForm.Schema.Fields(filled, nil)
		v.State = form.Failure
		v.Message = resource.UserMessage(err)

		h.Deps.Render.Render(w, r, errorStatus(err), "login", Page{Title: "Sign in", Data: v})
		return
	}

	h.Sessions.Establish(w, sess.Token)
	logging.FromContext(r.Context()).Info("admin signed in", slog.String("email", sess.Email()))
	flash.Set(w, flash.Success, "Login successful")
	http.Redirect(w, r, guard.SafeNext(next), http.StatusSeeOther)
}

// LogoutHandler clears the session cookie.
type LogoutHandler struct {
	Sessions *session.Accessor
}

func (h LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Clear(w)
	flash.Set(w, flash.Success, "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
