// Package screen serves the dashboard pages: a list, detail, form and
// delete confirmation per collection, plus sign-in and the home summary.
package screen

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"portfolio-dashboard/internal/handler/http/csrf"
	"portfolio-dashboard/internal/handler/http/flash"
	"portfolio-dashboard/internal/observability/logging"
	"portfolio-dashboard/internal/session"
	"portfolio-dashboard/internal/view/detail"
)

// NavItem is one sidebar link.
type NavItem struct {
	Key   string
	Label string
	Href  string
}

// Nav is the sidebar of every signed-in page.
var Nav = []NavItem{
	{Key: "home", Label: "Dashboard", Href: "/"},
	{Key: "projects", Label: "Projects", Href: "/projects"},
	{Key: "skills", Label: "Skills", Href: "/skills"},
	{Key: "blogs", Label: "Blogs", Href: "/blogs"},
	{Key: "contacts", Label: "Contacts", Href: "/contacts"},
}

// Page is the model every template receives.
type Page struct {
	Title          string
	Active         string
	User           *session.Session
	SessionExpires string
	Flash          *flash.Message
	CSRF           string
	Nav            []NavItem
	Version        string
	Data           any
}

var pages = []string{"home", "list", "detail", "form", "confirm", "login", "error"}

var funcs = template.FuncMap{
	"inc": func(n int) int { return n + 1 },
	// qs turns an encoded query into a relative link. Emitting the '?'
	// from the template instead would query-escape the '=' and '&'.
	"qs": func(q string) string { return "?" + q },
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	pages   map[string]*template.Template
	version string
	now     func() time.Time
}

// NewRenderer parses every page from fsys.
func NewRenderer(fsys fs.FS, version string) (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages)), version: version, now: time.Now}
	for _, name := range pages {
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, "layout.html", "field.html", name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page name with status. The flash notice is consumed here,
// so it must run before anything else writes to w.
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, p Page) {
	t, ok := rd.pages[name]
	if !ok {
		logging.FromContext(r.Context()).Error("unknown template", slog.String("template", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sess := session.FromContext(r.Context())
	p.User = sess
	if exp := sess.ExpiresAt(); !exp.IsZero() {
		p.SessionExpires = detail.Relative(exp, rd.now())
	}
	p.CSRF = csrf.Token(r.Context())
	p.Nav = Nav
	p.Version = rd.version
	if p.Flash == nil {
		p.Flash = flash.Pop(w, r)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		logging.FromContext(r.Context()).Error("render template",
			slog.String("template", name),
			slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Error renders the error page with a user-facing message.
func (rd *Renderer) Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	rd.Render(w, r, status, "error", Page{Title: http.StatusText(status), Data: message})
}
