// Package guard redirects requests without a session to the login page.
//
// The guard only checks that a decodable access token is present. It never
// verifies the signature; the content API rejects forged tokens on every
// mutation, and reads are public upstream anyway.
package guard

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"portfolio-dashboard/internal/session"
)

// Redirect reasons reported to OnRedirect.
const (
	ReasonNoSession = "no_session"
	ReasonMalformed = "malformed_token"
)

// DefaultPublic lists paths reachable without a session.
var DefaultPublic = []string{
	"/login",
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/static/",
}

// Guard is the per-request session policy.
type Guard struct {
	Sessions *session.Accessor
	LoginURL string
	// Public entries ending in '/' match by prefix, others exactly.
	Public     []string
	Logger     *slog.Logger
	OnRedirect func(reason string)
}

// New returns a guard with the default allow-list.
func New(sessions *session.Accessor, loginURL string, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		Sessions: sessions,
		LoginURL: loginURL,
		Public:   DefaultPublic,
		Logger:   logger,
	}
}

// IsPublic reports whether path is on the allow-list.
func (g *Guard) IsPublic(path string) bool {
	for _, p := range g.Public {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) {
				return true
			}
			continue
		}
		if path == p || path == p+"/" {
			return true
		}
	}
	return false
}

// Middleware resolves the session and stores it on the request context.
// Protected paths without a usable session are redirected with 303 to the
// login URL; the original location travels in the "next" parameter.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := g.Sessions.Current(r)
		if err != nil {
			g.Logger.Debug("discarding unreadable session",
				slog.String("path", r.URL.Path),
				slog.Any("error", err))
			sess = nil
		}

		if sess != nil {
			r = r.WithContext(session.WithSession(r.Context(), sess))
			next.ServeHTTP(w, r)
			return
		}
		if g.IsPublic(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		reason := ReasonNoSession
		if err != nil {
			reason = ReasonMalformed
			g.Sessions.Clear(w)
		}
		if g.OnRedirect != nil {
			g.OnRedirect(reason)
		}
		http.Redirect(w, r, g.loginLocation(r), http.StatusSeeOther)
	})
}

func (g *Guard) loginLocation(r *http.Request) string {
	if r.Method != http.MethodGet || r.URL.Path == "/" {
		return g.LoginURL
	}
	sep := "?"
	if strings.Contains(g.LoginURL, "?") {
		sep = "&"
	}
	return g.LoginURL + sep + "next=" + url.QueryEscape(r.URL.RequestURI())
}

// SafeNext returns next when it is a local absolute path, otherwise "/".
func SafeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return next
}
