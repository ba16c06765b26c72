// Package csrf implements double-submit tokens for the dashboard forms.
// The token lives in an HTTP-only cookie and is echoed in a hidden form
// field; state-changing requests must present both, and they must match.
package csrf

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// CookieName holds the token.
	CookieName = "csrf_token"
	// FieldName is the hidden form input carrying the token.
	FieldName = "csrf_token"
	// HeaderName is accepted instead of the form field.
	HeaderName = "X-CSRF-Token"

	tokenLength = 32
)

// ErrorMessage is the body of a rejected request.
const ErrorMessage = "Your form has expired. Reload the page and try again."

type ctxKey struct{}

// Token returns the token for the current request, or "".
func Token(ctx context.Context) string {
	t, _ := ctx.Value(ctxKey{}).(string)
	return t
}

// WithToken stores token on ctx.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, ctxKey{}, token)
}

// NewToken returns a fresh random token.
func NewToken() (string, error) {
	return gonanoid.New(tokenLength)
}

// Protector is the CSRF middleware.
type Protector struct {
	Secure bool
	Logger *slog.Logger
}

// New returns a Protector.
func New(secure bool, logger *slog.Logger) *Protector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Protector{Secure: secure, Logger: logger}
}

// Middleware issues a token when the request has none and rejects unsafe
// methods whose submitted token does not match the cookie with 403.
func (p *Protector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(CookieName); err == nil && len(c.Value) == tokenLength {
			token = c.Value
		}

		if !safeMethod(r.Method) {
			submitted := r.Header.Get(HeaderName)
			if submitted == "" {
				submitted = r.PostFormValue(FieldName)
			}
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(submitted)) != 1 {
				p.Logger.Warn("csrf token mismatch",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("cookie_present", token != ""))
				http.Error(w, ErrorMessage, http.StatusForbidden)
				return
			}
		}

		if token == "" {
			var err error
			token, err = NewToken()
			if err != nil {
				p.Logger.Error("csrf token generation failed", slog.Any("error", err))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				Secure:   p.Secure,
				SameSite: http.SameSiteStrictMode,
			})
		}

		next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
	})
}

func safeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}
