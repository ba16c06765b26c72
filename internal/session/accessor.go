package session

import (
	"errors"
	"net/http"
)

// DefaultCookieName is the cookie the portfolio API login flow has always used.
const DefaultCookieName = "accessToken"

// Accessor reads and writes the access token cookie.
type Accessor struct {
	CookieName string
	// Secure marks the cookie as HTTPS-only.
	Secure bool
}

// NewAccessor returns an Accessor for cookieName (DefaultCookieName when empty).
func NewAccessor(cookieName string, secure bool) *Accessor {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Accessor{CookieName: cookieName, Secure: secure}
}

// Current resolves the session of r. A missing cookie is not an error:
// it returns (nil, nil). An undecodable token returns ErrMalformedToken.
func (a *Accessor) Current(r *http.Request) (*Session, error) {
	c, err := r.Cookie(a.CookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && c.Value == "") {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Decode(c.Value)
}

// Establish stores token as an HTTP-only session cookie without explicit expiry.
func (a *Accessor) Establish(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear deletes the session cookie.
func (a *Accessor) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     a.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
