// Package session resolves the signed-in admin from the access token cookie.
//
// The token is decoded WITHOUT signature verification. The resulting claims are
// advisory and only used for display (email, expiry) and for deciding whether to
// show the login page. Authorization is enforced exclusively by the remote
// content API, which verifies the token on every mutation.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when the cookie value is not a decodable JWT.
var ErrMalformedToken = errors.New("session: malformed token")

// Claims is the unverified payload of the access token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Session is the resolved state of one request.
type Session struct {
	Token  string
	Claims Claims
}

// Email returns the signed-in admin's email.
func (s *Session) Email() string {
	if s == nil {
		return ""
	}
	return s.Claims.Email
}

// ExpiresAt returns the advisory expiry, or the zero time when absent.
func (s *Session) ExpiresAt() time.Time {
	if s == nil || s.Claims.ExpiresAt == nil {
		return time.Time{}
	}
	return s.Claims.ExpiresAt.Time
}

// Expired reports whether the advisory expiry has passed at now.
func (s *Session) Expired(now time.Time) bool {
	exp := s.ExpiresAt()
	return !exp.IsZero() && !now.Before(exp)
}

var parser = jwt.NewParser()

// Decode reads the claims of token without verifying its signature.
func Decode(token string) (*Session, error) {
	var claims Claims
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return &Session{Token: token, Claims: claims}, nil
}

type ctxKey struct{}

// WithSession stores s on ctx.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored on ctx, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}

// TokenFromContext returns the bearer token of the session on ctx, or "".
func TokenFromContext(ctx context.Context) string {
	if s := FromContext(ctx); s != nil {
		return s.Token
	}
	return ""
}
