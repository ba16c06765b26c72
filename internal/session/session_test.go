package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken builds a token the dashboard cannot verify: the key is never shared.
func signedToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return tok
}

func TestDecode(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tok := signedToken(t, "admin@example.com", exp)

	s, err := Decode(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", s.Email())
	assert.True(t, s.ExpiresAt().Equal(exp))
	assert.Equal(t, tok, s.Token)
	assert.False(t, s.Expired(exp.Add(-time.Minute)))
	assert.True(t, s.Expired(exp))
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("not-a-jwt")
	assert.True(t, errors.Is(err, ErrMalformedToken))
}

func TestNilSession(t *testing.T) {
	var s *Session
	assert.Equal(t, "", s.Email())
	assert.True(t, s.ExpiresAt().IsZero())
	assert.False(t, s.Expired(time.Now()))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, FromContext(ctx))
	assert.Equal(t, "", TokenFromContext(ctx))

	ctx = WithSession(ctx, &Session{Token: "tok"})
	assert.Equal(t, "tok", TokenFromContext(ctx))
}

func TestAccessor_Current(t *testing.T) {
	a := NewAccessor("", false)
	assert.Equal(t, DefaultCookieName, a.CookieName)

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		s, err := a.Current(req)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("empty cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: ""})
		s, err := a.Current(req)
		assert.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: signedToken(t, "a@b.co", time.Now().Add(time.Hour))})
		s, err := a.Current(req)
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", s.Email())
	})

	t.Run("garbage cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCookieName, Value: "garbage"})
		_, err := a.Current(req)
		assert.ErrorIs(t, err, ErrMalformedToken)
	})
}

func TestAccessor_EstablishAndClear(t *testing.T) {
	a := NewAccessor("accessToken", true)

	rec := httptest.NewRecorder()
	a.Establish(rec, "tok")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "accessToken", c.Name)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.True(t, c.Expires.IsZero())
	assert.Equal(t, 0, c.MaxAge)

	rec = httptest.NewRecorder()
	a.Clear(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
