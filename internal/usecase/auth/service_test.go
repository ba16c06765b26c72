package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/infra/restapi"
	"portfolio-dashboard/internal/usecase/auth"
	"portfolio-dashboard/internal/usecase/resource"
)

type stubAuth struct {
	token string
	err   error
	got   *entity.Credentials
}

func (s *stubAuth) Login(_ context.Context, creds entity.Credentials) (string, error) {
	s.got = &creds
	return s.token, s.err
}

func signedToken(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   exp.Unix(),
	})
	s, err := tok.SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return s
}

func TestLogin_Success(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	repo := &stubAuth{token: signedToken(t, "admin@example.com", exp)}
	svc := auth.NewService(repo)

	sess, err := svc.Login(context.Background(), entity.Credentials{Email: " admin@example.com ", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", sess.Email())
	assert.True(t, sess.ExpiresAt().Equal(exp))
	assert.Equal(t, "admin@example.com", repo.got.Email)
}

func TestLogin_ValidationBeforeRequest(t *testing.T) {
	tests := []struct {
		name  string
		creds entity.Credentials
		want  string
	}{
		{"bad email", entity.Credentials{Email: "nope", Password: "secret"}, "Invalid email address"},
		{"short password", entity.Credentials{Email: "a@b.co", Password: "abc"}, "Password must be at least 4 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubAuth{token: "unused"}
			_, err := auth.NewService(repo).Login(context.Background(), tt.creds)
			require.Error(t, err)
			assert.Equal(t, tt.want, resource.UserMessage(err))
			assert.Nil(t, repo.got)
		})
	}
}

func TestLogin_RemoteRejection(t *testing.T) {
	repo := &stubAuth{err: &restapi.Error{Kind: restapi.KindUnauthenticated, Message: "Invalid credentials", Status: 401}}

	_, err := auth.NewService(repo).Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", resource.UserMessage(err))
}

func TestLogin_OpaqueToken(t *testing.T) {
	repo := &stubAuth{token: "opaque"}
	sess, err := auth.NewService(repo).Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "opaque", sess.Token)
	assert.Empty(t, sess.Email())
}

func TestLogin_EmptyToken(t *testing.T) {
	_, err := auth.NewService(&stubAuth{}).Login(context.Background(), entity.Credentials{Email: "a@b.co", Password: "secret"})
	assert.ErrorIs(t, err, auth.ErrEmptyToken)
}
