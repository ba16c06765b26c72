// Package auth provides the sign-in use case of the dashboard.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-dashboard/internal/domain/entity"
	"portfolio-dashboard/internal/repository"
	"portfolio-dashboard/internal/session"
)

// ErrEmptyToken is returned when the API accepts the login but sends no token.
var ErrEmptyToken = errors.New("login returned an empty token")

// Service exchanges credentials for a session.
type Service struct {
	Repo repository.AuthRepository
}

// NewService returns the sign-in service.
func NewService(repo repository.AuthRepository) *Service {
	return &Service{Repo: repo}
}

// Login validates creds locally, then asks the API for a token. The email
// is trimmed first. The returned session is decoded from the token without
// verification; a token that is not a JWT still yields a session carrying
// only the raw token.
func (s *Service) Login(ctx context.Context, creds entity.Credentials) (*session.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	token, err := s.Repo.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if token == "" {
		return nil, ErrEmptyToken
	}

	sess, err := session.Decode(token)
	if err != nil {
		return &session.Session{Token: token}, nil
	}
	return sess, nil
}
