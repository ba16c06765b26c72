package restapi

import (
	"context"
	"net/http"

	"portfolio-dashboard/internal/domain/entity"
)

const loginPath = "users/login"

// Auth exchanges admin credentials for an access token.
// It satisfies repository.AuthRepository.
type Auth struct {
	client *Client
}

// NewAuth returns the login client.
func NewAuth(c *Client) *Auth {
	return &Auth{client: c}
}

// Login posts creds to the login endpoint and returns data.token.
func (a *Auth) Login(ctx context.Context, creds entity.Credentials) (string, error) {
	env, err := a.client.send(ctx, call{
		resource: "users",
		method:   http.MethodPost,
		path:     loginPath,
		body:     creds,
	})
	if err != nil {
		return "", err
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := decodeData(env, &data); err != nil || data.Token == "" {
		return "", &Error{Kind: KindRemote, Message: GenericMessage, Status: http.StatusOK, Err: err}
	}
	return data.Token, nil
}
