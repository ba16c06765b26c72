package repository

import (
	"context"

	"portfolio-dashboard/internal/domain/entity"
)

// ResourceReader reads one resource type from the remote content API.
type ResourceReader[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id string) (*T, error)
}

// ResourceRepository is the full CRUD contract of a resource.
// Mutations require a session token on ctx.
type ResourceRepository[T any] interface {
	ResourceReader[T]
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id string, item *T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// AuthRepository exchanges credentials for an access token.
type AuthRepository interface {
	Login(ctx context.Context, creds entity.Credentials) (token string, err error)
}
