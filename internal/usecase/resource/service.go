package resource

import (
	"context"
	"fmt"

	"portfolio-dashboard/internal/infra/restapi"
	"portfolio-dashboard/internal/repository"
)

// Service runs the use cases of one collection.
type Service[T any] struct {
	// Name is used in error wrapping, e.g. "project".
	Name string
	Repo repository.ResourceReader[T]
	// Writer is nil for read-only collections.
	Writer repository.ResourceRepository[T]
	// Validate checks a payload before it is sent. Nil accepts everything.
	Validate func(*T) error
}

// NewService returns a service over a writable repository.
func NewService[T any](name string, repo repository.ResourceRepository[T], validate func(*T) error) *Service[T] {
	return &Service[T]{Name: name, Repo: repo, Writer: repo, Validate: validate}
}

// NewReadOnlyService returns a service whose mutations fail with ErrReadOnly.
func NewReadOnlyService[T any](name string, repo repository.ResourceReader[T]) *Service[T] {
	return &Service[T]{Name: name, Repo: repo}
}

// ReadOnly reports whether mutations are unavailable.
func (s *Service[T]) ReadOnly() bool { return s.Writer == nil }

// List returns every item.
func (s *Service[T]) List(ctx context.Context) ([]*T, error) {
	items, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", s.Name, err)
	}
	return items, nil
}

// Count returns the number of items.
func (s *Service[T]) Count(ctx context.Context) (int, error) {
	items, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Get returns one item. A missing item yields ErrNotFound.
func (s *Service[T]) Get(ctx context.Context, id string) (*T, error) {
	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		if restapi.IsKind(err, restapi.KindNotFound) {
			return nil, fmt.Errorf("get %s %s: %w: %w", s.Name, id, ErrNotFound, err)
		}
		return nil, fmt.Errorf("get %s %s: %w", s.Name, id, err)
	}
	return item, nil
}

// Create validates item and stores it.
func (s *Service[T]) Create(ctx context.Context, item *T) (*T, error) {
	if s.Writer == nil {
		return nil, ErrReadOnly
	}
	if err := s.validate(item); err != nil {
		return nil, err
	}
	created, err := s.Writer.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", s.Name, err)
	}
	return created, nil
}

// Update validates item and replaces the stored one with id.
func (s *Service[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	if s.Writer == nil {
		return nil, ErrReadOnly
	}
	if err := s.validate(item); err != nil {
		return nil, err
	}
	updated, err := s.Writer.Update(ctx, id, item)
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", s.Name, id, err)
	}
	return updated, nil
}

// Delete removes the item with id.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	if s.Writer == nil {
		return ErrReadOnly
	}
	if err := s.Writer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s %s: %w", s.Name, id, err)
	}
	return nil
}

func (s *Service[T]) validate(item *T) error {
	if s.Validate == nil {
		return nil
	}
	return s.Validate(item)
}
