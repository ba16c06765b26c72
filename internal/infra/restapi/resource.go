package restapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// Resource is the typed client of one API collection, e.g. /projects.
// It satisfies repository.ResourceRepository[T].
type Resource[T any] struct {
	client *Client
	path   string
	tag    string
}

// NewResource returns the client of collection path, cached under tag.
func NewResource[T any](c *Client, path, tag string) *Resource[T] {
	return &Resource[T]{client: c, path: path, tag: tag}
}

// Tag returns the cache tag invalidated by this resource's mutations.
func (r *Resource[T]) Tag() string { return r.tag }

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

// List returns every item of the collection.
func (r *Resource[T]) List(ctx context.Context) ([]*T, error) {
	var out []*T
	if err := r.client.read(ctx, r.path, r.tag, r.path, &out); err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Kind == KindNotFound && apiErr.Status != http.StatusNotFound {
			// success without data: an empty collection
			return []*T{}, nil
		}
		return nil, err
	}
	if out == nil {
		out = []*T{}
	}
	return out, nil
}

// Get returns one item by id.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var out T
	if err := r.client.read(ctx, r.path, r.tag, r.itemPath(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts item and returns the stored version.
func (r *Resource[T]) Create(ctx context.Context, item *T) (*T, error) {
	var out T
	if err := r.client.mutate(ctx, r.path, r.tag, http.MethodPost, r.path, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update patches the item with id and returns the stored version.
func (r *Resource[T]) Update(ctx context.Context, id string, item *T) (*T, error) {
	var out T
	if err := r.client.mutate(ctx, r.path, r.tag, http.MethodPatch, r.itemPath(id), item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the item with id.
func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.client.mutate(ctx, r.path, r.tag, http.MethodDelete, r.itemPath(id), nil, nil)
}
