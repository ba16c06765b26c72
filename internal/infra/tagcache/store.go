// Package tagcache caches upstream read responses grouped under a resource tag.
// Invalidating a tag drops every entry stored under it, so the next read
// goes to the content API again.
package tagcache

import (
	"context"
	"errors"
	"time"
)

// Resource tags. One per upstream collection.
const (
	TagProject = "PROJECT"
	TagSkill   = "SKILL"
	TagBlog    = "BLOG"
	TagContact = "CONTACT"
)

// ErrMiss is returned by Get when no live entry exists.
var ErrMiss = errors.New("tagcache: miss")

// Store is a tag-scoped byte cache.
//
// Every tag has a version that Invalidate advances. A reader takes the
// version before fetching and hands it back to Set, so a response fetched
// before an invalidation is never stored after it.
type Store interface {
	// Version returns the current version of tag.
	Version(ctx context.Context, tag string) (int64, error)
	// Get returns the cached value for key under tag, or ErrMiss.
	Get(ctx context.Context, tag, key string) ([]byte, error)
	// Set stores value for key under tag until ttl elapses. It does nothing
	// when tag is no longer at version.
	Set(ctx context.Context, tag, key string, version int64, value []byte, ttl time.Duration) error
	// Invalidate drops every entry stored under tag.
	Invalidate(ctx context.Context, tag string) error
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
}

// Nop is a Store that never caches. Useful when caching is disabled.
type Nop struct{}

// Version implements Store.
func (Nop) Version(context.Context, string) (int64, error) { return 0, nil }

// Get implements Store.
func (Nop) Get(context.Context, string, string) ([]byte, error) { return nil, ErrMiss }

// Set implements Store.
func (Nop) Set(context.Context, string, string, int64, []byte, time.Duration) error { return nil }

// Invalidate implements Store.
func (Nop) Invalidate(context.Context, string) error { return nil }

// Ping implements Store.
func (Nop) Ping(context.Context) error { return nil }
