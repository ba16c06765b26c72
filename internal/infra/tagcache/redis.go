package tagcache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	versionKeyPrefix = "dash:tagv:"  // Current version of a tag: dash:tagv:{tag}
	entryKeyPrefix   = "dash:cache:" // Cached entry: dash:cache:{tag}:{version}:{key}

	// MaxEntryTTL bounds every entry, so entries orphaned by a version bump
	// are eventually removed even when no ttl was requested.
	MaxEntryTTL = 24 * time.Hour
)

// errStale aborts a write whose version was superseded.
var errStale = errors.New("tag version changed")

// Redis is a Store shared between dashboard replicas.
// Each tag carries a version counter; entries are written under the current
// version, and invalidation bumps the counter so older entries are never read
// again and simply expire. Entries never outlive MaxEntryTTL.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an existing client.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Version implements Store.
func (r *Redis) Version(ctx context.Context, tag string) (int64, error) {
	v, err := r.client.Get(ctx, versionKeyPrefix+tag).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get tag version: %w", err)
	}
	return v, nil
}

func entryKey(tag string, version int64, key string) string {
	return fmt.Sprintf("%s%s:%d:%s", entryKeyPrefix, tag, version, key)
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, tag, key string) ([]byte, error) {
	v, err := r.Version(ctx, tag)
	if err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, entryKey(tag, v, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheLookups.WithLabelValues(tag, "miss").Inc()
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get cache entry: %w", err)
	}
	cacheLookups.WithLabelValues(tag, "hit").Inc()
	return data, nil
}

// Set implements Store. The version check and the write run in one
// WATCH/MULTI transaction on the version key. A non-positive ttl, or one
// above MaxEntryTTL, is replaced by MaxEntryTTL.
func (r *Redis) Set(ctx context.Context, tag, key string, version int64, value []byte, ttl time.Duration) error {
	if ttl <= 0 || ttl > MaxEntryTTL {
		ttl = MaxEntryTTL
	}
	vkey := versionKeyPrefix + tag

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("get tag version: %w", err)
		}
		if current != version {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, entryKey(tag, version, key), value, ttl)
			return nil
		})
		return err
	}, vkey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		cacheStaleWrites.WithLabelValues(tag).Inc()
		return nil
	default:
		return fmt.Errorf("set cache entry: %w", err)
	}
}

// Invalidate implements Store.
func (r *Redis) Invalidate(ctx context.Context, tag string) error {
	if err := r.client.Incr(ctx, versionKeyPrefix+tag).Err(); err != nil {
		return fmt.Errorf("bump tag version: %w", err)
	}
	cacheInvalidations.WithLabelValues(tag).Inc()
	return nil
}

// Ping implements Store.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
