package tagcache

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process Store. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	tags     map[string]map[string]memEntry
	versions map[string]int64
	now      func() time.Time
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		tags:     make(map[string]map[string]memEntry),
		versions: make(map[string]int64),
		now:      time.Now,
	}
}

// Version implements Store.
func (m *Memory) Version(_ context.Context, tag string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.versions[tag], nil
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, tag, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.tags[tag][key]
	if !ok {
		cacheLookups.WithLabelValues(tag, "miss").Inc()
		return nil, ErrMiss
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.tags[tag], key)
		cacheLookups.WithLabelValues(tag, "miss").Inc()
		return nil, ErrMiss
	}
	cacheLookups.WithLabelValues(tag, "hit").Inc()
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

// Set implements Store. A non-positive ttl keeps the entry until invalidated.
func (m *Memory) Set(_ context.Context, tag, key string, version int64, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.versions[tag] != version {
		cacheStaleWrites.WithLabelValues(tag).Inc()
		return nil
	}

	entries, ok := m.tags[tag]
	if !ok {
		entries = make(map[string]memEntry)
		m.tags[tag] = entries
	}
	e := memEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	entries[key] = e
	return nil
}

// Invalidate implements Store.
func (m *Memory) Invalidate(_ context.Context, tag string) error {
	m.mu.Lock()
	delete(m.tags, tag)
	m.versions[tag]++
	m.mu.Unlock()
	cacheInvalidations.WithLabelValues(tag).Inc()
	return nil
}

// Ping implements Store.
func (m *Memory) Ping(context.Context) error { return nil }
