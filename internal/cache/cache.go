// Package cache keeps per-resource-class snapshots of remote collections.
// Reads go through Get, which fetches on miss; mutations call Invalidate on
// the resource class so the next read reflects the server's state. There is
// no TTL: a snapshot lives until something invalidates it.
package cache

import (
	"context"
	"strings"
	"sync"
)

// Store holds cached snapshots keyed by "class" or "class/subkey" strings
// (e.g. "articles", "panier/alice@shop.tld").
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewStore creates an empty cache.
func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

// Invalidate drops the snapshot for key and every subkey under it, so that
// "panier" also clears "panier/alice@shop.tld".
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	prefix := key + "/"
	for k := range s.entries {
		if strings.HasPrefix(k, prefix) {
			delete(s.entries, k)
		}
	}
}

// Reset clears everything. Used on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	s.entries = make(map[string]any)
	s.mu.Unlock()
}

func (s *Store) lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

func (s *Store) put(key string, v any) {
	s.mu.Lock()
	s.entries[key] = v
	s.mu.Unlock()
}

// Get returns the cached snapshot for key or runs fetch to populate it.
// A failed fetch is retried once; a snapshot is only stored on success, so a
// failure never corrupts previously displayed data.
func Get[T any](ctx context.Context, s *Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := s.lookup(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	out, err := fetch(ctx)
	if err != nil {
		out, err = fetch(ctx)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	s.put(key, out)
	return out, nil
}
