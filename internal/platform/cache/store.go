// Package cache provides an in-process TTL store with per-key load
// deduplication.
package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type item[V any] struct {
	value    V
	deadline time.Time
}

func (i item[V]) liveAt(now time.Time) bool {
	return i.deadline.IsZero() || now.Before(i.deadline)
}

// Store is a process-local TTL map. Concurrent writers to a key are
// last-writer-wins. Empty keys are never stored.
type Store[V any] struct {
	ttl    time.Duration
	now    func() time.Time
	flight singleflight.Group

	mu    sync.RWMutex
	items map[string]item[V]
}

// NewStore returns a store whose Set uses ttl. A non-positive ttl never expires.
func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{ttl: ttl, now: time.Now, items: make(map[string]item[V])}
}

func (s *Store[V]) Get(_ context.Context, key string) (V, bool) {
	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if ok && it.liveAt(s.now()) {
		return it.value, true
	}
	if ok {
		s.evict(key)
	}
	var zero V
	return zero, false
}

func (s *Store[V]) Set(ctx context.Context, key string, value V) {
	s.SetWithTTL(ctx, key, value, s.ttl)
}

// SetWithTTL stores value for ttl. A non-positive ttl never expires.
func (s *Store[V]) SetWithTTL(_ context.Context, key string, value V, ttl time.Duration) {
	if key == "" {
		return
	}
	it := item[V]{value: value}
	if ttl > 0 {
		it.deadline = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.items[key] = it
	s.mu.Unlock()
}

func (s *Store[V]) Delete(_ context.Context, key string) {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
}

// evict drops key only if it is still expired, so a concurrent Set survives.
func (s *Store[V]) evict(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it, ok := s.items[key]; ok && !it.liveAt(s.now()) {
		delete(s.items, key)
	}
}

// GetOrLoad returns the cached value or runs load once per key across
// concurrent callers. Load errors are not cached.
func (s *Store[V]) GetOrLoad(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	var zero V
	if load == nil {
		return zero, errors.New("cache: nil loader")
	}
	if key == "" {
		return load(ctx)
	}
	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, value)
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	value, _ := v.(V)
	return value, nil
}
