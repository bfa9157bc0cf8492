package cache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Pages maps cache keys to previously fetched values. There is no eviction;
// entries live until Clear.
type Pages[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func NewPages[T any]() *Pages[T] {
	return &Pages[T]{items: make(map[string]T)}
}

func (c *Pages[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[key]
	return v, ok
}

func (c *Pages[T]) Put(key string, v T) {
	c.mu.Lock()
	c.items[key] = v
	c.mu.Unlock()
}

func (c *Pages[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// DeleteFunc removes every entry whose key satisfies match and returns how
// many were removed.
func (c *Pages[T]) DeleteFunc(match func(key string) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for k := range c.items {
		if match(k) {
			delete(c.items, k)
			n++
		}
	}
	return n
}

func (c *Pages[T]) Clear() {
	c.mu.Lock()
	clear(c.items)
	c.mu.Unlock()
}

// Loader fronts a Pages with a fetch function. A hit never calls fetch;
// concurrent misses for one key share a single fetch.
type Loader[T any] struct {
	pages *Pages[T]
	group singleflight.Group
}

func NewLoader[T any](pages *Pages[T]) *Loader[T] {
	return &Loader[T]{pages: pages}
}

// Load returns the cached value for key, or runs fetch and caches its result.
// Failed fetches are not cached. hit reports whether the value came from the
// cache without a fetch.
func (l *Loader[T]) Load(ctx context.Context, key string, fetch func(context.Context) (T, error)) (v T, hit bool, err error) {
	if v, ok := l.pages.Get(key); ok {
		return v, true, nil
	}

	res, err, _ := l.group.Do(key, func() (any, error) {
		if v, ok := l.pages.Get(key); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		l.pages.Put(key, v)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return res.(T), false, nil
}

// Pages exposes the underlying cache.
func (l *Loader[T]) Pages() *Pages[T] {
	return l.pages
}
