package client

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// listCache memoizes one list endpoint. Concurrent readers of an invalid
// cache share a single fetch through singleflight; mutations invalidate the
// whole snapshot rather than patching it in place, so the next read refetches.
type listCache[T any] struct {
	key   string
	group singleflight.Group

	mu      sync.Mutex
	valid   bool
	items   []T
	version uint64
}

func newListCache[T any](key string) *listCache[T] {
	return &listCache[T]{key: key}
}

// get returns the cached items and the snapshot version, fetching first if
// the cache is invalid. The version changes whenever a fresh snapshot lands,
// so callers can use it to key derived-state memoization.
func (lc *listCache[T]) get(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, uint64, error) {
	lc.mu.Lock()
	if lc.valid {
		items, ver := lc.items, lc.version
		lc.mu.Unlock()
		return items, ver, nil
	}
	lc.mu.Unlock()

	v, err, _ := lc.group.Do(lc.key, func() (interface{}, error) {
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		lc.mu.Lock()
		lc.items = items
		lc.valid = true
		lc.version++
		lc.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return nil, 0, err
	}
	lc.mu.Lock()
	ver := lc.version
	lc.mu.Unlock()
	return v.([]T), ver, nil
}

func (lc *listCache[T]) invalidate() {
	lc.mu.Lock()
	lc.valid = false
	lc.mu.Unlock()
}
