// Package cache provides small in-memory caches for values that are costly to
// rebuild within one run: resized placeholder bitmaps and parsed font faces.
//
// Caches are plain values owned by whoever creates them. There is no
// process-wide instance, so tests can build, inspect and clear their own.
//
// Two implementations are provided:
//   - [Memory]: map-backed cache
//   - [Null]: never stores anything (caching disabled)
//
// Caches are not safe for concurrent use.
package cache

import "github.com/matzehuels/dbdplan/pkg/observability"

// Cache stores values by comparable key.
type Cache[K comparable, V any] interface {
	// Name identifies the cache in logs and hooks.
	Name() string

	// Get returns the value for key and whether it was present.
	Get(key K) (V, bool)

	// Set stores value under key, replacing any previous value.
	Set(key K, value V)

	// Delete removes key. Missing keys are ignored.
	Delete(key K)

	// Clear removes every entry.
	Clear()

	// Len returns the number of stored entries.
	Len() int
}

// GetOrAdd returns the cached value for key, or builds it with fn and stores
// it. The boolean reports whether fn ran and the value was added. Errors from
// fn are returned as-is and nothing is stored.
func GetOrAdd[K comparable, V any](c Cache[K, V], key K, fn func() (V, error)) (V, bool, error) {
	hooks := observability.Cache()
	if v, ok := c.Get(key); ok {
		hooks.OnCacheHit(c.Name())
		return v, false, nil
	}
	hooks.OnCacheMiss(c.Name())

	v, err := fn()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.Set(key, v)
	hooks.OnCacheSet(c.Name(), c.Len())
	return v, true, nil
}
