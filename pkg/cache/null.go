package cache

// Null is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type Null[K comparable, V any] struct {
	name string
}

// NewNull creates a null cache.
func NewNull[K comparable, V any](name string) *Null[K, V] {
	return &Null[K, V]{name: name}
}

// Name returns the cache name.
func (c *Null[K, V]) Name() string { return c.name }

// Get always returns a cache miss.
func (c *Null[K, V]) Get(key K) (V, bool) {
	var zero V
	return zero, false
}

// Set does nothing.
func (c *Null[K, V]) Set(key K, value V) {}

// Delete does nothing.
func (c *Null[K, V]) Delete(key K) {}

// Clear does nothing.
func (c *Null[K, V]) Clear() {}

// Len always returns 0.
func (c *Null[K, V]) Len() int { return 0 }

// Ensure Null implements Cache.
var _ Cache[string, int] = (*Null[string, int])(nil)
