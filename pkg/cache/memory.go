package cache

// Memory is a map-backed cache.
type Memory[K comparable, V any] struct {
	name  string
	items map[K]V
}

// NewMemory creates an empty in-memory cache.
func NewMemory[K comparable, V any](name string) *Memory[K, V] {
	return &Memory[K, V]{name: name, items: make(map[K]V)}
}

// Name returns the cache name.
func (c *Memory[K, V]) Name() string { return c.name }

// Get retrieves a value from the cache.
func (c *Memory[K, V]) Get(key K) (V, bool) {
	v, ok := c.items[key]
	return v, ok
}

// Set stores a value in the cache.
func (c *Memory[K, V]) Set(key K, value V) {
	c.items[key] = value
}

// Delete removes a value from the cache.
func (c *Memory[K, V]) Delete(key K) {
	delete(c.items, key)
}

// Clear removes every entry.
func (c *Memory[K, V]) Clear() {
	clear(c.items)
}

// Len returns the number of entries.
func (c *Memory[K, V]) Len() int { return len(c.items) }

// Each calls fn for every entry in unspecified order.
func (c *Memory[K, V]) Each(fn func(K, V)) {
	for k, v := range c.items {
		fn(k, v)
	}
}

// Ensure Memory implements Cache.
var _ Cache[string, int] = (*Memory[string, int])(nil)
