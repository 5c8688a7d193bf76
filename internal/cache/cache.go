package cache

import "sync"

// Cache is a thread-safe cache that evicts its least recently used entries
// once it grows past its soft limit.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64 // access clock
	onEvict   func(K, V)
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache holding about softLimit entries. Zero means
// unlimited. onEvict, if not nil, is called under the cache lock for every
// entry dropped by eviction, Delete or Clear.
func New[K comparable, V any](softLimit int, onEvict func(K, V)) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
		onEvict:   onEvict,
	}
}

// Get returns the value for key and marks it used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// GetOrCreate returns the cached value for key, calling create under the
// lock when it is missing. A create error is returned and nothing is
// cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.entries[key] = &entry[V]{value: v, atime: c.tick}
	c.evict()
	return v, nil
}

// Delete drops key and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return false
	}
	delete(c.entries, key)
	if c.onEvict != nil {
		c.onEvict(key, e.value)
	}
	return true
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if c.onEvict != nil {
			c.onEvict(k, e.value)
		}
	}
	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the soft limit.
func (c *Cache[K, V]) Capacity() int { return c.softLimit }

// evict trims the cache to three quarters of the soft limit, oldest
// first. Caller holds c.mu.
func (c *Cache[K, V]) evict() {
	if c.softLimit <= 0 || len(c.entries) <= c.softLimit {
		return
	}
	target := max(c.softLimit*3/4, 1)
	for len(c.entries) > target {
		var (
			oldest K
			atime  int64 = -1
		)
		for k, e := range c.entries {
			if atime < 0 || e.atime < atime {
				oldest, atime = k, e.atime
			}
		}
		v := c.entries[oldest].value
		delete(c.entries, oldest)
		if c.onEvict != nil {
			c.onEvict(oldest, v)
		}
	}
}
