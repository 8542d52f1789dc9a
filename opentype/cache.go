package opentype

import "sync"

// cache is a generic thread-safe LRU cache with a soft limit.
// When the cache exceeds softLimit, oldest entries are evicted.
//
// cache is safe for concurrent use and must not be copied after creation.
type cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // Monotonic access counter
}

// cacheEntry holds a cached value with its access time.
type cacheEntry[V any] struct {
	value V
	atime int64 // Access time (tick value)
}

// newCache creates a cache with the given soft limit.
// A softLimit of 0 means unlimited.
func newCache[K comparable, V any](softLimit int) *cache[K, V] {
	return &cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// get retrieves a value from the cache.
func (c *cache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick

	return entry.value, true
}

// set stores a value, evicting the oldest entries when over the soft limit.
func (c *cache[K, V]) set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &cacheEntry[V]{
		value: value,
		atime: c.tick,
	}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// clear removes all entries.
func (c *cache[K, V]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// len returns the number of entries.
func (c *cache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// evictOldest removes entries until the cache is back under 75% of the
// soft limit. Caller must hold c.mu.
func (c *cache[K, V]) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}

	toEvict := len(c.entries) - targetSize
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	entries := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		entries = append(entries, aged{key: key, atime: e.atime})
	}

	// Simple insertion sort by access time; eviction batches are small.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].atime < entries[j-1].atime; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	for i := 0; i < toEvict && i < len(entries); i++ {
		delete(c.entries, entries[i].key)
	}
}
