package cache

// LRU is a bounded least-recently-used map.
// When an Add pushes it past its limit, the oldest entry is dropped.
//
// The zero value is not usable; create one with New.
type LRU[K comparable, V any] struct {
	limit   int
	entries map[K]*node[K, V]
	order   list[K, V]

	hits, misses, evictions uint64
}

// New creates an LRU holding at most limit entries.
// A limit of 0 or less stores nothing: Add always reports false.
func New[K comparable, V any](limit int) *LRU[K, V] {
	return &LRU[K, V]{
		limit:   max(limit, 0),
		entries: make(map[K]*node[K, V]),
	}
}

// Get returns the value stored under key and marks it recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	n, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(n)
	return n.value, true
}

// Add stores value under key, replacing any previous value.
// It reports whether the value was stored.
func (c *LRU[K, V]) Add(key K, value V) bool {
	if c.limit == 0 {
		return false
	}
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.order.moveToFront(n)
		return true
	}

	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.order.pushFront(n)

	for c.order.len > c.limit {
		oldest := c.order.tail
		c.order.unlink(oldest)
		delete(c.entries, oldest.key)
		c.evictions++
	}
	return true
}

// Drain removes every entry, oldest first, passing each to fn.
// fn may be nil.
func (c *LRU[K, V]) Drain(fn func(K, V)) {
	for c.order.tail != nil {
		n := c.order.tail
		c.order.unlink(n)
		delete(c.entries, n.key)
		if fn != nil {
			fn(n.key, n.value)
		}
	}
}

// Len returns the number of stored entries.
func (c *LRU[K, V]) Len() int {
	return c.order.len
}

// Limit returns the maximum number of entries.
func (c *LRU[K, V]) Limit() int {
	return c.limit
}

// Stats returns the cache counters.
func (c *LRU[K, V]) Stats() Stats {
	s := Stats{
		Len:       c.order.len,
		Limit:     c.limit,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Limit is the maximum number of entries.
	Limit int
	// Hits and Misses count Get lookups.
	Hits, Misses uint64
	// HitRate is Hits over all lookups, 0.0 to 1.0.
	HitRate float64
	// Evictions is the number of entries dropped by Add.
	Evictions uint64
}
