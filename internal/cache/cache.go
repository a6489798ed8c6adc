// Package cache implements the bounded LRU result cache wrapped around the
// conversion pipeline.
//
// The cache is the engine's only shared mutable state. Eviction is purely a
// performance optimization: a hit must be behaviorally indistinguishable from
// a fresh computation, so entries are evicted only by capacity pressure,
// never by correctness concerns.
package cache

import (
	"container/list"
	"sync"

	"github.com/roach88/deroman/internal/lattice"
)

// Key identifies one memoized conversion result. Text must already be
// NFC-normalized so that equivalent inputs share an entry.
type Key struct {
	Text    string
	Script  string
	Context string
	Format  lattice.Format
}

type entry struct {
	key   Key
	value string
}

// Cache is a bounded least-recently-used result cache. Safe for concurrent
// use: a mutex serializes insert-and-evict operations against each other.
//
// A capacity of 0 disables caching entirely; GetOrCompute then always calls
// the compute function.
type Cache struct {
	capacity int

	mu    sync.Mutex
	order *list.List // front = most recently used
	items map[Key]*list.Element
}

// New returns a Cache bounded to capacity entries. Negative capacities are
// treated as 0 (disabled).
func New(capacity int) *Cache {
	if capacity < 0 {
		capacity = 0
	}
	return &Cache{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[Key]*list.Element),
	}
}

// GetOrCompute returns the cached result for key, computing and inserting it
// on a miss.
//
// compute runs outside the lock: it is a pure function of the key, so a
// concurrent duplicate computation is wasted work, never an inconsistency.
// Whichever result lands first stays; both are identical by determinism.
func (c *Cache) GetOrCompute(key Key, compute func() string) string {
	if c.capacity == 0 {
		return compute()
	}

	if value, ok := c.get(key); ok {
		return value
	}

	value := compute()
	c.insert(key, value)
	return value
}

// Len returns the current number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Cache) get(key Key) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(*entry).value, true
}

func (c *Cache) insert(key Key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		// Lost a race with a concurrent computation of the same key; the
		// results are identical, keep the existing entry.
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&entry{key: key, value: value})
	if len(c.items) > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}
}
