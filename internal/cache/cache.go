// Package cache provides a bounded in-process cache with LRU eviction and
// optional TTL expiration. Containers are process-local: there is no
// cross-instance coherence, and staleness across instances is acceptable.
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/glotta/translate-service/internal/metrics"
)

// Metrics provides cache performance counters.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// entry is a node of the intrusive LRU list.
type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time // zero means no expiry
	prev      *entry[V]
	next      *entry[V]
}

// LRU is a thread-safe bounded cache with least-recently-used eviction and
// lazy TTL expiration. Get and Set are O(1).
type LRU[V any] struct {
	mu        sync.Mutex
	name      string
	capacity  int
	ttl       time.Duration // zero disables expiration
	items     map[string]*entry[V]
	head      *entry[V]
	tail      *entry[V]
	hits      int64
	misses    int64
	evictions int64
}

// New creates an LRU cache with the given capacity and no TTL.
// name labels the cache in metrics.
func New[V any](name string, capacity int) *LRU[V] {
	return NewWithTTL[V](name, capacity, 0)
}

// NewWithTTL creates an LRU cache whose entries expire ttl after insertion.
// Expired entries are deleted on Get and treated as absent; they are never
// returned stale.
func NewWithTTL[V any](name string, capacity int, ttl time.Duration) *LRU[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*entry[V], capacity),
	}
}

// Get retrieves a value and promotes it to most-recently-used.
func (c *LRU[V]) Get(key string) (V, bool) {
	var zero V

	c.mu.Lock()
	e, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		c.mu.Unlock()
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}

	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.removeEntry(e)
		atomic.AddInt64(&c.misses, 1)
		c.mu.Unlock()
		metrics.RecordCacheOperation(c.name, "get", "expired")
		return zero, false
	}

	c.moveToFront(e)
	atomic.AddInt64(&c.hits, 1)
	value := e.value
	c.mu.Unlock()

	metrics.RecordCacheOperation(c.name, "get", "hit")
	return value, true
}

// Set stores a value. An existing key is replaced and promoted; a new key at
// capacity evicts the least-recently-used entry first.
func (c *LRU[V]) Set(key string, value V) {
	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		c.mu.Unlock()
		metrics.RecordCacheOperation(c.name, "set", "replace")
		return
	}

	e := &entry[V]{key: key, value: value, expiresAt: expiresAt}
	c.items[key] = e
	c.addToFront(e)

	evicted := false
	if len(c.items) > c.capacity {
		c.removeEntry(c.tail)
		atomic.AddInt64(&c.evictions, 1)
		evicted = true
	}
	c.mu.Unlock()

	if evicted {
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
	}
	metrics.RecordCacheOperation(c.name, "set", "insert")
}

// Delete removes a key if present.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
	}
}

// Len returns the current number of entries, including any not yet expired.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Metrics returns current cache performance counters.
func (c *LRU[V]) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// removeEntry removes an entry from both the map and the linked list.
// Caller holds the lock.
func (c *LRU[V]) removeEntry(e *entry[V]) {
	delete(c.items, e.key)
	c.unlink(e)
}

func (c *LRU[V]) moveToFront(e *entry[V]) {
	if e == c.head {
		return
	}
	c.unlink(e)
	c.addToFront(e)
}

func (c *LRU[V]) addToFront(e *entry[V]) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *LRU[V]) unlink(e *entry[V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else if c.head == e {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else if c.tail == e {
		c.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
