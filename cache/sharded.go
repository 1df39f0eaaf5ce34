// Package cache provides a concurrent, sharded LRU cache used to memoize
// synthesized stroke outlines.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of independently locked shards. It is a
	// power of two so shard selection is a mask.
	ShardCount = 16

	// DefaultCapacity is the per-shard capacity used for non-positive
	// requests.
	DefaultCapacity = 64
)

// Hasher maps a key to the hash used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher hashes a string key with FNV-1a.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv never fails
	return h.Sum64()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits over lookups, or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	if total := s.Hits + s.Misses; total > 0 {
		return float64(s.Hits) / float64(total)
	}
	return 0
}

// Sharded is a thread-safe LRU cache split into ShardCount shards, each
// holding at most capacity entries.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]shard[K, V]
	hash     Hasher[K]
	capacity int

	hits, misses, evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]*entry[K, V]
	order ring[K, V]
}

// New creates a cache holding up to capacity entries per shard.
func New[K comparable, V any](capacity int, hash Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{hash: hash, capacity: capacity}
	for i := range c.shards {
		c.shards[i].items = make(map[K]*entry[K, V])
		c.shards[i].order.init()
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[c.hash(key)&(ShardCount-1)]
}

// Get returns the cached value and marks it recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	e, ok := s.items[key]
	if ok {
		s.order.touch(e)
	}
	s.mu.Unlock()
	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return e.value, true
}

// Put stores a value, evicting the least recently used entries of the
// shard when it is full.
func (c *Sharded[K, V]) Put(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.items[key]; ok {
		e.value = value
		s.order.touch(e)
		return
	}
	for s.order.len() >= c.capacity {
		old := s.order.oldest()
		s.order.remove(old)
		delete(s.items, old.key)
		c.evictions.Add(1)
	}
	s.items[key] = s.order.pushFront(key, value)
}

// GetOrCompute returns the cached value for key or computes and stores it.
// compute runs without the shard lock held; concurrent misses on the same
// key may compute twice and the last result wins. Errors are returned and
// not cached.
func (c *Sharded[K, V]) GetOrCompute(key K, compute func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return v, err
	}
	c.Put(key, v)
	return v, nil
}

// Delete removes key and reports whether it was present.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[key]
	if ok {
		s.order.remove(e)
		delete(s.items, key)
	}
	return ok
}

// Clear drops every entry. Counters are kept.
func (c *Sharded[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.items = make(map[K]*entry[K, V])
		s.order.init()
		s.mu.Unlock()
	}
}

// Len returns the number of cached entries.
func (c *Sharded[K, V]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		n += len(s.items)
		s.mu.Unlock()
	}
	return n
}

// Capacity returns the per-shard capacity.
func (c *Sharded[K, V]) Capacity() int { return c.capacity }

// Stats returns a snapshot of the counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
