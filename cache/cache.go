// Package cache provides a thread-safe sharded map for idempotent
// computation results, such as the vertex correspondence every frame of
// a morph segment shares.
package cache

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// ShardCount is the number of shards. Must be a power of 2 for fast
// modulo via bitwise AND.
const ShardCount = 16

const shardMask = ShardCount - 1

// Hasher computes the hash used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// IntHasher computes the FNV-1a hash of an int key.
func IntHasher(i int) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for b := range buf {
		buf[b] = byte(i >> (8 * b))
	}
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// Sharded is a thread-safe map split across ShardCount shards for
// reduced lock contention. Entries are never evicted: cached values are
// idempotent computation results that live as long as their owner.
type Sharded[K comparable, V any] struct {
	shards [ShardCount]*shard[K, V]
	hasher Hasher[K]

	// Statistics (atomic for zero-allocation reads).
	hits   atomic.Uint64
	misses atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewSharded creates an empty cache. The hasher selects the shard for a
// key; use StringHasher or IntHasher for common key types.
func NewSharded[K comparable, V any](hasher Hasher[K]) *Sharded[K, V] {
	c := &Sharded[K, V]{hasher: hasher}
	for i := range c.shards {
		c.shards[i] = &shard[K, V]{entries: make(map[K]V)}
	}
	return c
}

func (c *Sharded[K, V]) getShard(key K) *shard[K, V] {
	return c.shards[c.hasher(key)&shardMask]
}

// Get retrieves a cached value by key.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.getShard(key)
	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// GetOrCompute returns the cached value for key, computing and storing
// it on first use. The compute function runs outside the shard lock, so
// concurrent callers may compute the same value; the first writer wins
// and every caller observes that entry. Compute must therefore be
// idempotent.
func (c *Sharded[K, V]) GetOrCompute(key K, compute func() V) V {
	s := c.getShard(key)

	s.mu.RLock()
	v, ok := s.entries[key]
	s.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)

	v = compute()

	s.mu.Lock()
	if existing, ok := s.entries[key]; ok {
		s.mu.Unlock()
		return existing
	}
	s.entries[key] = v
	s.mu.Unlock()
	return v
}

// Len returns the total number of entries across all shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

// Stats holds cache statistics.
type Stats struct {
	Len     int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// Stats returns current cache statistics.
func (c *Sharded[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{Len: c.Len(), Hits: hits, Misses: misses, HitRate: rate}
}
