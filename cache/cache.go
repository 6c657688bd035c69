// Package cache provides the in-memory bitmap cache used by the
// emojitext renderer.
//
// The cache maps emoji keys to encoded bitmap bytes. It is sharded to
// reduce lock contention when many emoji resolve concurrently, and it
// never evicts: entries persist until ReleaseAll. The cache owns the
// stored byte slices; callers receive read-only views and must not
// mutate them.
package cache

import (
	"hash/fnv"
	"sync"
)

// shardCount is the number of shards. Must be a power of 2 so shard
// selection is a bitwise AND.
const shardCount = 16

// shardMask selects a shard from a hash.
const shardMask = shardCount - 1

// Hasher computes a hash for a key, used for shard selection.
type Hasher[K any] func(K) uint64

// StringHasher computes the FNV-1a hash of a string key.
func StringHasher(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s)) // fnv.Write never returns an error
	return h.Sum64()
}

// Uint64Hasher returns the key itself as the hash (identity hash).
// Custom emoji IDs are snowflakes and already well distributed.
func Uint64Hasher(u uint64) uint64 {
	return u
}

// Cache is a thread-safe sharded map from emoji keys to encoded
// bitmap bytes.
//
// Cache must not be copied after creation.
type Cache[K comparable] struct {
	shards [shardCount]shard[K]
	hasher Hasher[K]
}

// shard is a single shard with its own lock.
type shard[K comparable] struct {
	mu      sync.RWMutex
	entries map[K][]byte
}

// New creates an empty cache. The hasher is used for shard selection;
// use StringHasher for Unicode emoji keys and Uint64Hasher for custom
// emoji IDs.
func New[K comparable](hasher Hasher[K]) *Cache[K] {
	c := &Cache[K]{hasher: hasher}
	for i := range c.shards {
		c.shards[i].entries = make(map[K][]byte)
	}
	return c
}

// getShard returns the shard for a key.
func (c *Cache[K]) getShard(key K) *shard[K] {
	return &c.shards[c.hasher(key)&shardMask]
}

// Get returns the cached bytes for a key.
// The returned slice is a read-only view owned by the cache.
func (c *Cache[K]) Get(key K) ([]byte, bool) {
	s := c.getShard(key)
	s.mu.RLock()
	data, ok := s.entries[key]
	s.mu.RUnlock()
	return data, ok
}

// Put stores bytes under a key, replacing any previous entry.
// Ownership of data transfers to the cache.
func (c *Cache[K]) Put(key K, data []byte) {
	s := c.getShard(key)
	s.mu.Lock()
	s.entries[key] = data
	s.mu.Unlock()
}

// Len returns the total number of entries across all shards.
func (c *Cache[K]) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}

// ReleaseAll drops every entry. All byte slices previously returned
// by Get are invalid after ReleaseAll from the cache's point of view:
// the cache no longer guarantees their contents.
func (c *Cache[K]) ReleaseAll() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[K][]byte)
		s.mu.Unlock()
	}
}
