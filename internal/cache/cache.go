package cache

import (
	"container/list"
	"sync"
	"time"

	"barrel/internal/parser"
	"barrel/internal/shared/observability"
)

// Entry is one cached parsed module together with the on-disk modification
// time observed when it was parsed. Staleness checks compare Entry.MTime
// against a fresh stat; the cache itself never touches the filesystem.
type Entry struct {
	Module   *parser.Module
	MTime    time.Time
	CachedAt time.Time
}

// Stats is a point-in-time snapshot of cache behaviour. HitRate is 0 when
// the cache has never been read.
type Stats struct {
	Size    int
	MaxSize int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

// FileCache is a capacity-bounded least-recently-used cache of parsed
// modules keyed by absolute file path. Both read hits and writes count as
// "recently used"; a read miss records a miss without disturbing the order.
// The mutex makes it safe to share one resolver between a query path and an
// invalidation watcher.
type FileCache struct {
	mu      sync.Mutex
	maxSize int
	items   map[string]*list.Element
	order   *list.List // front = most-recently used
	hits    uint64
	misses  uint64
}

type lruEntry struct {
	key   string
	entry *Entry
}

// New creates a cache with the given capacity. Values <= 0 are normalised
// to 1.
func New(maxSize int) *FileCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	return &FileCache{
		maxSize: maxSize,
		items:   make(map[string]*list.Element, maxSize),
		order:   list.New(),
	}
}

// Get returns the entry for path and true on a hit, moving it to the front.
// A miss increments the miss counter and leaves the order untouched.
func (c *FileCache) Get(path string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[path]
	if !ok {
		c.misses++
		observability.CacheMisses.Inc()
		return nil, false
	}
	c.hits++
	observability.CacheHits.Inc()
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).entry, true
}

// Set inserts or refreshes an entry, evicting the least-recently-used entry
// when the cache is at capacity.
func (c *FileCache) Set(path string, entry *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[path]; ok {
		c.order.MoveToFront(el)
		el.Value.(*lruEntry).entry = entry
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldestLocked()
	}

	c.items[path] = c.order.PushFront(&lruEntry{key: path, entry: entry})
	observability.CacheSize.Set(float64(c.order.Len()))
}

// Invalidate removes one entry without touching the counters. No-op when
// the path is not cached.
func (c *FileCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[path]
	if !ok {
		return
	}
	c.order.Remove(el)
	delete(c.items, path)
	observability.CacheSize.Set(float64(c.order.Len()))
}

// Clear empties the cache and resets the hit/miss counters.
func (c *FileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.items = make(map[string]*list.Element, c.maxSize)
	c.hits = 0
	c.misses = 0
	observability.CacheSize.Set(0)
}

// GetStats returns a snapshot of the counters.
func (c *FileCache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Size:    c.order.Len(),
		MaxSize: c.maxSize,
		Hits:    c.hits,
		Misses:  c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// evictOldestLocked removes the back (least-recently-used) element. Caller
// must hold c.mu.
func (c *FileCache) evictOldestLocked() {
	back := c.order.Back()
	if back == nil {
		return
	}
	c.order.Remove(back)
	delete(c.items, back.Value.(*lruEntry).key)
}
