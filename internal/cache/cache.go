// Package cache implements the in-memory TTL cache for graded template
// resumes. The key space is the finite set of bundled template paths, so
// there is no eviction policy beyond lazy expiration on read.
package cache

import (
	"sync"
	"time"

	"github.com/silver-dev/resume-checker/internal/domain"
)

type entry struct {
	result   domain.GradeResult
	cachedAt time.Time
}

// ResultCache maps template keys to sanitized grade results for a fixed
// window. The clock is injected so expiration is deterministic in tests.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New constructs a ResultCache with the given TTL. A nil clock falls back
// to time.Now.
func New(ttl time.Duration, now func() time.Time) *ResultCache {
	if now == nil {
		now = time.Now
	}
	return &ResultCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached result for key, or false when absent or expired.
// Expired entries are removed on read; there is no background sweep.
func (c *ResultCache) Get(key string) (domain.GradeResult, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return domain.GradeResult{}, false
	}
	if c.now().Sub(e.cachedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Put may have refreshed it.
		if cur, still := c.entries[key]; still && c.now().Sub(cur.cachedAt) > c.ttl {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return domain.GradeResult{}, false
	}
	return e.result.Clone(), true
}

// Put stores result under key. Concurrent first-writes for the same key are
// allowed; last write wins.
func (c *ResultCache) Put(key string, result domain.GradeResult) {
	c.mu.Lock()
	c.entries[key] = entry{result: result.Clone(), cachedAt: c.now()}
	c.mu.Unlock()
}

// Len returns the number of stored entries, expired or not.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
