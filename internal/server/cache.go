package server

import (
	"sync"
	"time"

	"github.com/glazeapp/glaze/internal/model"
	"github.com/glazeapp/glaze/internal/platform"
)

// cacheKey identifies a unique window listing scope.
type cacheKey struct {
	App   string
	Title string
	PID   int
}

// cacheEntry holds a cached window list with its timestamp.
type cacheEntry struct {
	windows   []model.Window
	timestamp time.Time
}

// windowCache provides a TTL-based cache for window listings so agents
// issuing many tool calls in a burst don't re-enumerate on every one.
type windowCache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
}

// newWindowCache creates a new cache. A ttl of 0 disables caching.
func newWindowCache(ttl time.Duration) *windowCache {
	return &windowCache{
		entries: make(map[cacheKey]cacheEntry),
		ttl:     ttl,
	}
}

// listWindows returns cached windows if within TTL, otherwise lists fresh.
func (c *windowCache) listWindows(lister platform.WindowLister, opts platform.ListOptions) ([]model.Window, error) {
	if c.ttl == 0 {
		return lister.ListWindows(opts)
	}

	key := cacheKey{App: opts.App, Title: opts.Title, PID: opts.PID}

	c.mu.Lock()
	if entry, ok := c.entries[key]; ok && time.Since(entry.timestamp) < c.ttl {
		windows := entry.windows
		c.mu.Unlock()
		return windows, nil
	}
	c.mu.Unlock()

	windows, err := lister.ListWindows(opts)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{windows: windows, timestamp: time.Now()}
	c.mu.Unlock()
	return windows, nil
}

// invalidateAll drops every cached listing. Called after any write action,
// since opacity changes are visible in the listed layered state.
func (c *windowCache) invalidateAll() {
	c.mu.Lock()
	c.entries = make(map[cacheKey]cacheEntry)
	c.mu.Unlock()
}
