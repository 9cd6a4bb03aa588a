// Package cache holds the in-process render cache for content pages.
// Pages are rendered once from content-store data and served from here
// until the revalidation webhook invalidates their paths.
package cache

import "sync"

type RenderCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewRenderCache() *RenderCache {
	return &RenderCache{
		entries: make(map[string][]byte),
	}
}

// Get returns the cached render for a path, if any.
func (c *RenderCache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.entries[path]
	return payload, ok
}

// Set stores the rendered payload for a path.
func (c *RenderCache) Set(path string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = payload
}

// Invalidate drops the cached renders for the given paths. Paths with no
// cached render are ignored.
func (c *RenderCache) Invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, path := range paths {
		delete(c.entries, path)
	}
}
