package manifest

import (
	"context"
	"sync"
	"time"

	"modlist-builder/core/modlist"

	"golang.org/x/sync/singleflight"
)

// Loader loads the installed items for a family.
type Loader interface {
	Load(ctx context.Context, family modlist.Family) (map[uint64]modlist.InstalledItem, error)
}

// cacheEntry holds a parsed manifest.
type cacheEntry struct {
	items map[uint64]modlist.InstalledItem
	built time.Time
}

// Cache keeps parsed manifests per family for a TTL. Concurrent misses for
// the same family share a single load.
type Cache struct {
	loader Loader
	ttl    time.Duration
	now    func() time.Time

	mu      sync.RWMutex
	entries map[modlist.Family]cacheEntry
	sf      singleflight.Group
}

// NewCache wraps loader with a TTL cache. A non-positive ttl disables
// caching: every Load goes to the loader.
func NewCache(loader Loader, ttl time.Duration) *Cache {
	return &Cache{
		loader:  loader,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[modlist.Family]cacheEntry),
	}
}

func (c *Cache) expired(e cacheEntry) bool {
	if c.ttl <= 0 {
		return true
	}
	return c.now().Sub(e.built) > c.ttl
}

// Load returns the cached manifest for family, loading it when missing or
// expired. Callers must not modify the returned map.
func (c *Cache) Load(ctx context.Context, family modlist.Family) (map[uint64]modlist.InstalledItem, error) {
	if c.ttl <= 0 {
		return c.loader.Load(ctx, family)
	}

	// Fast path: check if cache exists and is fresh
	c.mu.RLock()
	entry, exists := c.entries[family]
	c.mu.RUnlock()

	if exists && !c.expired(entry) {
		return entry.items, nil
	}

	result, err, _ := c.sf.Do(string(family), func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		entry, exists := c.entries[family]
		c.mu.RUnlock()

		if exists && !c.expired(entry) {
			return entry.items, nil
		}

		items, err := c.loader.Load(ctx, family)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[family] = cacheEntry{items: items, built: c.now()}
		c.mu.Unlock()

		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(map[uint64]modlist.InstalledItem), nil
}

// Invalidate drops the cached manifest for family.
func (c *Cache) Invalidate(family modlist.Family) {
	c.mu.Lock()
	delete(c.entries, family)
	c.mu.Unlock()
}
