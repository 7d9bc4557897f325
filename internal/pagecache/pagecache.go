// Package pagecache caches rendered listing payloads per request path and
// revalidates them after mutations.
package pagecache

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	// DefaultExpiration bounds how stale a cached listing page may get.
	DefaultExpiration = 5 * time.Minute
	// DefaultCleanupInterval is how often expired entries are removed.
	DefaultCleanupInterval = 10 * time.Minute
)

// Cache stores listing payloads keyed by request path. Invalidate is
// fire-and-forget: mutations call it and never observe its outcome.
type Cache interface {
	Get(path string) (any, bool)
	Set(path string, payload any)
	Invalidate(pathPrefix string)
}

type pageCache struct {
	store *gocache.Cache
	log   *zap.Logger
}

// New returns an in-memory page cache.
func New(log *zap.Logger) Cache {
	return &pageCache{
		store: gocache.New(DefaultExpiration, DefaultCleanupInterval),
		log:   log.Named("pagecache"),
	}
}

func (c *pageCache) Get(path string) (any, bool) {
	return c.store.Get(path)
}

func (c *pageCache) Set(path string, payload any) {
	c.store.Set(path, payload, gocache.DefaultExpiration)
}

// Invalidate drops every cached entry whose path starts with pathPrefix,
// so the next read recomputes it from current storage state.
func (c *pageCache) Invalidate(pathPrefix string) {
	removed := 0
	for key := range c.store.Items() {
		if strings.HasPrefix(key, pathPrefix) {
			c.store.Delete(key)
			removed++
		}
	}
	if removed > 0 {
		c.log.Debug("invalidated cached pages",
			zap.String("prefix", pathPrefix),
			zap.Int("entries", removed),
		)
	}
}
