package ai

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"craftapi/internal/model"
)

// ContentCache stores generated marketing packs in memory so repeated
// requests with identical inputs skip the upstream call. Entries expire
// after a TTL; a zero TTL means entries never expire.
type ContentCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	pack    *model.MarketingPack
	expires time.Time
}

// NewContentCache creates a new content cache.
func NewContentCache(ttl time.Duration) *ContentCache {
	return &ContentCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// Key derives a stable cache key from everything that influences the
// generated pack, including the image bytes.
func (c *ContentCache) Key(req ContentRequest) string {
	h := md5.New()
	h.Write([]byte(req.ArtisanName))
	h.Write([]byte{0})
	h.Write([]byte(req.CraftType))
	h.Write([]byte{0})
	h.Write([]byte(req.Description))
	h.Write([]byte{0})
	h.Write([]byte(req.Materials))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(req.Tags, ",")))
	h.Write([]byte{0})
	h.Write(req.Image)
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached pack, reporting whether a live entry was found.
func (c *ContentCache) Get(key string) (*model.MarketingPack, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		c.evictExpired(key)
		return nil, false
	}
	return e.pack, true
}

// evictExpired removes the entry only if it is still expired under the
// write lock; a concurrent Add may have refreshed it in the meantime.
func (c *ContentCache) evictExpired(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if ok && !e.expires.IsZero() && time.Now().After(e.expires) {
		delete(c.entries, key)
	}
}

// Add stores a pack under the given key.
func (c *ContentCache) Add(key string, pack *model.MarketingPack) {
	e := cacheEntry{pack: pack}
	if c.ttl > 0 {
		e.expires = time.Now().Add(c.ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}
