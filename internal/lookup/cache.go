package lookup

import (
	"sync"
	"time"
)

// Kind names one class of external lookup. Kinds carry independent TTLs.
type Kind string

const (
	KindHistory Kind = "history"
	KindInfo    Kind = "info"
	KindNews    Kind = "news"
)

type entry struct {
	value     any
	fetchedAt time.Time
}

// Cache is a process-wide time-boxed store keyed by (kind, key). Entries
// survive ticker-list changes and are treated as absent past their TTL.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// NewCache creates an empty cache. now may be nil, defaulting to time.Now.
func NewCache(now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[string]entry),
		now:     now,
	}
}

func cacheKey(kind Kind, key string) string {
	return string(kind) + "|" + key
}

// Get returns the stored value for (kind, key) when it is younger than ttl.
func (c *Cache) Get(kind Kind, key string, ttl time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[cacheKey(kind, key)]
	if !ok || c.now().Sub(e.fetchedAt) > ttl {
		return nil, false
	}
	return e.value, true
}

// Put stores value for (kind, key), stamping it with the current time.
func (c *Cache) Put(kind Kind, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(kind, key)] = entry{value: value, fetchedAt: c.now()}
}
