package statuspage

import (
	"sync/atomic"
	"time"
)

// Entry is the single cached payload and the moment it goes stale.
type Entry struct {
	Payload   NormalizedStatus
	ExpiresAt time.Time
}

// Fresh reports whether the entry can still be served at now.
func (e Entry) Fresh(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// Cache holds at most one Entry.
type Cache interface {
	Get() (Entry, bool)
	Set(Entry)
}

// MemoryCache is a process-wide Cache whose slot is replaced atomically.
type MemoryCache struct {
	slot atomic.Pointer[Entry]
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{}
}

func (c *MemoryCache) Get() (Entry, bool) {
	e := c.slot.Load()
	if e == nil {
		return Entry{}, false
	}
	return *e, true
}

func (c *MemoryCache) Set(e Entry) {
	c.slot.Store(&e)
}
