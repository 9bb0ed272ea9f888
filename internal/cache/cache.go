package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"lessoncard/domain/card"
)

// FetchFunc loads a fresh batch of records from the source.
type FetchFunc func(ctx context.Context) ([]card.Record, error)

// RecordCache is a time-bounded memoization of the most recent load.
// Entries expire after the TTL; Invalidate drops them immediately.
// Concurrent read-through fetches are collapsed into one source call.
type RecordCache struct {
	fetch FetchFunc
	ttl   time.Duration
	now   func() time.Time

	mu        sync.RWMutex
	records   []card.Record
	fetchedAt time.Time
	loaded    bool

	group singleflight.Group
}

// New creates a record cache around the given fetch function.
func New(fetch FetchFunc, ttl time.Duration) *RecordCache {
	return &RecordCache{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the cached batch while fresh, fetching through otherwise.
// A failed fetch leaves the cache empty; the error propagates to the
// caller and no partial record set is exposed.
func (c *RecordCache) Get(ctx context.Context) ([]card.Record, error) {
	c.mu.RLock()
	if c.loaded && c.now().Sub(c.fetchedAt) < c.ttl {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.group.Do("load", func() (interface{}, error) {
		records, err := c.fetch(ctx)
		if err != nil {
			log.Printf("[RecordCache] FAILED - source fetch failed: %v", err)
			return nil, err
		}

		c.mu.Lock()
		c.records = records
		c.fetchedAt = c.now()
		c.loaded = true
		c.mu.Unlock()

		log.Printf("[RecordCache] Cached %d records", len(records))
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]card.Record), nil
}

// Invalidate drops the cached batch so the next Get fetches fresh.
func (c *RecordCache) Invalidate() {
	c.mu.Lock()
	c.records = nil
	c.loaded = false
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
	log.Printf("[RecordCache] Invalidated")
}

// FetchedAt returns when the cached batch was loaded, or the zero time
// when nothing is cached.
func (c *RecordCache) FetchedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.fetchedAt
}
