// Package cache implements the time-boxed response cache. Normalized JSON
// payloads are stored per content type; the backing store is sqlite when the
// filesystem cooperates and a silent in-memory fallback when it does not.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/codejedi-ai/portfolio-api/app/database"
)

// Store is the subset of database.CacheRepository the cache needs.
type Store interface {
	Get(key string) (*database.CacheEntry, error)
	Set(key string, payload []byte, fetchedAt time.Time) error
	Delete(key string) error
	GetEntryCount() (int, error)
}

type Fetcher func(ctx context.Context) ([]byte, error)

type Cache struct {
	store    Store
	disabled bool
	now      func() time.Time
}

// New builds a cache over the given store. A nil store degrades to an
// in-memory map rather than failing.
func New(store Store, disabled bool) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Cache{
		store:    store,
		disabled: disabled,
		now:      time.Now,
	}
}

// GetOrFetch returns the cached payload for key when it is younger than ttl;
// otherwise it invokes fetcher, stores the result, and returns it. When the
// fetch fails and a stale entry exists, the stale payload is served instead
// of the error (availability over freshness).
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetcher Fetcher) ([]byte, error) {
	if c.disabled {
		return fetcher(ctx)
	}

	entry, err := c.store.Get(key)
	if err != nil {
		slog.Warn("Cache read failed", "key", key, "error", err)
		entry = nil
	}

	now := c.now()
	if entry != nil && now.Sub(entry.FetchedAt) < ttl {
		return entry.Payload, nil
	}

	payload, fetchErr := fetcher(ctx)
	if fetchErr != nil {
		if entry != nil {
			slog.Warn("Fetch failed, serving stale cache entry", "key", key, "age", now.Sub(entry.FetchedAt).String(), "error", fetchErr)
			return entry.Payload, nil
		}
		return nil, fetchErr
	}

	if err := c.store.Set(key, payload, now); err != nil {
		// A failed write only costs a refetch next time.
		slog.Warn("Cache write failed", "key", key, "error", err)
	}

	return payload, nil
}

// Refresh fetches unconditionally and stores the result. Used by the
// background refresher to keep entries warm ahead of TTL expiry.
func (c *Cache) Refresh(ctx context.Context, key string, fetcher Fetcher) error {
	if c.disabled {
		return nil
	}

	payload, err := fetcher(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh %s: %w", key, err)
	}

	if err := c.store.Set(key, payload, c.now()); err != nil {
		return fmt.Errorf("failed to store refreshed %s: %w", key, err)
	}

	return nil
}

// Invalidate drops one entry.
func (c *Cache) Invalidate(key string) error {
	if err := c.store.Delete(key); err != nil {
		return fmt.Errorf("failed to invalidate cache entry: %w", err)
	}
	return nil
}

// EntryCount reports how many payloads are stored.
func (c *Cache) EntryCount() int {
	count, err := c.store.GetEntryCount()
	if err != nil {
		return 0
	}
	return count
}
