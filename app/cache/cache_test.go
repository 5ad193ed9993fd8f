package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func countingFetcher(payload []byte, err error) (Fetcher, *int) {
	calls := new(int)
	return func(ctx context.Context) ([]byte, error) {
		*calls++
		return payload, err
	}, calls
}

func TestGetOrFetchCachesWithinTTL(t *testing.T) {
	c := New(NewMemoryStore(), false)
	fetcher, calls := countingFetcher([]byte(`{"posts":[]}`), nil)

	for i := 0; i < 3; i++ {
		payload, err := c.GetOrFetch(context.Background(), "blog-posts", time.Minute, fetcher)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if string(payload) != `{"posts":[]}` {
			t.Errorf("Unexpected payload: %s", payload)
		}
	}

	if *calls != 1 {
		t.Errorf("Expected a single upstream fetch, got %d", *calls)
	}
}

func TestGetOrFetchRefetchesAfterTTL(t *testing.T) {
	c := New(NewMemoryStore(), false)
	fetcher, calls := countingFetcher([]byte("v1"), nil)

	base := time.Now()
	c.now = func() time.Time { return base }

	if _, err := c.GetOrFetch(context.Background(), "projects", time.Minute, fetcher); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c.now = func() time.Time { return base.Add(2 * time.Minute) }

	if _, err := c.GetOrFetch(context.Background(), "projects", time.Minute, fetcher); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if *calls != 2 {
		t.Errorf("Expected refetch after expiry, got %d fetches", *calls)
	}
}

func TestGetOrFetchServesStaleOnError(t *testing.T) {
	c := New(NewMemoryStore(), false)

	base := time.Now()
	c.now = func() time.Time { return base }

	okFetcher, _ := countingFetcher([]byte("good"), nil)
	if _, err := c.GetOrFetch(context.Background(), "skills", time.Minute, okFetcher); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	c.now = func() time.Time { return base.Add(time.Hour) }

	badFetcher, _ := countingFetcher(nil, fmt.Errorf("upstream down"))
	payload, err := c.GetOrFetch(context.Background(), "skills", time.Minute, badFetcher)
	if err != nil {
		t.Fatalf("Stale entry should mask the fetch error, got %v", err)
	}
	if string(payload) != "good" {
		t.Errorf("Expected stale payload, got %s", payload)
	}
}

func TestGetOrFetchPropagatesErrorWithoutEntry(t *testing.T) {
	c := New(NewMemoryStore(), false)

	badFetcher, _ := countingFetcher(nil, fmt.Errorf("upstream down"))
	if _, err := c.GetOrFetch(context.Background(), "images", time.Minute, badFetcher); err == nil {
		t.Error("Expected error when no cached entry exists")
	}
}

func TestDisabledCacheAlwaysFetches(t *testing.T) {
	c := New(NewMemoryStore(), true)
	fetcher, calls := countingFetcher([]byte("x"), nil)

	for i := 0; i < 3; i++ {
		if _, err := c.GetOrFetch(context.Background(), "k", time.Hour, fetcher); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if *calls != 3 {
		t.Errorf("Expected every call to hit the fetcher, got %d", *calls)
	}
	if c.EntryCount() != 0 {
		t.Errorf("Disabled cache should not store entries, got %d", c.EntryCount())
	}
}

func TestRefreshOverwritesEntry(t *testing.T) {
	c := New(NewMemoryStore(), false)

	v1, _ := countingFetcher([]byte("v1"), nil)
	if _, err := c.GetOrFetch(context.Background(), "k", time.Hour, v1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	v2, _ := countingFetcher([]byte("v2"), nil)
	if err := c.Refresh(context.Background(), "k", v2); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	never, calls := countingFetcher([]byte("v3"), nil)
	payload, err := c.GetOrFetch(context.Background(), "k", time.Hour, never)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(payload) != "v2" {
		t.Errorf("Expected refreshed payload, got %s", payload)
	}
	if *calls != 0 {
		t.Errorf("Refresh should have reset the TTL clock, fetcher ran %d times", *calls)
	}
}

func TestRefreshPropagatesFetchError(t *testing.T) {
	c := New(NewMemoryStore(), false)

	bad, _ := countingFetcher(nil, fmt.Errorf("boom"))
	if err := c.Refresh(context.Background(), "k", bad); err == nil {
		t.Error("Expected refresh error")
	}
}

func TestInvalidate(t *testing.T) {
	c := New(NewMemoryStore(), false)

	fetcher, calls := countingFetcher([]byte("x"), nil)
	if _, err := c.GetOrFetch(context.Background(), "k", time.Hour, fetcher); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := c.Invalidate("k"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := c.GetOrFetch(context.Background(), "k", time.Hour, fetcher); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if *calls != 2 {
		t.Errorf("Expected refetch after invalidation, got %d", *calls)
	}
}

func TestMemoryStoreCopiesPayloads(t *testing.T) {
	store := NewMemoryStore()

	payload := []byte("original")
	if err := store.Set("k", payload, time.Now()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	payload[0] = 'X'

	entry, err := store.Get("k")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(entry.Payload) != "original" {
		t.Errorf("Stored payload aliased caller slice: %s", entry.Payload)
	}

	entry.Payload[0] = 'Y'
	again, _ := store.Get("k")
	if string(again.Payload) != "original" {
		t.Errorf("Returned payload aliased stored slice: %s", again.Payload)
	}
}

func TestMemoryStoreMissReturnsNil(t *testing.T) {
	store := NewMemoryStore()

	entry, err := store.Get("absent")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if entry != nil {
		t.Errorf("Expected nil entry on miss, got %+v", entry)
	}
}
