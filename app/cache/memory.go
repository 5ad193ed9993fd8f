package cache

import (
	"sync"
	"time"

	"github.com/codejedi-ai/portfolio-api/app/database"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore backs the cache when persistent storage is unavailable
// (read-only or ephemeral filesystems). Contents do not survive restarts,
// which is cache-miss-safe.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]database.CacheEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]database.CacheEntry),
	}
}

func (s *MemoryStore) Get(key string) (*database.CacheEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}

	payload := make([]byte, len(entry.Payload))
	copy(payload, entry.Payload)
	entry.Payload = payload

	return &entry, nil
}

func (s *MemoryStore) Set(key string, payload []byte, fetchedAt time.Time) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = database.CacheEntry{Key: key, Payload: stored, FetchedAt: fetchedAt}

	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) GetEntryCount() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
