package database

import (
	"database/sql"
	"fmt"
	"time"
)

var _ CacheRepository = (*SQLCacheRepository)(nil)

// SQLCacheRepository stores response payloads in sqlite. Writes are
// last-writer-wins: every writer computes the same value from the same
// source, so no transactional coordination is needed.
type SQLCacheRepository struct {
	db *DB
}

func NewCacheRepository(db *DB) *SQLCacheRepository {
	return &SQLCacheRepository{db: db}
}

func (r *SQLCacheRepository) Get(key string) (*CacheEntry, error) {
	entry := CacheEntry{Key: key}

	err := r.db.QueryRow(`
		SELECT payload, fetched_at FROM cache_entries WHERE key = ?
	`, key).Scan(&entry.Payload, &entry.FetchedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	return &entry, nil
}

func (r *SQLCacheRepository) Set(key string, payload []byte, fetchedAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO cache_entries (key, payload, fetched_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, key, payload, fetchedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to set cache entry: %w", err)
	}

	return nil
}

func (r *SQLCacheRepository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM cache_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete cache entry: %w", err)
	}
	return nil
}

func (r *SQLCacheRepository) Purge(olderThan time.Time) (int, error) {
	result, err := r.db.Exec(`DELETE FROM cache_entries WHERE fetched_at < ?`, olderThan.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache entries: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged entries: %w", err)
	}

	return int(affected), nil
}

func (r *SQLCacheRepository) GetEntryCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM cache_entries`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return count, nil
}
