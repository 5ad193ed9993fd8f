package database

import "time"

type CacheRepository interface {
	Get(key string) (*CacheEntry, error)
	Set(key string, payload []byte, fetchedAt time.Time) error
	Delete(key string) error
	Purge(olderThan time.Time) (int, error)
	GetEntryCount() (int, error)
}
