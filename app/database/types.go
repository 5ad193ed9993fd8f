package database

import "time"

// CacheEntry is one stored response payload keyed by content type.
type CacheEntry struct {
	Key       string
	Payload   []byte
	FetchedAt time.Time
}
