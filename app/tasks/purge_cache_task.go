package tasks

import (
	"context"
	"log/slog"
	"time"
)

// CachePurger is satisfied by database.SQLCacheRepository.
type CachePurger interface {
	Purge(olderThan time.Time) (int, error)
}

// PurgeCacheTask drops entries so stale that no TTL would ever serve them,
// keeping the cache database from growing across content-model changes.
type PurgeCacheTask struct {
	Task
	purger CachePurger
	maxAge time.Duration
}

func NewPurgeCacheTask(purger CachePurger, maxAge time.Duration) *PurgeCacheTask {
	return &PurgeCacheTask{
		Task:   NewTask(TaskTypePurgeCache, "all"),
		purger: purger,
		maxAge: maxAge,
	}
}

func (t *PurgeCacheTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	purged, err := t.purger.Purge(time.Now().Add(-t.maxAge))
	if err != nil {
		return err
	}

	if purged > 0 {
		slog.Info("Task completed",
			"type", "PurgeCache",
			"purged", purged,
			"duration", t.GetDuration())
	}

	return nil
}
