package tasks

import (
	"context"
	"log/slog"

	"github.com/codejedi-ai/portfolio-api/app/cache"
	"github.com/codejedi-ai/portfolio-api/app/content"
)

type RefreshContentTask struct {
	Task
	responseCache *cache.Cache
	fetcher       content.PayloadFetcher
}

func NewRefreshContentTask(contentType string, responseCache *cache.Cache, fetcher content.PayloadFetcher) *RefreshContentTask {
	return &RefreshContentTask{
		Task:          NewTask(TaskTypeRefreshContent, contentType),
		responseCache: responseCache,
		fetcher:       fetcher,
	}
}

func (t *RefreshContentTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := t.responseCache.Refresh(ctx, t.ContentType, cache.Fetcher(t.fetcher)); err != nil {
		return err
	}

	slog.Info("Task completed",
		"type", "RefreshContent",
		"content_type", t.ContentType,
		"duration", t.GetDuration())

	return nil
}
