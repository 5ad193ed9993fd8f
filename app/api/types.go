package api

import (
	"context"
	"time"

	"github.com/codejedi-ai/portfolio-api/app/cache"
	"github.com/codejedi-ai/portfolio-api/app/content"
	"github.com/codejedi-ai/portfolio-api/app/fallback"
	"github.com/codejedi-ai/portfolio-api/app/notion"
)

// PageCreator is the write-path slice of the content-source client.
type PageCreator interface {
	CreatePage(ctx context.Context, databaseID string, properties map[string]notion.Property) (*notion.Page, error)
}

type Handler struct {
	provider           content.Provider
	fetchers           map[string]content.PayloadFetcher
	responseCache      *cache.Cache
	fallbackStore      *fallback.Store
	pageCreator        PageCreator
	contactsDatabaseID string
	defaultTTL         time.Duration
	startedAt          time.Time
}
