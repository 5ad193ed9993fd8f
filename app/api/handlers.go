package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codejedi-ai/portfolio-api/app/cache"
	"github.com/codejedi-ai/portfolio-api/app/cfg"
	"github.com/codejedi-ai/portfolio-api/app/content"
	"github.com/codejedi-ai/portfolio-api/app/fallback"
)

func NewHandler(provider content.Provider, responseCache *cache.Cache,
	fallbackStore *fallback.Store, pageCreator PageCreator) *Handler {
	appCfg := cfg.Get()

	return &Handler{
		provider:           provider,
		fetchers:           content.PayloadFetchers(provider),
		responseCache:      responseCache,
		fallbackStore:      fallbackStore,
		pageCreator:        pageCreator,
		contactsDatabaseID: appCfg.ContactsDatabaseID,
		defaultTTL:         time.Duration(appCfg.CacheTTL) * time.Second,
		startedAt:          time.Now(),
	}
}

// serveCollection implements the shared read-path contract: cached payload
// when fresh, otherwise fetch + normalize + cache. Any unrecoverable source
// error degrades to the static fallback payload with HTTP 200, so the
// presentation layer never special-cases content unavailability.
func (h *Handler) serveCollection(c *gin.Context, key string, fallbackPayload func() interface{}) {
	fetcher := h.fetchers[key]

	payload, err := h.responseCache.GetOrFetch(c.Request.Context(), key, h.defaultTTL, cache.Fetcher(fetcher))
	if err != nil {
		slog.Warn("Content source unavailable, serving fallback", "key", key, "error", err)
		c.JSON(http.StatusOK, fallbackPayload())
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

func (h *Handler) GetWorkExperience(c *gin.Context) {
	h.serveCollection(c, "work-experience", func() interface{} {
		return gin.H{"workExperience": h.fallbackStore.WorkExperience()}
	})
}

func (h *Handler) GetBlogPosts(c *gin.Context) {
	h.serveCollection(c, "blog-posts", func() interface{} {
		return gin.H{"posts": h.fallbackStore.BlogPosts()}
	})
}

func (h *Handler) GetBlogPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slug parameter"})
		return
	}

	payload, err := h.responseCache.GetOrFetch(c.Request.Context(), "blog-posts-full", h.defaultTTL, cache.Fetcher(h.fetchers["blog-posts-full"]))
	if err != nil {
		slog.Warn("Content source unavailable for blog post", "slug", slug, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var posts []content.BlogPost
	if err := json.Unmarshal(payload, &posts); err != nil {
		slog.Error("Corrupt cached blog payload", "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	for i := range posts {
		if posts[i].Slug == slug {
			c.JSON(http.StatusOK, gin.H{"post": posts[i]})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
}

func (h *Handler) GetProjects(c *gin.Context) {
	h.serveCollection(c, "projects", func() interface{} {
		return gin.H{"projects": h.fallbackStore.Projects()}
	})
}

func (h *Handler) GetCertificates(c *gin.Context) {
	h.serveCollection(c, "certificates", func() interface{} {
		return gin.H{"certificates": h.fallbackStore.Certificates()}
	})
}

func (h *Handler) GetHFCertificates(c *gin.Context) {
	h.serveCollection(c, "hugging-face-certificates", func() interface{} {
		return gin.H{"certificates": h.fallbackStore.HFCertificates()}
	})
}

func (h *Handler) GetImages(c *gin.Context) {
	h.serveCollection(c, "images", func() interface{} {
		return gin.H{"images": h.fallbackStore.Images()}
	})
}

func (h *Handler) GetAboutImages(c *gin.Context) {
	h.serveCollection(c, "about-images", func() interface{} {
		return gin.H{"images": h.fallbackStore.Images()}
	})
}

func (h *Handler) GetSkills(c *gin.Context) {
	h.serveCollection(c, "skills", func() interface{} {
		return gin.H{"skills": h.fallbackStore.Skills()}
	})
}

func (h *Handler) GetContacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contacts": content.Contacts()})
}

// GetDatabase is the generic pass-through keyed by logical database name.
// Raw pages, no normalization; backs the admin debug dashboard.
func (h *Handler) GetDatabase(c *gin.Context) {
	name := c.Param("name")

	pages, err := h.provider.Database(c.Request.Context(), name)
	if err != nil {
		slog.Warn("Database proxy query failed", "name", name, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown or unavailable database", "name": name})
		return
	}

	c.JSON(http.StatusOK, gin.H{"name": name, "results": pages, "total": len(pages)})
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":       cfg.Get().Version,
		"uptime":        time.Since(h.startedAt).String(),
		"cache_entries": h.responseCache.EntryCount(),
	})
}
