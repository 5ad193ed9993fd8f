package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// NewServer creates the HTTP server with all routes configured.
func NewServer(handler *Handler, corsPolicy *CORSPolicy) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())
	r.Use(corsPolicy.Middleware())

	setupRoutes(r, handler)

	return r
}

func setupRoutes(r *gin.Engine, handler *Handler) {
	api := r.Group("/api")
	{
		api.GET("/work-experience", handler.GetWorkExperience)
		api.GET("/blog", handler.GetBlogPosts)
		api.GET("/blog/:slug", handler.GetBlogPostBySlug)
		api.GET("/projects", handler.GetProjects)
		api.GET("/certificates", handler.GetCertificates)
		api.GET("/hugging-face-certificates", handler.GetHFCertificates)
		api.GET("/images", handler.GetImages)
		api.GET("/about-images", handler.GetAboutImages)
		api.GET("/skills", handler.GetSkills)
		api.GET("/contacts", handler.GetContacts)
		api.GET("/notion-database/:name", handler.GetDatabase)
		api.POST("/contact", handler.SubmitContact)
	}

	// Health and status endpoints
	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "Portfolio API",
			"description": "Portfolio content proxy with normalization, caching, and static fallbacks",
			"endpoints": map[string]string{
				"work-experience": "/api/work-experience",
				"blog":            "/api/blog",
				"blog-post":       "/api/blog/<slug>",
				"projects":        "/api/projects",
				"certificates":    "/api/certificates",
				"images":          "/api/images",
				"skills":          "/api/skills",
				"contacts":        "/api/contacts",
				"contact":         "/api/contact (POST)",
				"health":          "/health",
				"stats":           "/stats",
			},
			"documentation": "https://github.com/codejedi-ai/portfolio-api",
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
