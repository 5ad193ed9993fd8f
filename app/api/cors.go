package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsMethods = "GET, POST, PUT, DELETE, OPTIONS, PATCH, HEAD"
	corsHeaders = "Origin, Content-Type, Accept, Authorization, X-Requested-With"
)

// CORSPolicy resolves which origin value a response may carry. With AllowAll
// (or an empty allow-list in development) every origin gets "*"; otherwise
// only listed origins are echoed back, credential-scoped.
type CORSPolicy struct {
	AllowedOrigins []string
	AllowAll       bool
}

func NewCORSPolicy(allowedOrigins []string, allowAll bool) *CORSPolicy {
	return &CORSPolicy{
		AllowedOrigins: allowedOrigins,
		AllowAll:       allowAll,
	}
}

// Resolve returns the Access-Control-Allow-Origin value for a request origin,
// or empty when the origin is not allowed.
func (p *CORSPolicy) Resolve(origin string) string {
	if p.AllowAll || len(p.AllowedOrigins) == 0 {
		return "*"
	}
	for _, allowed := range p.AllowedOrigins {
		if allowed == origin {
			return origin
		}
	}
	return ""
}

func (p *CORSPolicy) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if resolved := p.Resolve(origin); resolved != "" {
			c.Header("Access-Control-Allow-Origin", resolved)
			c.Header("Access-Control-Allow-Methods", corsMethods)
			c.Header("Access-Control-Allow-Headers", corsHeaders)
			if resolved != "*" {
				// Credential-scoped responses vary by requesting origin.
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Vary", "Origin")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
