package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware handles cross-origin requests from the frontend. The
// allowlist is compiled into a matcher once, at router setup.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	match := originMatcher(allowedOrigins)

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if origin != "" && match(origin) {
			header := c.Writer.Header()
			header.Set("Access-Control-Allow-Origin", origin)
			header.Set("Access-Control-Allow-Credentials", "true")
			header.Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			header.Set("Access-Control-Max-Age", "3600")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// originMatcher splits the allowlist into exact entries and prefix
// patterns. An entry ending in "*" matches any origin with that prefix,
// so "*" alone matches everything.
func originMatcher(allowedOrigins []string) func(string) bool {
	exact := make(map[string]struct{}, len(allowedOrigins))
	var prefixes []string
	for _, allowed := range allowedOrigins {
		if strings.HasSuffix(allowed, "*") {
			prefixes = append(prefixes, strings.TrimSuffix(allowed, "*"))
		} else {
			exact[allowed] = struct{}{}
		}
	}

	return func(origin string) bool {
		if _, ok := exact[origin]; ok {
			return true
		}
		for _, prefix := range prefixes {
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		}
		return false
	}
}

// LoggerMiddleware logs requests (simple version for now)
func LoggerMiddleware() gin.HandlerFunc {
	return gin.Logger()
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.Recovery()
}
