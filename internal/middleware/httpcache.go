package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultHTTPCacheTTL       = 5 * time.Minute
	staleWhileRevalidateValue = 60
)

// PublicCache marks responses as cacheable by browsers and CDNs. Handlers
// that fail should call NoStore before writing.
func PublicCache(ttl time.Duration) gin.HandlerFunc {
	if ttl <= 0 {
		ttl = defaultHTTPCacheTTL
	}
	seconds := strconv.Itoa(int(ttl / time.Second))
	cacheValue := "public, max-age=" + seconds + ", s-maxage=" + seconds +
		", stale-while-revalidate=" + strconv.Itoa(staleWhileRevalidateValue)
	return func(c *gin.Context) {
		c.Header("Cache-Control", cacheValue)
		c.Next()
	}
}

// NoStore disables caching for the current response.
func NoStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}
