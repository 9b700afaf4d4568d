package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/CyberTud/dracula-wtf/internal/pkg/ratelimit"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientKey identifies the caller for rate limiting: first X-Forwarded-For
// hop, then X-Real-IP, then the socket address.
func ClientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimit rejects callers that exceed the limiter's window budget with 429.
// Limiter failures are logged and the request is let through.
func RateLimit(limiter ratelimit.Allower, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))
	return func(c *gin.Context) {
		key := ClientKey(c)

		ok, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn("rate limiter unavailable", zap.String("client", key), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			log.Info("rate limited", zap.String("client", key), zap.String("path", c.Request.URL.Path))
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"ok":      0,
				"code":    http.StatusTooManyRequests,
				"message": "Too many requests. The night is long, try again in a minute.",
			})
			return
		}

		c.Next()
	}
}
