package ratelimit

import (
	"context"
	"fmt"
	"time"

	pkgredis "github.com/CyberTud/dracula-wtf/internal/pkg/redis"
)

// RedisLimiter shares window counters across instances. Each window is a
// separate key that expires shortly after the window closes, so no sweep is
// needed.
type RedisLimiter struct {
	client *pkgredis.Client
	window time.Duration
	limit  int
	prefix string
	now    func() time.Time
}

// NewRedis builds a Redis-backed limiter.
func NewRedis(client *pkgredis.Client, window time.Duration, limit int) *RedisLimiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &RedisLimiter{client: client, window: window, limit: limit, prefix: "dracula:rate_limit:", now: time.Now}
}

// Allow counts the request in the current window and rejects it once the
// count exceeds the limit.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().UnixMilli() / l.window.Milliseconds()
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, bucket)

	count, err := l.client.Incr(ctx, redisKey, l.window+time.Second)
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	return count <= int64(l.limit), nil
}
