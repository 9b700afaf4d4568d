package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	pkgredis "github.com/CyberTud/dracula-wtf/internal/pkg/redis"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLimiter(t *testing.T, window time.Duration, limit int) (*RedisLimiter, *miniredis.Miniredis, *clock) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	c := &clock{now: time.UnixMilli(1700000000000)}
	l := NewRedis(pkgredis.New(rdb), window, limit)
	l.now = c.Now
	return l, mr, c
}

func TestRedisLimiter_DeniesAfterLimit(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newTestRedisLimiter(t, time.Minute, 10)

	for i := 0; i < 10; i++ {
		ok, err := l.Allow(ctx, "203.0.113.9")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}
	ok, err := l.Allow(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.False(t, ok, "11th request in the window")

	ok, err = l.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, ok, "other clients keep their own budget")
}

func TestRedisLimiter_WindowRollover(t *testing.T) {
	ctx := context.Background()
	l, _, c := newTestRedisLimiter(t, time.Minute, 2)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "ip")
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := l.Allow(ctx, "ip")
	require.NoError(t, err)
	require.False(t, ok)

	c.Advance(time.Minute)
	ok, err = l.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, ok, "a new window starts a new count")
}

func TestRedisLimiter_KeyExpires(t *testing.T) {
	ctx := context.Background()
	l, mr, c := newTestRedisLimiter(t, time.Minute, 10)

	_, err := l.Allow(ctx, "ip")
	require.NoError(t, err)

	key := fmt.Sprintf("dracula:rate_limit:ip:%d", c.Now().UnixMilli()/time.Minute.Milliseconds())
	require.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute+time.Second, mr.TTL(key))

	mr.FastForward(time.Minute + time.Second)
	assert.False(t, mr.Exists(key))
}

func TestRedisLimiter_ServerDown(t *testing.T) {
	l, mr, _ := newTestRedisLimiter(t, time.Minute, 10)
	mr.Close()

	ok, err := l.Allow(context.Background(), "ip")
	assert.Error(t, err)
	assert.False(t, ok)
}
