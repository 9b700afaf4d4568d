package share

import (
	"context"
	"testing"
	"time"

	pkgredis "github.com/CyberTud/dracula-wtf/internal/pkg/redis"
	"github.com/CyberTud/dracula-wtf/internal/rubric"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCache(pkgredis.New(rdb), ttl), mr
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Hour)

	got, ok, err := c.Get(context.Background(), "missing1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, Entry{}, got)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestRedisCache(t, time.Hour)

	res := rubric.Analyze("We leverage synergy to disrupt the market. Don't miss out, act now!", rubric.ModeStartup)
	want := NewEntry("abcd1234", res, "Bah! Such thirst.", time.UnixMilli(1700000000123))
	require.NoError(t, c.Put(ctx, want))

	got, ok, err := c.Get(ctx, "abcd1234")
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entry mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, time.Hour, mr.TTL("dracula:result:abcd1234"))
	mr.FastForward(time.Hour)
	_, ok, err = c.Get(ctx, "abcd1234")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Overwrite(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestRedisCache(t, time.Hour)

	require.NoError(t, c.Put(ctx, Entry{ID: "aaaaaaaa", Roast: "first", Evidence: []string{"x"}}))
	require.NoError(t, c.Put(ctx, Entry{ID: "aaaaaaaa", Roast: "second"}))

	got, ok, err := c.Get(ctx, "aaaaaaaa")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", got.Roast)
	assert.Empty(t, got.Evidence, "overwrite must not merge")
}

func TestRedisCache_CorruptPayload(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Hour)
	require.NoError(t, mr.Set("dracula:result:bbbbbbbb", "{not json"))

	_, ok, err := c.Get(context.Background(), "bbbbbbbb")
	assert.Error(t, err)
	assert.False(t, ok)
}
