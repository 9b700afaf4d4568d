package share

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	pkgredis "github.com/CyberTud/dracula-wtf/internal/pkg/redis"
)

const redisKeyPrefix = "dracula:result:"

// RedisCache is a Store backed by Redis, for deployments running more than
// one instance. Entries expire after ttl; Redis eviction policy bounds size.
type RedisCache struct {
	client *pkgredis.Client
	ttl    time.Duration
}

// NewRedisCache builds a Redis-backed store.
func NewRedisCache(client *pkgredis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Put stores entry under its id, overwriting any previous value.
func (c *RedisCache) Put(ctx context.Context, entry Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode result %s: %w", entry.ID, err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+entry.ID, payload, c.ttl); err != nil {
		return fmt.Errorf("store result %s: %w", entry.ID, err)
	}
	return nil
}

// Get loads the entry for id.
func (c *RedisCache) Get(ctx context.Context, id string) (Entry, bool, error) {
	raw, ok, err := c.client.Get(ctx, redisKeyPrefix+id)
	if err != nil {
		return Entry{}, false, fmt.Errorf("load result %s: %w", id, err)
	}
	if !ok {
		return Entry{}, false, nil
	}
	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return Entry{}, false, fmt.Errorf("decode result %s: %w", id, err)
	}
	return entry, true, nil
}
