package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// ReportCache stores computed KPI reports in Redis for a short TTL. All
// methods are safe to call with a nil client: lookups miss and writes are
// dropped, so the service degrades to recomputing reports when Redis is
// unavailable.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a report cache backed by the given Redis client.
// A nil client disables caching.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl < 0 {
		ttl = 0
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get loads a cached report into dest. It returns false on a miss, a Redis
// error, or an undecodable payload; corrupt entries are evicted.
func (c *ReportCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, reportKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			_ = c.client.Del(ctx, reportKey(key)).Err()
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		_ = c.client.Del(ctx, reportKey(key)).Err()
		return false
	}
	return true
}

// Set stores a report under key. Errors are ignored.
func (c *ReportCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, reportKey(key), data, c.ttl).Err()
}

// Invalidate drops cached reports for the given keys.
func (c *ReportCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = reportKey(k)
	}
	_, _ = c.client.Del(ctx, prefixed...).Result()
}

func reportKey(key string) string {
	return "report:" + key
}
