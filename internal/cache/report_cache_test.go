package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sprintReport struct {
	SprintID string `json:"sprintId"`
	Done     int    `json:"done"`
}

func newTestCache(t *testing.T, ttl time.Duration) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewReportCache(client, ttl), mr
}

func TestReportCacheMissThenHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	var got sprintReport
	assert.False(t, cache.Get(ctx, "sprint:s1", &got), "expected miss on empty cache")

	cache.Set(ctx, "sprint:s1", sprintReport{SprintID: "s1", Done: 7})

	require.True(t, cache.Get(ctx, "sprint:s1", &got), "expected hit after set")
	assert.Equal(t, "s1", got.SprintID)
	assert.Equal(t, 7, got.Done)
}

func TestReportCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "sprint:s1", sprintReport{SprintID: "s1", Done: 1})
	mr.FastForward(2 * time.Minute)

	var got sprintReport
	assert.False(t, cache.Get(ctx, "sprint:s1", &got), "expected miss after TTL elapsed")
}

func TestReportCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	cache.Set(ctx, "sprint:s1", sprintReport{SprintID: "s1", Done: 1})
	cache.Set(ctx, "assignees", sprintReport{SprintID: "", Done: 4})

	cache.Invalidate(ctx, "sprint:s1", "assignees")

	var got sprintReport
	assert.False(t, cache.Get(ctx, "sprint:s1", &got))
	assert.False(t, cache.Get(ctx, "assignees", &got))
}

func TestReportCacheCorruptEntryEvicted(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set("report:sprint:s1", "{not json"))

	var got sprintReport
	assert.False(t, cache.Get(ctx, "sprint:s1", &got), "corrupt entry should miss")
	assert.False(t, mr.Exists("report:sprint:s1"), "corrupt entry should be evicted")
}

func TestReportCacheNilClient(t *testing.T) {
	cache := NewReportCache(nil, time.Minute)
	ctx := context.Background()

	var got sprintReport
	assert.False(t, cache.Get(ctx, "sprint:s1", &got))

	// Writes and invalidations are no-ops without a client.
	cache.Set(ctx, "sprint:s1", sprintReport{SprintID: "s1"})
	cache.Invalidate(ctx, "sprint:s1")
}

func TestReportCacheZeroTTLDisablesWrites(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	ctx := context.Background()

	cache.Set(ctx, "sprint:s1", sprintReport{SprintID: "s1"})

	var got sprintReport
	assert.False(t, cache.Get(ctx, "sprint:s1", &got), "zero TTL should not store entries")
}
