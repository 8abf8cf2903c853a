package assessment

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"orbita/internal/report"
	"orbita/pkg/domain"
)

// ReportCache stores rendered reports. A cache failure is never surfaced to
// the caller: the service degrades to recomputing the report.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, id domain.AssessmentID)
}

// reportCacheKey scopes cached documents per assessment so invalidation can
// sweep them with one pattern.
func reportCacheKey(id domain.AssessmentID, framework domain.Framework, kind report.Kind) string {
	return fmt.Sprintf("orbita:report:%s:%s:%s", id, framework, kind)
}

// RedisReportCache caches rendered reports in Redis.
type RedisReportCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

func NewRedisReportCache(client goredis.UniversalClient, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{client: client, ttl: ttl}
}

func (c *RedisReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	// A miss and a transport error look the same to the caller.
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *RedisReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl == 0 {
		ttl = c.ttl
	}
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

// Invalidate removes all cached reports for an assessment. Called on every
// status update so stale documents are never served.
func (c *RedisReportCache) Invalidate(ctx context.Context, id domain.AssessmentID) {
	pattern := fmt.Sprintf("orbita:report:%s:*", id)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		_ = c.client.Del(ctx, iter.Val()).Err()
	}
}
