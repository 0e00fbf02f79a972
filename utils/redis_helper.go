package utils

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"cvss-scoring-service-golang/internal/cvss"
	rds "cvss-scoring-service-golang/internal/redis"
	"cvss-scoring-service-golang/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

const scoreKeyPrefix = "cvss:v31:"

// scoreKey keys a result by its canonical vector so that equivalent
// spellings of one vector share an entry.
func scoreKey(canonical string) string {
	return scoreKeyPrefix + canonical
}

// GetCachedScore looks up the result for a canonical vector. Any redis
// failure is treated as a miss.
func GetCachedScore(ctx context.Context, canonical string) (*cvss.Result, bool) {
	if rds.Client == nil {
		return nil, false
	}

	raw, err := rds.Client.Get(ctx, scoreKey(canonical)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("score lookup failed", "component", "cache", "vector", canonical, "err", err)
		}
		telemetry.RecordCacheLookup(ctx, false)
		return nil, false
	}

	var res cvss.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		slog.Warn("dropping undecodable cache entry", "component", "cache", "vector", canonical, "err", err)
		InvalidateScore(ctx, canonical)
		telemetry.RecordCacheLookup(ctx, false)
		return nil, false
	}

	telemetry.RecordCacheLookup(ctx, true)
	return &res, true
}

// CacheScore stores res under its canonical vector.
func CacheScore(ctx context.Context, res *cvss.Result, ttl time.Duration) {
	if rds.Client == nil || res == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := rds.Client.Set(ctx, scoreKey(res.VectorString), data, ttl).Err(); err != nil {
		slog.Warn("score store failed", "component", "cache", "vector", res.VectorString, "err", err)
	}
}

// InvalidateScore removes a cached result.
func InvalidateScore(ctx context.Context, canonical string) {
	if rds.Client == nil {
		return
	}
	rds.Client.Del(ctx, scoreKey(canonical))
}
