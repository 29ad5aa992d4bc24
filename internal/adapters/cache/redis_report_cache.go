package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"employee-overlap-service/internal/domain"
)

// Redis-backed implementation of the ReportCache port.
// Reports are stored as JSON payloads with a TTL.
type RedisReportCache struct {
	Client *redis.Client
}

func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{Client: client}
}

// Fetch a cached report; ok is false on a miss.
func (c *RedisReportCache) Get(ctx context.Context, key string) (*domain.PairReport, bool, error) {
	if c.Client == nil {
		return nil, false, errors.New("report cache: client is nil")
	}

	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("report cache: get %q: %w", key, err)
	}

	var report domain.PairReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("report cache: decode %q: %w", key, err)
	}

	return &report, true, nil
}

// Store a report under key for at most ttl.
func (c *RedisReportCache) Put(ctx context.Context, key string, report *domain.PairReport, ttl time.Duration) error {
	if c.Client == nil {
		return errors.New("report cache: client is nil")
	}
	if report == nil {
		return errors.New("report cache: report is nil")
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("report cache: encode %q: %w", key, err)
	}

	if err := c.Client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("report cache: set %q: %w", key, err)
	}

	return nil
}
