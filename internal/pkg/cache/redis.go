package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/paskibra-rajawali/admin-dashboard/internal/domain/statistics"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rajawali:statistics:"

// Redis wraps redis client.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to redis with short timeouts.
func NewRedis(addr, password string, db int) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Redis{Client: client}
}

// Healthy verifies redis connectivity.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.Client == nil {
		return false
	}
	return r.Client.Ping(ctx).Err() == nil
}

func (r *Redis) Close() error {
	if r == nil || r.Client == nil {
		return nil
	}
	return r.Client.Close()
}

// StatisticsCache stores statistics responses as JSON, one key per period.
type StatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatisticsCache(r *Redis, ttl time.Duration) *StatisticsCache {
	return &StatisticsCache{client: r.Client, ttl: ttl}
}

func statisticsKey(period statistics.Period) string {
	return keyPrefix + string(period)
}

// Get returns nil without error on a cache miss.
func (c *StatisticsCache) Get(ctx context.Context, period statistics.Period) (*statistics.StatisticsResponse, error) {
	raw, err := c.client.Get(ctx, statisticsKey(period)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read statistics cache: %w", err)
	}

	var stats statistics.StatisticsResponse
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, fmt.Errorf("failed to decode statistics cache: %w", err)
	}
	return &stats, nil
}

func (c *StatisticsCache) Set(ctx context.Context, period statistics.Period, stats statistics.StatisticsResponse) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode statistics cache: %w", err)
	}
	if err := c.client.Set(ctx, statisticsKey(period), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write statistics cache: %w", err)
	}
	return nil
}

func (c *StatisticsCache) Invalidate(ctx context.Context) error {
	keys := []string{
		statisticsKey(statistics.PeriodWeek),
		statisticsKey(statistics.PeriodMonth),
		statisticsKey(statistics.PeriodYear),
		statisticsKey(statistics.PeriodAll),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate statistics cache: %w", err)
	}
	return nil
}
