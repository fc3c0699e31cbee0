package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per client key over a fixed window.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Incr(ctx, "requests:"+key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, "requests:"+key, r.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(r.limit), nil
}

// NoopLimiter allows every request. Wired when REDIS_ADDR is not set.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}
