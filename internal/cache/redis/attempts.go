package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

// Attempts returns the current value of a counter, zero when absent.
func (c *Cache) Attempts(ctx context.Context, key string) (int64, error) {
	const op = "cache.Attempts.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	n, err := c.cli.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		zap.L().Debug("failed to read counter", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return 0, err
	}
	return n, nil
}

// IncrAttempts bumps a counter. The window starts with the first increment
// and is not extended by later ones.
func (c *Cache) IncrAttempts(ctx context.Context, key string, window time.Duration) (int64, error) {
	const op = "cache.IncrAttempts.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	n, err := c.cli.Incr(ctx, key).Result()
	if err != nil {
		zap.L().Debug("failed to increment counter", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return 0, err
	}

	if n == 1 {
		if err = c.cli.Expire(ctx, key, window).Err(); err != nil {
			zap.L().Debug("failed to set counter window", zap.String("op", op), zap.String("key", key), zap.Error(err))
			return n, err
		}
	}

	return n, nil
}
