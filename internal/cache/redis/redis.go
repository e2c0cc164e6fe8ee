package redis

import (
	"context"
	"errors"
	"time"

	"github.com/JMURv/tab-audit/internal/cache"
	"github.com/JMURv/tab-audit/internal/config"
	"github.com/go-redis/redis/v8"
	"github.com/goccy/go-json"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Cache struct {
	cli *redis.Client
}

func New(conf config.RedisConfig) *Cache {
	cli := redis.NewClient(
		&redis.Options{
			Addr:     conf.Addr,
			Password: conf.Pass,
			DB:       conf.DB,
		},
	)

	if _, err := cli.Ping(context.Background()).Result(); err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.String("addr", conf.Addr), zap.Error(err))
	}

	return &Cache{cli: cli}
}

func (c *Cache) Close() error {
	return c.cli.Close()
}

func (c *Cache) GetToStruct(ctx context.Context, key string, dest any) error {
	const op = "cache.GetToStruct.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	val, err := c.cli.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return cache.ErrNotFoundInCache
	} else if err != nil {
		zap.L().Debug("failed to get from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	if err = json.Unmarshal(val, dest); err != nil {
		zap.L().Debug("failed to unmarshal cached value", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return err
	}

	return nil
}

func (c *Cache) Set(ctx context.Context, t time.Duration, key string, val any) {
	const op = "cache.Set.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	bytes, err := json.Marshal(val)
	if err != nil {
		zap.L().Debug("failed to marshal value", zap.String("op", op), zap.String("key", key), zap.Error(err))
		return
	}

	if err = c.cli.Set(ctx, key, bytes, t).Err(); err != nil {
		zap.L().Debug("failed to set to cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) Delete(ctx context.Context, key string) {
	const op = "cache.Delete.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	if err := c.cli.Del(ctx, key).Err(); err != nil {
		zap.L().Debug("failed to delete from cache", zap.String("op", op), zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) InvalidateKeysByPattern(ctx context.Context, pattern string) {
	const op = "cache.InvalidateKeysByPattern.redis"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var cursor uint64
	for {
		keys, next, err := c.cli.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			zap.L().Debug("failed to scan keys", zap.String("op", op), zap.String("pattern", pattern), zap.Error(err))
			return
		}

		if len(keys) > 0 {
			if err = c.cli.Del(ctx, keys...).Err(); err != nil {
				zap.L().Debug("failed to delete keys", zap.String("op", op), zap.String("pattern", pattern), zap.Error(err))
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}
