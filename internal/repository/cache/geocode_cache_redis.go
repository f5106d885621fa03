package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/realty-catalog/internal/domain"
	"github.com/realty-catalog/internal/domain/repository"
	"github.com/realty-catalog/internal/pkg/errors"
)

// redisGeocodeCache держит весь кеш в одном хеше: поле - адрес, значение - [lat, lon] или null
type redisGeocodeCache struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

func NewRedisGeocodeCache(r *Redis, key string) repository.GeocodeCache {
	return &redisGeocodeCache{
		client: r.Client(),
		key:    key,
		logger: r.logger,
	}
}

func (c *redisGeocodeCache) Get(ctx context.Context, address string) (*domain.Point, bool, error) {
	raw, err := c.client.HGet(ctx, c.key, address).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		c.logger.Error("Failed to read geocode cache", zap.String("address", address), zap.Error(err))
		return nil, false, errors.ErrCacheError.Wrap(err)
	}

	point, err := decodePoint(raw)
	if err != nil {
		// битое значение считаем отсутствующим, оно перезапишется
		c.logger.Warn("Corrupted geocode cache entry", zap.String("address", address), zap.Error(err))
		return nil, false, nil
	}

	c.logger.Debug("Geocode cache hit", zap.String("address", address))
	return point, true, nil
}

func (c *redisGeocodeCache) Set(ctx context.Context, address string, point *domain.Point) error {
	raw, err := encodePoint(point)
	if err != nil {
		return errors.ErrCacheError.Wrap(err)
	}
	if err := c.client.HSet(ctx, c.key, address, raw).Err(); err != nil {
		c.logger.Error("Failed to write geocode cache", zap.String("address", address), zap.Error(err))
		return errors.ErrCacheError.Wrap(err)
	}
	return nil
}

func (c *redisGeocodeCache) Reset(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return errors.ErrCacheError.Wrap(err)
	}
	c.logger.Info("Geocode cache reset", zap.String("key", c.key))
	return nil
}

// Flush ничего не делает: каждая запись уже в Redis
func (c *redisGeocodeCache) Flush(context.Context) error {
	return nil
}

func (c *redisGeocodeCache) Len(ctx context.Context) (int64, error) {
	return c.client.HLen(ctx, c.key).Result()
}
