package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tube-catalog/domain/model"
	"tube-catalog/domain/repository"
	"tube-catalog/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

const categoryKeyPrefix = "category:"

// CategoryCache stores per-region category collections in Redis as JSON
// values. A zero ttl keeps entries until they are overwritten.
type CategoryCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewCategoryCache(client redis.Cmdable, ttl time.Duration) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl}
}

var _ repository.ICategoryStore = (*CategoryCache)(nil)

func (c *CategoryCache) key(regionCode string) string {
	return categoryKeyPrefix + regionCode
}

func (c *CategoryCache) GetCategories(ctx context.Context, regionCode string) (*model.CategoryCollection, error) {
	raw, err := c.client.Get(ctx, c.key(regionCode)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("regionCode", regionCode).Error("Error while reading categories from redis")
		return nil, fmt.Errorf("%w: get categories: %w", repository.ErrBackendExecution, err)
	}
	var collection model.CategoryCollection
	if err := json.Unmarshal(raw, &collection); err != nil {
		// An unreadable entry is treated as a miss and gets refreshed.
		logger.GetLogger().WithField("error", err).WithField("regionCode", regionCode).Warn("Discarding malformed cached categories")
		return nil, nil
	}
	return &collection, nil
}

func (c *CategoryCache) SaveCategories(ctx context.Context, collection *model.CategoryCollection) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	if err := c.client.Set(ctx, c.key(collection.ID), raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).WithField("regionCode", collection.ID).Error("Error while writing categories to redis")
		return fmt.Errorf("%w: save categories: %w", repository.ErrBackendExecution, err)
	}
	return nil
}
