package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-catalog-api/internal/model"

	"github.com/redis/go-redis/v9"
)

// ProductCache is a cache-aside store for the featured-products list,
// the hottest read path. A nil *ProductCache disables caching, so the
// service never has to branch on availability.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{client: client, ttl: ttl}
}

func featuredKey(limit int) string {
	return fmt.Sprintf("catalog:featured:%d", limit)
}

// GetFeatured returns the cached list, or nil on a miss.
func (c *ProductCache) GetFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	if c == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, featuredKey(limit)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var products []model.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *ProductCache) SetFeatured(ctx context.Context, limit int, products []model.Product) error {
	if c == nil {
		return nil
	}

	val, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, featuredKey(limit), val, c.ttl).Err()
}

// Invalidate drops every cached featured list. Called after any product
// mutation; deleting beats updating under concurrent writers.
func (c *ProductCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, "catalog:featured:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
