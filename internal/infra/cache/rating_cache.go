package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	repo "storefront/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const ratingKeyPrefix = "storefront:rating:"

// 商品の評価集計をRedisに置く。
// Redisの障害は呼び出し側に返さず、ログだけ出してDBに任せる。
type RedisRatingCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

// DI
func NewRedisRatingCache(client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *RedisRatingCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisRatingCache{client: client, ttl: ttl, logger: logger}
}

func ratingKey(productID string) string {
	return ratingKeyPrefix + productID
}

func (c *RedisRatingCache) Get(ctx context.Context, productID string) (repo.RatingSummary, bool) {
	raw, err := c.client.Get(ctx, ratingKey(productID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("failed to read rating cache", zap.String("product_id", productID), zap.Error(err))
		}
		return repo.RatingSummary{}, false
	}

	var s repo.RatingSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		c.logger.Warn("broken rating cache entry", zap.String("product_id", productID), zap.Error(err))
		return repo.RatingSummary{}, false
	}
	return s, true
}

func (c *RedisRatingCache) Set(ctx context.Context, productID string, s repo.RatingSummary) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, ratingKey(productID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to write rating cache", zap.String("product_id", productID), zap.Error(err))
	}
}

func (c *RedisRatingCache) Invalidate(ctx context.Context, productID string) {
	if err := c.client.Del(ctx, ratingKey(productID)).Err(); err != nil {
		c.logger.Error("failed to invalidate rating cache", zap.String("product_id", productID), zap.Error(err))
	}
}

// 起動時の疎通確認
func Ping(ctx context.Context, client redis.Cmdable) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}
