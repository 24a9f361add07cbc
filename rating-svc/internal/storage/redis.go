package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"fooddelivery/rating-svc/internal/domain"
)

const ratingTTL = 24 * time.Hour

// RedisCache mirrors ratings into one hash per entity plus a sorted set of
// items per restaurant ranked by average rating.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func itemKey(restaurantID, itemID string) string {
	return fmt.Sprintf("rating:item:%s:%s", restaurantID, itemID)
}

func restaurantKey(restaurantID string) string {
	return fmt.Sprintf("rating:restaurant:%s", restaurantID)
}

func topItemsKey(restaurantID string) string {
	return fmt.Sprintf("rating:top:%s", restaurantID)
}

func (c *RedisCache) SetItemRating(ctx context.Context, item domain.ItemRating) error {
	key := itemKey(item.RestaurantID, item.ItemID)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, statsHash(item.RatingStats))
	pipe.Expire(ctx, key, ratingTTL)
	pipe.ZAdd(ctx, topItemsKey(item.RestaurantID), redis.Z{
		Score:  item.AverageRating,
		Member: item.ItemID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache item rating: %w", err)
	}
	return nil
}

func (c *RedisCache) SetRestaurantRating(ctx context.Context, rating domain.RestaurantRating) error {
	key := restaurantKey(rating.RestaurantID)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, statsHash(rating.RatingStats))
	pipe.Expire(ctx, key, ratingTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache restaurant rating: %w", err)
	}
	return nil
}

func (c *RedisCache) GetItemRating(ctx context.Context, restaurantID, itemID string) (*domain.ItemRating, error) {
	stats, ok, err := c.getStats(ctx, itemKey(restaurantID, itemID))
	if err != nil || !ok {
		return nil, err
	}
	return &domain.ItemRating{ItemID: itemID, RestaurantID: restaurantID, RatingStats: stats}, nil
}

func (c *RedisCache) GetRestaurantRating(ctx context.Context, restaurantID string) (*domain.RestaurantRating, error) {
	stats, ok, err := c.getStats(ctx, restaurantKey(restaurantID))
	if err != nil || !ok {
		return nil, err
	}
	return &domain.RestaurantRating{RestaurantID: restaurantID, RatingStats: stats}, nil
}

func (c *RedisCache) TopItems(ctx context.Context, restaurantID string, limit int) ([]domain.ItemRating, error) {
	ranked, err := c.rdb.ZRevRangeWithScores(ctx, topItemsKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read top items: %w", err)
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	pipe := c.rdb.Pipeline()
	counts := make([]*redis.StringCmd, len(ranked))
	for i, z := range ranked {
		counts[i] = pipe.HGet(ctx, itemKey(restaurantID, z.Member.(string)), "review_count")
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read top item counts: %w", err)
	}

	items := make([]domain.ItemRating, 0, len(ranked))
	for i, z := range ranked {
		// An expired hash leaves the count at zero; the ranking is still valid.
		total, _ := counts[i].Int()
		items = append(items, domain.ItemRating{
			ItemID:       z.Member.(string),
			RestaurantID: restaurantID,
			RatingStats:  domain.RatingStats{AverageRating: z.Score, TotalReviews: total},
		})
	}
	return items, nil
}

func (c *RedisCache) getStats(ctx context.Context, key string) (domain.RatingStats, bool, error) {
	values, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return domain.RatingStats{}, false, fmt.Errorf("read %s: %w", key, err)
	}
	if len(values) == 0 {
		return domain.RatingStats{}, false, nil
	}

	avg, err := strconv.ParseFloat(values["avg_rating"], 64)
	if err != nil {
		return domain.RatingStats{}, false, fmt.Errorf("parse avg_rating of %s: %w", key, err)
	}
	total, err := strconv.Atoi(values["review_count"])
	if err != nil {
		return domain.RatingStats{}, false, fmt.Errorf("parse review_count of %s: %w", key, err)
	}
	return domain.RatingStats{AverageRating: avg, TotalReviews: total}, true, nil
}

func statsHash(stats domain.RatingStats) map[string]any {
	return map[string]any{
		"avg_rating":   stats.AverageRating,
		"review_count": stats.TotalReviews,
		"last_updated": time.Now().Unix(),
	}
}
