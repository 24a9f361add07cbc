package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fooddelivery/review-svc/internal/domain"
)

// RedisCache remembers which review a user left on a menu item so repeat
// submissions are rejected without a database round trip. A non-positive TTL
// turns the markers off and every lookup falls through to the database.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func markerKey(userID, itemID string) string {
	return fmt.Sprintf("review-marker:%s:%s", itemID, userID)
}

// MarkedReviewID returns the id of the user's review on the item, or "" when
// no marker is set.
func (c *RedisCache) MarkedReviewID(ctx context.Context, userID, itemID string) (string, error) {
	if c.TTL <= 0 {
		return "", nil
	}
	id, err := c.Client.Get(ctx, markerKey(userID, itemID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (c *RedisCache) MarkReview(ctx context.Context, review *domain.Review) error {
	if c.TTL <= 0 {
		return nil
	}
	return c.Client.Set(ctx, markerKey(review.UserID, review.MenuItemID), review.ID, c.TTL).Err()
}

func (c *RedisCache) UnmarkReview(ctx context.Context, userID, itemID string) error {
	if c.TTL <= 0 {
		return nil
	}
	return c.Client.Del(ctx, markerKey(userID, itemID)).Err()
}
