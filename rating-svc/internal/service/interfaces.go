package service

import (
	"context"

	"fooddelivery/rating-svc/internal/domain"
	"fooddelivery/rating-svc/internal/storage"
)

// RatingStore reads reviews and persists the derived rating fields.
type RatingStore interface {
	ListItemReviews(ctx context.Context, itemID string) ([]domain.Review, error)
	UpdateItemRating(ctx context.Context, restaurantID, itemID string, stats domain.RatingStats) error
	ListRestaurantItems(ctx context.Context, restaurantID string) ([]domain.ItemRating, error)
	UpdateRestaurantRating(ctx context.Context, restaurantID string, stats domain.RatingStats) error
	GetItemRating(ctx context.Context, restaurantID, itemID string) (*domain.ItemRating, error)
	GetRestaurantRating(ctx context.Context, restaurantID string) (*domain.RestaurantRating, error)
}

// RatingCache mirrors the derived ratings for the read API. Getters return
// nil with no error on a miss.
type RatingCache interface {
	SetItemRating(ctx context.Context, item domain.ItemRating) error
	SetRestaurantRating(ctx context.Context, rating domain.RestaurantRating) error
	GetItemRating(ctx context.Context, restaurantID, itemID string) (*domain.ItemRating, error)
	GetRestaurantRating(ctx context.Context, restaurantID string) (*domain.RestaurantRating, error)
	TopItems(ctx context.Context, restaurantID string, limit int) ([]domain.ItemRating, error)
}

type AggregatorInterface interface {
	RecomputeItem(ctx context.Context, itemID, restaurantID string) error
	RecomputeRestaurant(ctx context.Context, restaurantID string) error
}

type DispatcherInterface interface {
	Dispatch(ctx context.Context, event domain.ReviewEvent) error
	OnReviewCreated(ctx context.Context, after domain.Fields) error
	OnReviewUpdated(ctx context.Context, before, after domain.Fields) error
	OnReviewDeleted(ctx context.Context, before domain.Fields) error
}

type RatingReaderInterface interface {
	RestaurantRating(ctx context.Context, restaurantID string) (*domain.RestaurantRating, error)
	ItemRating(ctx context.Context, restaurantID, itemID string) (*domain.ItemRating, error)
	TopItems(ctx context.Context, restaurantID string, limit int) ([]domain.ItemRating, error)
	ReviewQRCode(restaurantID, itemID string) ([]byte, error)
}

var (
	_ RatingStore = (*storage.FirestoreStore)(nil)
	_ RatingStore = (*storage.PostgresStore)(nil)
	_ RatingCache = (*storage.RedisCache)(nil)

	_ AggregatorInterface   = (*Aggregator)(nil)
	_ DispatcherInterface   = (*Dispatcher)(nil)
	_ RatingReaderInterface = (*RatingReader)(nil)
)
