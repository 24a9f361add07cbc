package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
	"fooddelivery/rating-svc/internal/domain"
)

const (
	DefaultTopItems = 5
	MaxTopItems     = 50
)

// RatingReader serves derived ratings, preferring the cache and falling back
// to the store.
type RatingReader struct {
	store  RatingStore
	cache  RatingCache
	qr     QRGenerator
	logger *zap.Logger
}

// NewRatingReader builds a reader. cache may be nil.
func NewRatingReader(store RatingStore, cache RatingCache, qr QRGenerator, logger *zap.Logger) *RatingReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RatingReader{store: store, cache: cache, qr: qr, logger: logger}
}

func (s *RatingReader) RestaurantRating(ctx context.Context, restaurantID string) (*domain.RestaurantRating, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRestaurantRating(ctx, restaurantID)
		if err != nil {
			logging.FromContext(ctx, s.logger).Warn("rating cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	rating, err := s.store.GetRestaurantRating(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, apperrors.NotFound("restaurant", restaurantID)
	}
	return rating, nil
}

func (s *RatingReader) ItemRating(ctx context.Context, restaurantID, itemID string) (*domain.ItemRating, error) {
	if s.cache != nil {
		cached, err := s.cache.GetItemRating(ctx, restaurantID, itemID)
		if err != nil {
			logging.FromContext(ctx, s.logger).Warn("rating cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	item, err := s.store.GetItemRating(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("menu item", itemID)
	}
	return item, nil
}

// TopItems returns the best rated items of a restaurant, highest first.
func (s *RatingReader) TopItems(ctx context.Context, restaurantID string, limit int) ([]domain.ItemRating, error) {
	if limit <= 0 {
		limit = DefaultTopItems
	}
	if limit > MaxTopItems {
		limit = MaxTopItems
	}

	if s.cache != nil {
		items, err := s.cache.TopItems(ctx, restaurantID, limit)
		if err != nil {
			logging.FromContext(ctx, s.logger).Warn("top items cache read failed", zap.Error(err))
		} else if len(items) > 0 {
			return items, nil
		}
	}

	items, err := s.store.ListRestaurantItems(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list items for restaurant %s: %w", restaurantID, err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AverageRating != items[j].AverageRating {
			return items[i].AverageRating > items[j].AverageRating
		}
		return items[i].TotalReviews > items[j].TotalReviews
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *RatingReader) ReviewQRCode(restaurantID, itemID string) ([]byte, error) {
	if restaurantID == "" || itemID == "" {
		return nil, apperrors.InvalidArgument("restaurant id and menu item id are required")
	}
	png, err := s.qr.Generate(restaurantID, itemID)
	if err != nil {
		return nil, apperrors.Internal("failed to generate qr code", err)
	}
	return png, nil
}
