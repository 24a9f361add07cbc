package service

import (
	"context"
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
	"fooddelivery/rating-svc/internal/domain"
)

var recomputations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rating_recomputations_total",
		Help: "Rating recomputations by level and outcome",
	},
	[]string{"level", "outcome"},
)

// Aggregator re-derives item and restaurant rating statistics from scratch.
// Every run is a full recomputation, so concurrent and repeated runs converge
// on the same stored state once the last one finishes.
type Aggregator struct {
	store  RatingStore
	cache  RatingCache
	logger *zap.Logger
}

// NewAggregator builds an Aggregator. cache may be nil.
func NewAggregator(store RatingStore, cache RatingCache, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{store: store, cache: cache, logger: logger}
}

// RecomputeItem recounts the item's reviews, writes the item stats and then
// recomputes the owning restaurant.
func (a *Aggregator) RecomputeItem(ctx context.Context, itemID, restaurantID string) error {
	if itemID == "" || restaurantID == "" {
		return apperrors.InvalidArgument("menu item id and restaurant id are required")
	}
	log := logging.FromContext(ctx, a.logger).With(
		zap.String("menu_item_id", itemID),
		zap.String("restaurant_id", restaurantID),
	)

	reviews, err := a.store.ListItemReviews(ctx, itemID)
	if err != nil {
		recomputations.WithLabelValues("item", "error").Inc()
		return fmt.Errorf("list reviews for item %s: %w", itemID, err)
	}

	stats := ItemStats(reviews)
	if err := a.store.UpdateItemRating(ctx, restaurantID, itemID, stats); err != nil {
		recomputations.WithLabelValues("item", "error").Inc()
		return fmt.Errorf("update item %s rating: %w", itemID, err)
	}
	recomputations.WithLabelValues("item", "ok").Inc()
	log.Info("item rating recomputed",
		zap.Float64("average_rating", stats.AverageRating),
		zap.Int("total_reviews", stats.TotalReviews),
	)

	if a.cache != nil {
		item := domain.ItemRating{ItemID: itemID, RestaurantID: restaurantID, RatingStats: stats}
		if err := a.cache.SetItemRating(ctx, item); err != nil {
			log.Warn("failed to cache item rating", zap.Error(err))
		}
	}

	return a.RecomputeRestaurant(ctx, restaurantID)
}

// RecomputeRestaurant aggregates the restaurant's items weighted by their
// review counts.
func (a *Aggregator) RecomputeRestaurant(ctx context.Context, restaurantID string) error {
	if restaurantID == "" {
		return apperrors.InvalidArgument("restaurant id is required")
	}
	log := logging.FromContext(ctx, a.logger).With(zap.String("restaurant_id", restaurantID))

	items, err := a.store.ListRestaurantItems(ctx, restaurantID)
	if err != nil {
		recomputations.WithLabelValues("restaurant", "error").Inc()
		return fmt.Errorf("list items for restaurant %s: %w", restaurantID, err)
	}

	stats := RestaurantStats(items)
	if err := a.store.UpdateRestaurantRating(ctx, restaurantID, stats); err != nil {
		recomputations.WithLabelValues("restaurant", "error").Inc()
		return fmt.Errorf("update restaurant %s rating: %w", restaurantID, err)
	}
	recomputations.WithLabelValues("restaurant", "ok").Inc()
	log.Info("restaurant rating recomputed",
		zap.Float64("average_rating", stats.AverageRating),
		zap.Int("total_reviews", stats.TotalReviews),
		zap.Int("items", len(items)),
	)

	if a.cache != nil {
		rating := domain.RestaurantRating{RestaurantID: restaurantID, RatingStats: stats}
		if err := a.cache.SetRestaurantRating(ctx, rating); err != nil {
			log.Warn("failed to cache restaurant rating", zap.Error(err))
		}
	}
	return nil
}

// ItemStats counts every review; a review without a numeric rating adds 0 to
// the sum.
func ItemStats(reviews []domain.Review) domain.RatingStats {
	if len(reviews) == 0 {
		return domain.RatingStats{}
	}
	var sum float64
	for _, r := range reviews {
		if r.Rating != nil {
			sum += *r.Rating
		}
	}
	return domain.RatingStats{
		AverageRating: round2(sum / float64(len(reviews))),
		TotalReviews:  len(reviews),
	}
}

func RestaurantStats(items []domain.ItemRating) domain.RatingStats {
	var weightedSum float64
	var total int
	for _, item := range items {
		weightedSum += item.AverageRating * float64(item.TotalReviews)
		total += item.TotalReviews
	}
	if total == 0 {
		return domain.RatingStats{}
	}
	return domain.RatingStats{
		AverageRating: round2(weightedSum / float64(total)),
		TotalReviews:  total,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
