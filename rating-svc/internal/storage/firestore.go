package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"fooddelivery/rating-svc/internal/domain"
)

const (
	reviewsCollection     = "reviews"
	restaurantsCollection = "restaurants"
	menuItemsCollection   = "menuItems"
)

// FirestoreStore keeps ratings on the restaurant and menu item documents
// the mobile app reads directly.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) restaurant(id string) *firestore.DocumentRef {
	return s.client.Collection(restaurantsCollection).Doc(id)
}

func (s *FirestoreStore) menuItem(restaurantID, itemID string) *firestore.DocumentRef {
	return s.restaurant(restaurantID).Collection(menuItemsCollection).Doc(itemID)
}

func (s *FirestoreStore) ListItemReviews(ctx context.Context, itemID string) ([]domain.Review, error) {
	docs, err := s.client.Collection(reviewsCollection).
		Where("menuItemId", "==", itemID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}

	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, ReviewFromData(doc.Ref.ID, doc.Data()))
	}
	return reviews, nil
}

// UpdateItemRating fails when the item document does not exist.
func (s *FirestoreStore) UpdateItemRating(ctx context.Context, restaurantID, itemID string, stats domain.RatingStats) error {
	_, err := s.menuItem(restaurantID, itemID).Update(ctx, []firestore.Update{
		{Path: "averageRating", Value: stats.AverageRating},
		{Path: "totalReviews", Value: stats.TotalReviews},
		{Path: "reviewAggregationUpdatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListRestaurantItems(ctx context.Context, restaurantID string) ([]domain.ItemRating, error) {
	docs, err := s.restaurant(restaurantID).Collection(menuItemsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	items := make([]domain.ItemRating, 0, len(docs))
	for _, doc := range docs {
		items = append(items, domain.ItemRating{
			ItemID:       doc.Ref.ID,
			RestaurantID: restaurantID,
			RatingStats:  StatsFromData(doc.Data()),
		})
	}
	return items, nil
}

func (s *FirestoreStore) UpdateRestaurantRating(ctx context.Context, restaurantID string, stats domain.RatingStats) error {
	_, err := s.restaurant(restaurantID).Update(ctx, []firestore.Update{
		{Path: "averageRating", Value: stats.AverageRating},
		{Path: "totalReviews", Value: stats.TotalReviews},
		{Path: "restaurantAggregationUpdatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetItemRating(ctx context.Context, restaurantID, itemID string) (*domain.ItemRating, error) {
	doc, err := s.menuItem(restaurantID, itemID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &domain.ItemRating{
		ItemID:       itemID,
		RestaurantID: restaurantID,
		RatingStats:  StatsFromData(doc.Data()),
	}, nil
}

func (s *FirestoreStore) GetRestaurantRating(ctx context.Context, restaurantID string) (*domain.RestaurantRating, error) {
	doc, err := s.restaurant(restaurantID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &domain.RestaurantRating{RestaurantID: restaurantID, RatingStats: StatsFromData(doc.Data())}, nil
}

// ReviewFromData keeps the review even when its rating is unusable.
func ReviewFromData(id string, data map[string]any) domain.Review {
	review := domain.Review{ID: id}
	if rating, ok := domain.NumericRating(data["rating"]); ok {
		review.Rating = &rating
	}
	return review
}

// StatsFromData reads the derived rating fields, treating missing or
// malformed values as zero.
func StatsFromData(data map[string]any) domain.RatingStats {
	avg, _ := domain.NumericRating(data["averageRating"])
	total, _ := domain.NumericRating(data["totalReviews"])
	if total < 0 {
		total = 0
	}
	return domain.RatingStats{AverageRating: avg, TotalReviews: int(total)}
}
