package tests

import (
	"context"
	"sort"
	"sync"

	"fooddelivery/apperrors"
	"fooddelivery/rating-svc/internal/domain"
)

type memReview struct {
	itemID string
	rating any
}

// memStore is an in-memory RatingStore shaped like the review documents.
type memStore struct {
	mu          sync.Mutex
	reviews     map[string]memReview
	items       map[string]map[string]domain.RatingStats
	restaurants map[string]domain.RatingStats
	writes      int
}

func newMemStore() *memStore {
	return &memStore{
		reviews:     map[string]memReview{},
		items:       map[string]map[string]domain.RatingStats{},
		restaurants: map[string]domain.RatingStats{},
	}
}

func (s *memStore) addItem(restaurantID, itemID string, stats domain.RatingStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restaurants[restaurantID]; !ok {
		s.restaurants[restaurantID] = domain.RatingStats{}
	}
	if s.items[restaurantID] == nil {
		s.items[restaurantID] = map[string]domain.RatingStats{}
	}
	s.items[restaurantID][itemID] = stats
}

func (s *memStore) putReview(id, itemID string, rating any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[id] = memReview{itemID: itemID, rating: rating}
}

func (s *memStore) deleteReview(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reviews, id)
}

func (s *memStore) item(restaurantID, itemID string) domain.RatingStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[restaurantID][itemID]
}

func (s *memStore) restaurant(restaurantID string) domain.RatingStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restaurants[restaurantID]
}

func (s *memStore) ListItemReviews(_ context.Context, itemID string) ([]domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Review
	for id, r := range s.reviews {
		if r.itemID != itemID {
			continue
		}
		review := domain.Review{ID: id}
		if v, ok := domain.NumericRating(r.rating); ok {
			review.Rating = &v
		}
		out = append(out, review)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memStore) UpdateItemRating(_ context.Context, restaurantID, itemID string, stats domain.RatingStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[restaurantID][itemID]; !ok {
		return apperrors.NotFound("menu item", itemID)
	}
	s.items[restaurantID][itemID] = stats
	s.writes++
	return nil
}

func (s *memStore) ListRestaurantItems(_ context.Context, restaurantID string) ([]domain.ItemRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ItemRating
	for id, stats := range s.items[restaurantID] {
		out = append(out, domain.ItemRating{ItemID: id, RestaurantID: restaurantID, RatingStats: stats})
	}
	return out, nil
}

func (s *memStore) UpdateRestaurantRating(_ context.Context, restaurantID string, stats domain.RatingStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restaurants[restaurantID]; !ok {
		return apperrors.NotFound("restaurant", restaurantID)
	}
	s.restaurants[restaurantID] = stats
	s.writes++
	return nil
}

func (s *memStore) GetItemRating(_ context.Context, restaurantID, itemID string) (*domain.ItemRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats, ok := s.items[restaurantID][itemID]
	if !ok {
		return nil, nil
	}
	return &domain.ItemRating{ItemID: itemID, RestaurantID: restaurantID, RatingStats: stats}, nil
}

func (s *memStore) GetRestaurantRating(_ context.Context, restaurantID string) (*domain.RestaurantRating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats, ok := s.restaurants[restaurantID]
	if !ok {
		return nil, nil
	}
	return &domain.RestaurantRating{RestaurantID: restaurantID, RatingStats: stats}, nil
}
