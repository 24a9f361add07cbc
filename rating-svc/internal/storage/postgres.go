package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fooddelivery/apperrors"
	"fooddelivery/rating-svc/internal/domain"
)

// PostgresStore is the self-hosted counterpart of FirestoreStore.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListItemReviews(ctx context.Context, itemID string) ([]domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, rating
		FROM reviews
		WHERE menu_item_id = $1
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var (
			id     string
			rating sql.NullFloat64
		)
		if err := rows.Scan(&id, &rating); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		review := domain.Review{ID: id}
		if rating.Valid {
			v := rating.Float64
			review.Rating = &v
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}
	return reviews, nil
}

func (s *PostgresStore) UpdateItemRating(ctx context.Context, restaurantID, itemID string, stats domain.RatingStats) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE menu_items
		SET average_rating = $1,
		    total_reviews = $2,
		    review_aggregation_updated_at = NOW()
		WHERE id = $3 AND restaurant_id = $4
	`, stats.AverageRating, stats.TotalReviews, itemID, restaurantID)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return requireRow(res, "menu item", itemID)
}

func (s *PostgresStore) ListRestaurantItems(ctx context.Context, restaurantID string) ([]domain.ItemRating, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, COALESCE(average_rating, 0), COALESCE(total_reviews, 0)
		FROM menu_items
		WHERE restaurant_id = $1
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.ItemRating
	for rows.Next() {
		item := domain.ItemRating{RestaurantID: restaurantID}
		if err := rows.Scan(&item.ItemID, &item.AverageRating, &item.TotalReviews); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate menu items: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) UpdateRestaurantRating(ctx context.Context, restaurantID string, stats domain.RatingStats) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE restaurants
		SET average_rating = $1,
		    total_reviews = $2,
		    restaurant_aggregation_updated_at = NOW()
		WHERE id = $3
	`, stats.AverageRating, stats.TotalReviews, restaurantID)
	if err != nil {
		return fmt.Errorf("update restaurant: %w", err)
	}
	return requireRow(res, "restaurant", restaurantID)
}

func (s *PostgresStore) GetItemRating(ctx context.Context, restaurantID, itemID string) (*domain.ItemRating, error) {
	item := domain.ItemRating{ItemID: itemID, RestaurantID: restaurantID}
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(average_rating, 0), COALESCE(total_reviews, 0)
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2
	`, itemID, restaurantID).Scan(&item.AverageRating, &item.TotalReviews)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &item, nil
}

func (s *PostgresStore) GetRestaurantRating(ctx context.Context, restaurantID string) (*domain.RestaurantRating, error) {
	rating := domain.RestaurantRating{RestaurantID: restaurantID}
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(average_rating, 0), COALESCE(total_reviews, 0)
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&rating.AverageRating, &rating.TotalReviews)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return &rating, nil
}

func requireRow(res sql.Result, resource, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound(resource, id)
	}
	return nil
}
