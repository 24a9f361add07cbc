package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fooddelivery/apperrors"
	"fooddelivery/review-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) MenuItemExists(ctx context.Context, itemID, restaurantID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM menu_items
			WHERE id = $1 AND restaurant_id = $2
		)
	`, itemID, restaurantID).Scan(&exists)
	return exists, err
}

// FindUserReviewID returns "" when the user has not reviewed the item.
func (r *PostgresRepository) FindUserReviewID(ctx context.Context, userID, itemID string) (string, error) {
	var id string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM reviews
		WHERE user_id = $1 AND menu_item_id = $2
	`, userID, itemID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO reviews (id, menu_item_id, restaurant_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, review.ID, review.MenuItemID, review.RestaurantID, review.UserID, review.Rating, review.Comment,
		review.CreatedAt, review.UpdatedAt)
	return err
}

// GetReview returns nil when no review has the id.
func (r *PostgresRepository) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	var rev domain.Review
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, menu_item_id, restaurant_id, user_id, COALESCE(rating, 0), COALESCE(comment, ''), created_at, updated_at
		FROM reviews
		WHERE id = $1
	`, id).Scan(&rev.ID, &rev.MenuItemID, &rev.RestaurantID, &rev.UserID, &rev.Rating, &rev.Comment,
		&rev.CreatedAt, &rev.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *PostgresRepository) UpdateReview(ctx context.Context, review *domain.Review) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE reviews
		SET rating = $1, comment = $2, updated_at = $3
		WHERE id = $4
	`, review.Rating, review.Comment, review.UpdatedAt, review.ID)
	if err != nil {
		return err
	}
	return requireRow(res, review.ID)
}

func (r *PostgresRepository) DeleteReview(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, id)
}

func (r *PostgresRepository) ListItemReviews(ctx context.Context, itemID string) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, menu_item_id, restaurant_id, user_id, COALESCE(rating, 0), COALESCE(comment, ''), created_at, updated_at
		FROM reviews
		WHERE menu_item_id = $1
		ORDER BY created_at DESC
	`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.MenuItemID, &rev.RestaurantID, &rev.UserID, &rev.Rating, &rev.Comment,
			&rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.NotFound("review", id)
	}
	return nil
}
