package service

import (
	"context"

	"fooddelivery/review-svc/internal/domain"
	"fooddelivery/review-svc/internal/storage"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, userID string, input domain.CreateReviewInput) (*domain.Review, error)
	Update(ctx context.Context, userID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, userID, reviewID string) error
	ListItemReviews(ctx context.Context, itemID string) ([]domain.Review, error)
}

type ReviewRepository interface {
	MenuItemExists(ctx context.Context, itemID, restaurantID string) (bool, error)
	FindUserReviewID(ctx context.Context, userID, itemID string) (string, error)
	InsertReview(ctx context.Context, review *domain.Review) error
	GetReview(ctx context.Context, id string) (*domain.Review, error)
	UpdateReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, id string) error
	ListItemReviews(ctx context.Context, itemID string) ([]domain.Review, error)
}

// ReviewCache holds short-lived markers that reject double submissions
// before they reach the database.
type ReviewCache interface {
	MarkedReviewID(ctx context.Context, userID, itemID string) (string, error)
	MarkReview(ctx context.Context, review *domain.Review) error
	UnmarkReview(ctx context.Context, userID, itemID string) error
}

type ReviewPublisher interface {
	PublishReviewEvent(ctx context.Context, event domain.ReviewEvent) error
}

var (
	_ ReviewServiceInterface = (*ReviewService)(nil)
	_ ReviewRepository       = (*storage.PostgresRepository)(nil)
	_ ReviewCache            = (*storage.RedisCache)(nil)
	_ ReviewPublisher        = (*storage.KafkaPublisher)(nil)
)
