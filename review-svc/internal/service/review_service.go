package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
	"fooddelivery/review-svc/internal/domain"
)

var ErrDuplicateReview = errors.New("review already exists for this menu item")

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewCache
	publisher  ReviewPublisher
	logger     *zap.Logger
	now        func() time.Time
}

func NewReviewService(repository ReviewRepository, cache ReviewCache, publisher ReviewPublisher, logger *zap.Logger) *ReviewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a review. A user reviews a menu item at most once.
func (s *ReviewService) Create(ctx context.Context, userID string, input domain.CreateReviewInput) (*domain.Review, error) {
	exists, err := s.repository.MenuItemExists(ctx, input.MenuItemID, input.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("check menu item: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFound("menu item", input.MenuItemID)
	}

	if markedID, _ := s.cache.MarkedReviewID(ctx, userID, input.MenuItemID); markedID != "" {
		return nil, ErrDuplicateReview
	}
	existingID, err := s.repository.FindUserReviewID(ctx, userID, input.MenuItemID)
	if err != nil {
		return nil, fmt.Errorf("look up existing review: %w", err)
	}
	if existingID != "" {
		return nil, ErrDuplicateReview
	}

	now := s.now()
	review := &domain.Review{
		ID:           uuid.NewString(),
		MenuItemID:   input.MenuItemID,
		RestaurantID: input.RestaurantID,
		UserID:       userID,
		Rating:       input.Rating,
		Comment:      input.Comment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repository.InsertReview(ctx, review); err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}
	if err := s.publish(ctx, domain.EventCreated, review.ID, nil, review.Fields()); err != nil {
		s.revert(ctx, review.ID, func(ctx context.Context) error {
			return s.repository.DeleteReview(ctx, review.ID)
		})
		return nil, err
	}

	if err := s.cache.MarkReview(ctx, review); err != nil {
		logging.FromContext(ctx, s.logger).Warn("failed to set review marker", zap.Error(err))
	}
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, userID, reviewID string, input domain.UpdateReviewInput) (*domain.Review, error) {
	current, err := s.authoredReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Rating = input.Rating
	updated.Comment = input.Comment
	updated.UpdatedAt = s.now()
	if err := s.repository.UpdateReview(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	if err := s.publish(ctx, domain.EventUpdated, reviewID, current.Fields(), updated.Fields()); err != nil {
		s.revert(ctx, reviewID, func(ctx context.Context) error {
			return s.repository.UpdateReview(ctx, current)
		})
		return nil, err
	}
	return &updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, reviewID string) error {
	current, err := s.authoredReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}
	if err := s.repository.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if err := s.publish(ctx, domain.EventDeleted, reviewID, current.Fields(), nil); err != nil {
		s.revert(ctx, reviewID, func(ctx context.Context) error {
			return s.repository.InsertReview(ctx, current)
		})
		return err
	}

	if err := s.cache.UnmarkReview(ctx, userID, current.MenuItemID); err != nil {
		logging.FromContext(ctx, s.logger).Warn("failed to clear review marker", zap.Error(err))
	}
	return nil
}

func (s *ReviewService) ListItemReviews(ctx context.Context, itemID string) ([]domain.Review, error) {
	reviews, err := s.repository.ListItemReviews(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) authoredReview(ctx context.Context, userID, reviewID string) (*domain.Review, error) {
	review, err := s.repository.GetReview(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, apperrors.NotFound("review", reviewID)
	}
	if review.UserID != userID {
		return nil, apperrors.PermissionDenied("only the author can change this review")
	}
	return review, nil
}

// publish fails the mutation when the change event cannot be sent. Callers
// revert their write so a repeated request emits the event again.
func (s *ReviewService) publish(ctx context.Context, eventType domain.EventType, reviewID string, before, after map[string]any) error {
	event := domain.ReviewEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		ReviewID:  reviewID,
		Before:    before,
		After:     after,
		Timestamp: s.now(),
	}
	if err := s.publisher.PublishReviewEvent(ctx, event); err != nil {
		return apperrors.Internal("review change was not published, please retry", err)
	}
	logging.FromContext(ctx, s.logger).Debug("review event published",
		zap.String("event_id", event.EventID),
		zap.String("type", string(eventType)),
		zap.String("review_id", reviewID),
	)
	return nil
}

// revert runs even when the request context is already cancelled.
func (s *ReviewService) revert(ctx context.Context, reviewID string, undo func(context.Context) error) {
	if err := undo(context.WithoutCancel(ctx)); err != nil {
		logging.FromContext(ctx, s.logger).Error("failed to revert review after publish failure",
			zap.String("review_id", reviewID),
			zap.Error(err),
		)
	}
}
