package service

import (
	"context"

	"go.uber.org/zap"

	"fooddelivery/logging"
	"fooddelivery/rating-svc/internal/domain"
)

// Dispatcher maps review document changes onto item recomputations. Records
// without both identifiers are skipped, never reported as errors.
type Dispatcher struct {
	aggregator AggregatorInterface
	logger     *zap.Logger
}

func NewDispatcher(aggregator AggregatorInterface, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{aggregator: aggregator, logger: logger}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event domain.ReviewEvent) error {
	switch event.Type {
	case domain.EventCreated:
		return d.OnReviewCreated(ctx, event.After)
	case domain.EventUpdated:
		return d.OnReviewUpdated(ctx, event.Before, event.After)
	case domain.EventDeleted:
		return d.OnReviewDeleted(ctx, event.Before)
	default:
		logging.FromContext(ctx, d.logger).Warn("unknown review event type",
			zap.String("type", string(event.Type)),
			zap.String("event_id", event.EventID),
		)
		return nil
	}
}

func (d *Dispatcher) OnReviewCreated(ctx context.Context, after domain.Fields) error {
	return d.recompute(ctx, after, "created")
}

// OnReviewUpdated recomputes the after-image's item only when the rating
// changed.
func (d *Dispatcher) OnReviewUpdated(ctx context.Context, before, after domain.Fields) error {
	log := logging.FromContext(ctx, d.logger)
	if before == nil || after == nil {
		log.Debug("skipping review update without both images")
		return nil
	}
	if _, ok := before.MenuItemID(); !ok {
		log.Debug("skipping review update: before image missing menuItemId")
		return nil
	}
	if _, ok := before.RestaurantID(); !ok {
		log.Debug("skipping review update: before image missing restaurantId")
		return nil
	}
	if domain.SameRating(before, after) {
		log.Debug("rating unchanged, skipping recomputation")
		return nil
	}
	return d.recompute(ctx, after, "updated")
}

func (d *Dispatcher) OnReviewDeleted(ctx context.Context, before domain.Fields) error {
	return d.recompute(ctx, before, "deleted")
}

func (d *Dispatcher) recompute(ctx context.Context, image domain.Fields, kind string) error {
	itemID, ok := image.MenuItemID()
	if !ok {
		logging.FromContext(ctx, d.logger).Debug("skipping review without menuItemId", zap.String("event", kind))
		return nil
	}
	restaurantID, ok := image.RestaurantID()
	if !ok {
		logging.FromContext(ctx, d.logger).Debug("skipping review without restaurantId", zap.String("event", kind))
		return nil
	}
	return d.aggregator.RecomputeItem(ctx, itemID, restaurantID)
}
