package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"fooddelivery/rating-svc/internal/domain"
	"fooddelivery/rating-svc/internal/mocks"
	"fooddelivery/rating-svc/internal/service"
)

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	review := domain.Fields{"menuItemId": "i1", "restaurantId": "p1", "rating": 5.0}

	tests := []struct {
		name         string
		event        domain.ReviewEvent
		setupMockAgg func(*mocks.AggregatorInterface)
		wantErr      bool
	}{
		{
			name:  "created recomputes",
			event: domain.ReviewEvent{Type: domain.EventCreated, After: review},
			setupMockAgg: func(agg *mocks.AggregatorInterface) {
				agg.On("RecomputeItem", ctx, "i1", "p1").Return(nil)
			},
		},
		{
			name:         "created without menuItemId is skipped",
			event:        domain.ReviewEvent{Type: domain.EventCreated, After: domain.Fields{"restaurantId": "p1", "rating": 5.0}},
			setupMockAgg: func(*mocks.AggregatorInterface) {},
		},
		{
			name:         "created with non-string id is skipped",
			event:        domain.ReviewEvent{Type: domain.EventCreated, After: domain.Fields{"menuItemId": 7, "restaurantId": "p1"}},
			setupMockAgg: func(*mocks.AggregatorInterface) {},
		},
		{
			name: "updated rating recomputes with after ids",
			event: domain.ReviewEvent{
				Type:   domain.EventUpdated,
				Before: domain.Fields{"menuItemId": "old", "restaurantId": "p0", "rating": 3.0},
				After:  domain.Fields{"menuItemId": "i1", "restaurantId": "p1", "rating": 4.0},
			},
			setupMockAgg: func(agg *mocks.AggregatorInterface) {
				agg.On("RecomputeItem", ctx, "i1", "p1").Return(nil)
			},
		},
		{
			name: "updated with same rating is a no-op",
			event: domain.ReviewEvent{
				Type:   domain.EventUpdated,
				Before: domain.Fields{"menuItemId": "i1", "restaurantId": "p1", "rating": 4.0, "comment": "ok"},
				After:  domain.Fields{"menuItemId": "i1", "restaurantId": "p1", "rating": int64(4), "comment": "great"},
			},
			setupMockAgg: func(*mocks.AggregatorInterface) {},
		},
		{
			name: "updated without before image is skipped",
			event: domain.ReviewEvent{
				Type:  domain.EventUpdated,
				After: review,
			},
			setupMockAgg: func(*mocks.AggregatorInterface) {},
		},
		{
			name: "updated with after image missing ids is skipped",
			event: domain.ReviewEvent{
				Type:   domain.EventUpdated,
				Before: domain.Fields{"menuItemId": "i1", "restaurantId": "p1", "rating": 3.0},
				After:  domain.Fields{"rating": 4.0},
			},
			setupMockAgg: func(*mocks.AggregatorInterface) {},
		},
		{
			name:  "deleted recomputes",
			event: domain.ReviewEvent{Type: domain.EventDeleted, Before: review},
			setupMockAgg: func(agg *mocks.AggregatorInterface) {
				agg.On("RecomputeItem", ctx, "i1", "p1").Return(nil)
			},
		},
		{
			name:         "deleted without restaurantId is skipped",
			event:        domain.ReviewEvent{Type: domain.EventDeleted, Before: domain.Fields{"menuItemId": "i1"}},
			setupMockAgg: func(*mocks.AggregatorInterface) {},
		},
		{
			name:         "unknown type is ignored",
			event:        domain.ReviewEvent{Type: "archived", After: review},
			setupMockAgg: func(*mocks.AggregatorInterface) {},
		},
		{
			name:  "recompute failure is returned",
			event: domain.ReviewEvent{Type: domain.EventCreated, After: review},
			setupMockAgg: func(agg *mocks.AggregatorInterface) {
				agg.On("RecomputeItem", ctx, "i1", "p1").Return(errors.New("store unavailable"))
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			agg := mocks.NewAggregatorInterface(t)
			testCase.setupMockAgg(agg)

			err := service.NewDispatcher(agg, zap.NewNop()).Dispatch(ctx, testCase.event)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			agg.AssertExpectations(t)
		})
	}
}
