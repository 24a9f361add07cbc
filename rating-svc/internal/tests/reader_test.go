package tests

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/rating-svc/internal/domain"
	"fooddelivery/rating-svc/internal/mocks"
	"fooddelivery/rating-svc/internal/service"
)

type fakeQR struct{ err error }

func (f fakeQR) Generate(restaurantID, itemID string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(restaurantID + "/" + itemID), nil
}

func TestRatingReader_RestaurantRating(t *testing.T) {
	ctx := context.Background()
	cached := &domain.RestaurantRating{RestaurantID: "p1", RatingStats: domain.RatingStats{AverageRating: 4.2, TotalReviews: 9}}
	stored := &domain.RestaurantRating{RestaurantID: "p1", RatingStats: domain.RatingStats{AverageRating: 4.1, TotalReviews: 8}}

	tests := []struct {
		name       string
		setupCache func(*mocks.RatingCache)
		setupStore func(*mocks.RatingStore)
		want       *domain.RestaurantRating
		wantErr    error
	}{
		{
			name: "cache hit",
			setupCache: func(c *mocks.RatingCache) {
				c.On("GetRestaurantRating", ctx, "p1").Return(cached, nil)
			},
			setupStore: func(*mocks.RatingStore) {},
			want:       cached,
		},
		{
			name: "cache miss falls back to store",
			setupCache: func(c *mocks.RatingCache) {
				c.On("GetRestaurantRating", ctx, "p1").Return(nil, nil)
			},
			setupStore: func(s *mocks.RatingStore) {
				s.On("GetRestaurantRating", ctx, "p1").Return(stored, nil)
			},
			want: stored,
		},
		{
			name: "cache error falls back to store",
			setupCache: func(c *mocks.RatingCache) {
				c.On("GetRestaurantRating", ctx, "p1").Return(nil, errors.New("redis down"))
			},
			setupStore: func(s *mocks.RatingStore) {
				s.On("GetRestaurantRating", ctx, "p1").Return(stored, nil)
			},
			want: stored,
		},
		{
			name: "unknown restaurant",
			setupCache: func(c *mocks.RatingCache) {
				c.On("GetRestaurantRating", ctx, "p1").Return(nil, nil)
			},
			setupStore: func(s *mocks.RatingStore) {
				s.On("GetRestaurantRating", ctx, "p1").Return(nil, nil)
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cache := mocks.NewRatingCache(t)
			store := mocks.NewRatingStore(t)
			testCase.setupCache(cache)
			testCase.setupStore(store)

			got, err := service.NewRatingReader(store, cache, fakeQR{}, zap.NewNop()).RestaurantRating(ctx, "p1")
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestRatingReader_ItemRatingWithoutCache(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewRatingStore(t)
	store.On("GetItemRating", ctx, "p1", "i1").Return(nil, nil)

	_, err := service.NewRatingReader(store, nil, fakeQR{}, nil).ItemRating(ctx, "p1", "i1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRatingReader_TopItems(t *testing.T) {
	ctx := context.Background()

	t.Run("limit is clamped and cache used", func(t *testing.T) {
		cache := mocks.NewRatingCache(t)
		cache.On("TopItems", ctx, "p1", service.MaxTopItems).Return([]domain.ItemRating{{ItemID: "a"}}, nil)

		items, err := service.NewRatingReader(mocks.NewRatingStore(t), cache, fakeQR{}, nil).TopItems(ctx, "p1", 500)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("empty cache falls back to sorted store items", func(t *testing.T) {
		cache := mocks.NewRatingCache(t)
		cache.On("TopItems", ctx, "p1", 2).Return(nil, nil)
		store := mocks.NewRatingStore(t)
		store.On("ListRestaurantItems", ctx, "p1").Return([]domain.ItemRating{
			{ItemID: "low", RatingStats: domain.RatingStats{AverageRating: 2, TotalReviews: 3}},
			{ItemID: "high", RatingStats: domain.RatingStats{AverageRating: 5, TotalReviews: 1}},
			{ItemID: "mid", RatingStats: domain.RatingStats{AverageRating: 4, TotalReviews: 2}},
		}, nil)

		items, err := service.NewRatingReader(store, cache, fakeQR{}, nil).TopItems(ctx, "p1", 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "high", items[0].ItemID)
		assert.Equal(t, "mid", items[1].ItemID)
	})

	t.Run("default limit", func(t *testing.T) {
		cache := mocks.NewRatingCache(t)
		cache.On("TopItems", ctx, "p1", service.DefaultTopItems).Return([]domain.ItemRating{{ItemID: "a"}}, nil)

		_, err := service.NewRatingReader(mocks.NewRatingStore(t), cache, fakeQR{}, nil).TopItems(ctx, "p1", 0)
		assert.NoError(t, err)
	})
}

func TestRatingReader_ReviewQRCode(t *testing.T) {
	reader := service.NewRatingReader(nil, nil, fakeQR{}, nil)
	png, err := reader.ReviewQRCode("p1", "i1")
	require.NoError(t, err)
	assert.Equal(t, []byte("p1/i1"), png)

	_, err = reader.ReviewQRCode("", "i1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = service.NewRatingReader(nil, nil, fakeQR{err: errors.New("too long")}, nil).ReviewQRCode("p1", "i1")
	assert.Equal(t, http.StatusInternalServerError, apperrors.HTTPStatus(err))
}

func TestReviewLinkQR(t *testing.T) {
	qr := service.ReviewLinkQR{BaseURL: "https://fooddelivery.app"}
	assert.Equal(t, "https://fooddelivery.app/review?menuItemId=i+1&restaurantId=p1", qr.Link("p1", "i 1"))

	png, err := qr.Generate("p1", "i1")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
