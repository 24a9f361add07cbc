package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/apperrors"
	"fooddelivery/rating-svc/internal/domain"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStore(db), mock
}

func TestPostgresStore_ListItemReviews(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "rating"}).
		AddRow("r1", 5.0).
		AddRow("r2", nil)
	mock.ExpectQuery("SELECT id, rating FROM reviews").
		WithArgs("item-1").
		WillReturnRows(rows)

	reviews, err := store.ListItemReviews(context.Background(), "item-1")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	require.NotNil(t, reviews[0].Rating)
	assert.Equal(t, 5.0, *reviews[0].Rating)
	assert.Nil(t, reviews[1].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateItemRating(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE menu_items").
					WithArgs(4.5, 2, "item-1", "rest-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing item",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE menu_items").
					WithArgs(4.5, 2, "item-1", "rest-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE menu_items").
					WillReturnError(errors.New("connection reset"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store, mock := newMockStore(t)
			testCase.setupMock(mock)

			err := store.UpdateItemRating(context.Background(), "rest-1", "item-1",
				domain.RatingStats{AverageRating: 4.5, TotalReviews: 2})

			switch {
			case testCase.name == "success":
				assert.NoError(t, err)
			case testCase.wantErr != nil:
				assert.ErrorIs(t, err, testCase.wantErr)
			default:
				assert.Error(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStore_ListRestaurantItems(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "average_rating", "total_reviews"}).
		AddRow("a", 5.0, 2).
		AddRow("b", 0.0, 0)
	mock.ExpectQuery("SELECT id, COALESCE\\(average_rating, 0\\), COALESCE\\(total_reviews, 0\\) FROM menu_items").
		WithArgs("rest-1").
		WillReturnRows(rows)

	items, err := store.ListRestaurantItems(context.Background(), "rest-1")

	require.NoError(t, err)
	assert.Equal(t, []domain.ItemRating{
		{ItemID: "a", RestaurantID: "rest-1", RatingStats: domain.RatingStats{AverageRating: 5, TotalReviews: 2}},
		{ItemID: "b", RestaurantID: "rest-1"},
	}, items)
}

func TestPostgresStore_UpdateRestaurantRating(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("UPDATE restaurants").
		WithArgs(4.33, 3, "rest-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateRestaurantRating(context.Background(), "rest-1",
		domain.RatingStats{AverageRating: 4.33, TotalReviews: 3})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetRestaurantRating_NotFound(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM restaurants").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "total_reviews"}))

	rating, err := store.GetRestaurantRating(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, rating)
}

func TestPostgresStore_GetItemRating(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("FROM menu_items").
		WithArgs("item-1", "rest-1").
		WillReturnRows(sqlmock.NewRows([]string{"average_rating", "total_reviews"}).AddRow(3.5, 4))

	item, err := store.GetItemRating(context.Background(), "rest-1", "item-1")

	require.NoError(t, err)
	assert.Equal(t, 3.5, item.AverageRating)
	assert.Equal(t, 4, item.TotalReviews)
}
