package storage

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/apperrors"
	"fooddelivery/review-svc/internal/domain"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPostgresRepository_FindUserReviewID(t *testing.T) {
	tests := []struct {
		name   string
		rows   *sqlmock.Rows
		wantID string
	}{
		{name: "existing", rows: sqlmock.NewRows([]string{"id"}).AddRow("rev-1"), wantID: "rev-1"},
		{name: "none", rows: sqlmock.NewRows([]string{"id"})},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			mock.ExpectQuery("SELECT id FROM reviews").
				WithArgs("u1", "i1").
				WillReturnRows(testCase.rows)

			id, err := repo.FindUserReviewID(context.Background(), "u1", "i1")
			require.NoError(t, err)
			assert.Equal(t, testCase.wantID, id)
		})
	}
}

func TestPostgresRepository_InsertReview(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	review := &domain.Review{ID: "rev-1", MenuItemID: "i1", RestaurantID: "p1", UserID: "u1", Rating: 4, CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO reviews").
		WithArgs("rev-1", "i1", "p1", "u1", 4, "", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.InsertReview(context.Background(), review))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_GetReview(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery("FROM reviews WHERE id").
		WithArgs("rev-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "menu_item_id", "restaurant_id", "user_id", "rating", "comment", "created_at", "updated_at"}).
			AddRow("rev-1", "i1", "p1", "u1", 5, "tasty", now, now))
	mock.ExpectQuery("FROM reviews WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	review, err := repo.GetReview(context.Background(), "rev-1")
	require.NoError(t, err)
	assert.Equal(t, "u1", review.UserID)
	assert.Equal(t, 5, review.Rating)

	missing, err := repo.GetReview(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostgresRepository_DeleteReview(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("DELETE FROM reviews").WithArgs("rev-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM reviews").WithArgs("gone").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteReview(context.Background(), "rev-1"))
	assert.ErrorIs(t, repo.DeleteReview(context.Background(), "gone"), apperrors.ErrNotFound)
}

func TestPostgresRepository_ListItemReviews(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs("i1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "menu_item_id", "restaurant_id", "user_id", "rating", "comment", "created_at", "updated_at"}).
			AddRow("rev-2", "i1", "p1", "u2", 3, "", now, now).
			AddRow("rev-1", "i1", "p1", "u1", 5, "tasty", now.Add(-time.Hour), now))

	reviews, err := repo.ListItemReviews(context.Background(), "i1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "rev-2", reviews[0].ID)
}

func TestRedisCache_Markers(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	cache := NewRedisCache(client, time.Minute)
	ctx := context.Background()

	id, err := cache.MarkedReviewID(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, cache.MarkReview(ctx, &domain.Review{ID: "rev-1", UserID: "u1", MenuItemID: "i1"}))
	id, err = cache.MarkedReviewID(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.Equal(t, "rev-1", id)
	assert.Equal(t, time.Minute, mr.TTL("review-marker:i1:u1"))

	id, err = cache.MarkedReviewID(ctx, "u2", "i1")
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, cache.UnmarkReview(ctx, "u1", "i1"))
	assert.False(t, mr.Exists("review-marker:i1:u1"))
}

func TestRedisCache_MarkersDisabled(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	cache := NewRedisCache(client, 0)
	ctx := context.Background()

	require.NoError(t, cache.MarkReview(ctx, &domain.Review{ID: "rev-1", UserID: "u1", MenuItemID: "i1"}))
	assert.Empty(t, mr.Keys())

	id, err := cache.MarkedReviewID(ctx, "u1", "i1")
	require.NoError(t, err)
	assert.Empty(t, id)
}

type captureWriter struct {
	msgs []kafka.Message
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestKafkaPublisher_KeysByMenuItem(t *testing.T) {
	tests := []struct {
		name    string
		event   domain.ReviewEvent
		wantKey string
	}{
		{name: "created uses after image", event: domain.ReviewEvent{ReviewID: "r1", Type: domain.EventCreated, After: map[string]any{"menuItemId": "i1"}}, wantKey: "i1"},
		{name: "deleted uses before image", event: domain.ReviewEvent{ReviewID: "r1", Type: domain.EventDeleted, Before: map[string]any{"menuItemId": "i2"}}, wantKey: "i2"},
		{name: "falls back to review id", event: domain.ReviewEvent{ReviewID: "r1", Type: domain.EventDeleted}, wantKey: "r1"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			writer := &captureWriter{}
			require.NoError(t, NewKafkaPublisher(writer).PublishReviewEvent(context.Background(), testCase.event))
			require.Len(t, writer.msgs, 1)
			assert.Equal(t, testCase.wantKey, string(writer.msgs[0].Key))

			var decoded domain.ReviewEvent
			require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &decoded))
			assert.Equal(t, testCase.event.Type, decoded.Type)
		})
	}
}
