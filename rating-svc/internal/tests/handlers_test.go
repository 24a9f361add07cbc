package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/httputil"
	httpapi "fooddelivery/rating-svc/internal/api/http"
	"fooddelivery/rating-svc/internal/domain"
	"fooddelivery/rating-svc/internal/mocks"
)

func setupTestRouter(ratings *mocks.RatingReaderInterface, dispatcher *mocks.DispatcherInterface, pushToken string) *mux.Router {
	handler := httpapi.NewHandler(ratings, dispatcher, pushToken, zap.NewNop())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestPushReviewEvent(t *testing.T) {
	validBody := `{"event_id":"e1","type":"created","review_id":"r1","after":{"menuItemId":"i1","restaurantId":"p1","rating":5}}`

	tests := []struct {
		name                string
		body                string
		token               string
		setupMockDispatcher func(*mocks.DispatcherInterface)
		wantCode            int
	}{
		{
			name:  "dispatched",
			body:  validBody,
			token: "s3cret",
			setupMockDispatcher: func(d *mocks.DispatcherInterface) {
				d.On("Dispatch", mock.Anything, mock.MatchedBy(func(e domain.ReviewEvent) bool {
					id, _ := e.After.MenuItemID()
					return e.Type == domain.EventCreated && id == "i1"
				})).Return(nil)
			},
			wantCode: http.StatusNoContent,
		},
		{
			name:  "recompute failure asks for redelivery",
			body:  validBody,
			token: "s3cret",
			setupMockDispatcher: func(d *mocks.DispatcherInterface) {
				d.On("Dispatch", mock.Anything, mock.Anything).Return(errors.New("store unavailable"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:                "bad body",
			body:                `{"type":`,
			token:               "s3cret",
			setupMockDispatcher: func(*mocks.DispatcherInterface) {},
			wantCode:            http.StatusBadRequest,
		},
		{
			name:                "wrong token",
			body:                validBody,
			token:               "guess",
			setupMockDispatcher: func(*mocks.DispatcherInterface) {},
			wantCode:            http.StatusUnauthorized,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dispatcher := mocks.NewDispatcherInterface(t)
			testCase.setupMockDispatcher(dispatcher)
			r := setupTestRouter(mocks.NewRatingReaderInterface(t), dispatcher, "s3cret")

			req := httptest.NewRequest(http.MethodPost, "/internal/v1/events/reviews", strings.NewReader(testCase.body))
			req.Header.Set(httpapi.EventTokenHeader, testCase.token)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetRestaurantRatingHandler(t *testing.T) {
	tests := []struct {
		name       string
		mockRating *domain.RestaurantRating
		mockError  error
		wantCode   int
	}{
		{
			name:       "success",
			mockRating: &domain.RestaurantRating{RestaurantID: "p1", RatingStats: domain.RatingStats{AverageRating: 4.33, TotalReviews: 3}},
			wantCode:   http.StatusOK,
		},
		{
			name:      "not found",
			mockError: apperrors.NotFound("restaurant", "p1"),
			wantCode:  http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ratings := mocks.NewRatingReaderInterface(t)
			ratings.On("RestaurantRating", mock.Anything, "p1").Return(testCase.mockRating, testCase.mockError)
			r := setupTestRouter(ratings, mocks.NewDispatcherInterface(t), "")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/p1/rating", nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				var body map[string]any
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, 4.33, body["averageRating"])
				assert.EqualValues(t, 3, body["totalReviews"])
				return
			}
			var body httputil.ErrorBody
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, apperrors.CodeNotFound, body.Error.Code)
		})
	}
}

func TestGetItemRatingHandler(t *testing.T) {
	ratings := mocks.NewRatingReaderInterface(t)
	ratings.On("ItemRating", mock.Anything, "p1", "i1").
		Return(&domain.ItemRating{ItemID: "i1", RestaurantID: "p1", RatingStats: domain.RatingStats{AverageRating: 5, TotalReviews: 1}}, nil)
	r := setupTestRouter(ratings, mocks.NewDispatcherInterface(t), "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/p1/menu-items/i1/rating", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"menuItemId":"i1"`)
}

func TestGetTopItemsHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLimit int
		wantCode  int
	}{
		{name: "default limit", query: "", wantLimit: 0, wantCode: http.StatusOK},
		{name: "explicit limit", query: "?limit=3", wantLimit: 3, wantCode: http.StatusOK},
		{name: "bad limit", query: "?limit=abc", wantLimit: -1, wantCode: http.StatusBadRequest},
		{name: "zero limit", query: "?limit=0", wantLimit: -1, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ratings := mocks.NewRatingReaderInterface(t)
			if testCase.wantLimit >= 0 {
				ratings.On("TopItems", mock.Anything, "p1", testCase.wantLimit).Return(nil, nil)
			}
			r := setupTestRouter(ratings, mocks.NewDispatcherInterface(t), "")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/p1/top-items"+testCase.query, nil))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				assert.JSONEq(t, `{"items":[]}`, w.Body.String())
			}
		})
	}
}

func TestGetReviewQRHandler(t *testing.T) {
	ratings := mocks.NewRatingReaderInterface(t)
	ratings.On("ReviewQRCode", "p1", "i1").Return([]byte("\x89PNG"), nil)
	r := setupTestRouter(ratings, mocks.NewDispatcherInterface(t), "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/p1/menu-items/i1/review-qr", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", w.Body.String())
}
