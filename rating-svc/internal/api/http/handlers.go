package httpapi

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/httputil"
	"fooddelivery/logging"
	"fooddelivery/rating-svc/internal/domain"
	"fooddelivery/rating-svc/internal/service"
)

const EventTokenHeader = "X-Event-Token"

type Handler struct {
	Ratings    service.RatingReaderInterface
	Dispatcher service.DispatcherInterface
	// PushToken guards the event push endpoint when non-empty.
	PushToken string
	Logger    *zap.Logger
}

func NewHandler(ratings service.RatingReaderInterface, dispatcher service.DispatcherInterface, pushToken string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Ratings: ratings, Dispatcher: dispatcher, PushToken: pushToken, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/internal/v1/events/reviews", h.pushReviewEvent).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/restaurants/{restaurantId}/rating", h.getRestaurantRating).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/restaurants/{restaurantId}/top-items", h.getTopItems).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/restaurants/{restaurantId}/menu-items/{itemId}/rating", h.getItemRating).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/restaurants/{restaurantId}/menu-items/{itemId}/review-qr", h.getReviewQR).Methods(http.MethodGet)
}

// pushReviewEvent accepts store change events pushed over HTTP. A 5xx makes
// the pushing platform redeliver the event.
func (h *Handler) pushReviewEvent(w http.ResponseWriter, r *http.Request) {
	if h.PushToken != "" {
		got := r.Header.Get(EventTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.PushToken)) != 1 {
			httputil.WriteError(w, r, apperrors.Unauthenticated("invalid event token"), h.Logger)
			return
		}
	}

	var event domain.ReviewEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidArgument("invalid review event"), h.Logger)
		return
	}

	ctx := logging.NewContext(r.Context(), logging.FromContext(r.Context(), h.Logger).With(
		zap.String("event_id", event.EventID),
		zap.String("review_id", event.ReviewID),
		zap.String("type", string(event.Type)),
	))
	if err := h.Dispatcher.Dispatch(ctx, event); err != nil {
		httputil.WriteError(w, r, apperrors.Internal("review event processing failed", err), h.Logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRestaurantRating(w http.ResponseWriter, r *http.Request) {
	rating, err := h.Ratings.RestaurantRating(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rating)
}

func (h *Handler) getItemRating(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	item, err := h.Ratings.ItemRating(r.Context(), vars["restaurantId"], vars["itemId"])
	if err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) getTopItems(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, r, apperrors.InvalidArgument("limit must be a positive integer"), h.Logger)
			return
		}
		limit = n
	}

	items, err := h.Ratings.TopItems(r.Context(), mux.Vars(r)["restaurantId"], limit)
	if err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	if items == nil {
		items = []domain.ItemRating{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) getReviewQR(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	png, err := h.Ratings.ReviewQRCode(vars["restaurantId"], vars["itemId"])
	if err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(png)
}
