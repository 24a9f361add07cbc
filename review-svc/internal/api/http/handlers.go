package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/auth"
	"fooddelivery/httputil"
	"fooddelivery/review-svc/internal/domain"
	"fooddelivery/review-svc/internal/service"
)

type Handler struct {
	Reviews  service.ReviewServiceInterface
	Verifier auth.Verifier
	Logger   *zap.Logger
}

func NewHandler(reviews service.ReviewServiceInterface, verifier auth.Verifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Reviews: reviews, Verifier: verifier, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/menu-items/{itemId}/reviews", h.listItemReviews).Methods(http.MethodGet)

	authed := r.PathPrefix("/api/v1/reviews").Subrouter()
	authed.Use(auth.Middleware(h.Verifier, h.Logger))
	authed.HandleFunc("", h.createReview).Methods(http.MethodPost)
	authed.HandleFunc("/{reviewId}", h.updateReview).Methods(http.MethodPut)
	authed.HandleFunc("/{reviewId}", h.deleteReview).Methods(http.MethodDelete)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	var input domain.CreateReviewInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}

	review, err := h.Reviews.Create(r.Context(), id.UID, input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	var input domain.UpdateReviewInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}

	review, err := h.Reviews.Update(r.Context(), id.UID, mux.Vars(r)["reviewId"], input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, review)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	if err := h.Reviews.Delete(r.Context(), id.UID, mux.Vars(r)["reviewId"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listItemReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.ListItemReviews(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"reviews": reviews})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrDuplicateReview) {
		err = apperrors.AlreadyExists(err.Error())
	}
	httputil.WriteError(w, r, err, h.Logger)
}
