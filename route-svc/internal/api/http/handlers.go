package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/auth"
	"fooddelivery/httputil"
	"fooddelivery/route-svc/internal/domain"
	"fooddelivery/route-svc/internal/service"
)

const maxRequestBody = 64 << 10

type Handler struct {
	Directions service.DirectionsServiceInterface
	Verifier   auth.Verifier
	Logger     *zap.Logger
}

func NewHandler(directions service.DirectionsServiceInterface, verifier auth.Verifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Directions: directions, Verifier: verifier, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware(h.Verifier, h.Logger))
	api.HandleFunc("/routes/directions", h.directions).Methods(http.MethodPost)
}

// directions accepts the coordinates either bare or wrapped in the callable
// envelope {"data": {...}}; envelope requests get {"result": {...}} back.
func (h *Handler) directions(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		httputil.WriteError(w, r, apperrors.InvalidArgument("unreadable request body"), h.Logger)
		return
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidArgument("invalid JSON body"), h.Logger)
		return
	}
	callable := len(envelope.Data) > 0 && !bytes.Equal(envelope.Data, []byte("null"))
	if callable {
		body = envelope.Data
	}

	var req domain.DirectionsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httputil.WriteError(w, r, apperrors.InvalidArgument("coordinates must be numbers"), h.Logger)
		return
	}
	if err := httputil.Validate(&req); err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}

	route, err := h.Directions.Directions(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	if callable {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"result": route})
		return
	}
	httputil.WriteJSON(w, http.StatusOK, route)
}
