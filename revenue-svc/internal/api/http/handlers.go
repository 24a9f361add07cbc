package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"fooddelivery/auth"
	"fooddelivery/httputil"
	"fooddelivery/revenue-svc/internal/domain"
	"fooddelivery/revenue-svc/internal/service"
)

type Handler struct {
	Revenue  service.RevenueServiceInterface
	Chat     service.ChatServiceInterface
	Verifier auth.Verifier
	Logger   *zap.Logger
}

func NewHandler(revenue service.RevenueServiceInterface, chat service.ChatServiceInterface, verifier auth.Verifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Revenue: revenue, Chat: chat, Verifier: verifier, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(auth.Middleware(h.Verifier, h.Logger))
	api.HandleFunc("/admin/revenue-report", h.revenueReport).Methods(http.MethodPost)
	api.HandleFunc("/chat/send", h.sendMessage).Methods(http.MethodPost)
	api.HandleFunc("/chat/{chatId}", h.listMessages).Methods(http.MethodGet)
}

func (h *Handler) revenueReport(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	var req domain.RevenueReportRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}

	report, err := h.Revenue.Report(r.Context(), id.UID, req)
	if err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	var input domain.SendMessageInput
	if err := httputil.DecodeAndValidate(r, &input); err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}

	if err := h.Chat.Send(r.Context(), id.UID, input); err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "message sent"})
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Chat.Messages(r.Context(), mux.Vars(r)["chatId"])
	if err != nil {
		httputil.WriteError(w, r, err, h.Logger)
		return
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"messages": messages})
}
