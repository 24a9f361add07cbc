package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
)

// ErrorBody is the error envelope returned by every service.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing meaningful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to a status and error code. Internal errors are logged
// with their cause; the client only sees the generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *zap.Logger) {
	requestID := logging.RequestIDFromContext(r.Context())

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: ErrorDetail{
			Code:      apperrors.CodeInvalidArgument,
			Message:   "request validation failed",
			Fields:    valErr.Fields(),
			RequestID: requestID,
		}})
		return
	}

	status := apperrors.HTTPStatus(err)
	message := "an internal error occurred"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	} else if status != http.StatusInternalServerError {
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context(), fallback).Error("request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, ErrorBody{Error: ErrorDetail{
		Code:      apperrors.Code(err),
		Message:   message,
		RequestID: requestID,
	}})
}
