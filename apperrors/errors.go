package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes share the vocabulary the mobile client already handles for
// callable functions.
const (
	CodeInvalidArgument  = "invalid-argument"
	CodeUnauthenticated  = "unauthenticated"
	CodePermissionDenied = "permission-denied"
	CodeNotFound         = "not-found"
	CodeAlreadyExists    = "already-exists"
	CodeInternal         = "internal"
	CodeUnavailable      = "unavailable"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("resource not found")
	ErrAlreadyExists    = errors.New("resource already exists")
	ErrInternal         = errors.New("internal error")
	ErrUnavailable      = errors.New("service unavailable")
)

// AppError carries an error code and the HTTP status it maps to.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func InvalidArgument(message string) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

func Unauthenticated(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthenticated,
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthenticated,
	}
}

func PermissionDenied(message string) *AppError {
	return &AppError{
		Code:    CodePermissionDenied,
		Message: message,
		Status:  http.StatusForbidden,
		Err:     ErrPermissionDenied,
	}
}

// NotFound creates a 404 error for the named resource.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

func AlreadyExists(message string) *AppError {
	return &AppError{
		Code:    CodeAlreadyExists,
		Message: message,
		Status:  http.StatusConflict,
		Err:     ErrAlreadyExists,
	}
}

// Internal hides err from the client but keeps it for logging.
func Internal(message string, err error) *AppError {
	if message == "" {
		message = "an internal error occurred"
	}
	if err == nil {
		err = ErrInternal
	}
	return &AppError{
		Code:    CodeInternal,
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Unavailable(message string, err error) *AppError {
	return &AppError{
		Code:    CodeUnavailable,
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// HTTPStatus returns the HTTP status code for err.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the error code for err, falling back to the sentinel it wraps.
func Code(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch HTTPStatus(err) {
	case http.StatusBadRequest:
		return CodeInvalidArgument
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeAlreadyExists
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
