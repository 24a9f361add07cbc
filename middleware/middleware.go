// Package middleware holds the HTTP middleware shared by every service.
package middleware

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/httputil"
	"fooddelivery/logging"
)

const RequestIDHeader = "X-Request-ID"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytes += n
	return n, err
}

// RequestLogging assigns a request id, stores a request-scoped logger in the
// context and logs one line per request.
func RequestLogging(base *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			reqLogger := base.With(zap.String("request_id", requestID))
			ctx := logging.WithRequestID(r.Context(), requestID)
			ctx = logging.NewContext(ctx, reqLogger)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			// Health and scrape traffic would drown everything else.
			if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
				return
			}
			reqLogger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.Int("bytes", wrapped.bytes),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

// Recovery turns a panic into a 500 response.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logging.FromContext(r.Context(), logger).Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("stack", string(debug.Stack())),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
					)
					httputil.WriteError(w, r, apperrors.ErrInternal, logger)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// CORS builds the cross-origin handler. An empty origin list, or "*", allows
// any origin without credentials.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{RequestIDHeader},
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && strings.TrimSpace(allowedOrigins[0]) == "*") {
		opts.AllowedOrigins = []string{"*"}
	} else {
		opts.AllowedOrigins = allowedOrigins
		opts.AllowCredentials = true
	}
	return cors.New(opts).Handler
}

// Chain applies middlewares so the first one listed is the outermost.
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
