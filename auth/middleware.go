package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/httputil"
	"fooddelivery/logging"
)

// Middleware requires a valid bearer token and stores the caller identity in
// the request context.
func Middleware(v Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.WriteError(w, r, apperrors.Unauthenticated("missing authorization header"), logger)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httputil.WriteError(w, r, apperrors.Unauthenticated("invalid authorization header format"), logger)
				return
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				httputil.WriteError(w, r, apperrors.Unauthenticated("missing bearer token"), logger)
				return
			}

			id, err := v.Verify(r.Context(), token)
			if err != nil {
				logging.FromContext(r.Context(), logger).Debug("token rejected", zap.Error(err))
				httputil.WriteError(w, r, apperrors.Unauthenticated("invalid or expired token"), logger)
				return
			}

			ctx := ContextWithIdentity(r.Context(), id)
			ctx = logging.NewContext(ctx, logging.FromContext(ctx, logger).With(zap.String("uid", id.UID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
