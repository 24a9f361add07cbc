package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"fooddelivery/middleware"
)

func NewRouter(handler *Handler, logger *zap.Logger, corsOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.PrometheusMetrics("revenue-svc"))
	handler.RegisterRoutes(r)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return middleware.Chain(r,
		middleware.RequestLogging(logger),
		middleware.Recovery(logger),
		middleware.CORS(corsOrigins),
	)
}
