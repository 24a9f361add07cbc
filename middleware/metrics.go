package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
		[]string{"service"},
	)
)

// PrometheusMetrics records request counts and latency labelled by the mux
// route template. Mount it with Router.Use so the route is known.
func PrometheusMetrics(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpRequestsInFlight.WithLabelValues(service).Inc()
			defer httpRequestsInFlight.WithLabelValues(service).Dec()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			status := strconv.Itoa(rw.statusCode)
			path := RouteTemplate(r)
			httpRequestsTotal.WithLabelValues(service, r.Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(service, r.Method, path, status).Observe(time.Since(start).Seconds())
		})
	}
}

// RouteTemplate returns the matched mux path template, or "unknown".
func RouteTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unknown"
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil || tmpl == "" {
		return "unknown"
	}
	return tmpl
}
