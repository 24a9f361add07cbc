package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"fooddelivery/apperrors"
	"fooddelivery/logging"
	"fooddelivery/route-svc/internal/domain"
)

var routeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "route_requests_total",
	Help: "Directions lookups by outcome.",
}, []string{"outcome"})

type DirectionsService struct {
	provider RouteProvider
	logger   *zap.Logger
}

func NewDirectionsService(provider RouteProvider, logger *zap.Logger) *DirectionsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectionsService{provider: provider, logger: logger}
}

// Directions maps provider failures onto client-facing errors: a missing
// route is not-found, anything else is internal.
func (s *DirectionsService) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.Route, error) {
	route, err := s.provider.Directions(ctx, req)
	switch {
	case errors.Is(err, domain.ErrNoRoute):
		routeRequests.WithLabelValues("no_route").Inc()
		return nil, &apperrors.AppError{
			Code:    apperrors.CodeNotFound,
			Message: "no route found between the given points",
			Status:  http.StatusNotFound,
			Err:     apperrors.ErrNotFound,
		}
	case err != nil:
		routeRequests.WithLabelValues("error").Inc()
		logging.FromContext(ctx, s.logger).Warn("directions lookup failed", zap.Error(err))
		return nil, apperrors.Internal("failed to compute route", err)
	}
	routeRequests.WithLabelValues("ok").Inc()
	return route, nil
}
