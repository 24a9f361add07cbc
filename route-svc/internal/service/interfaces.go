package service

import (
	"context"

	"fooddelivery/route-svc/internal/domain"
	"fooddelivery/route-svc/internal/mapbox"
)

type DirectionsServiceInterface interface {
	Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.Route, error)
}

// RouteProvider is a directions backend.
type RouteProvider interface {
	Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.Route, error)
}

var (
	_ DirectionsServiceInterface = (*DirectionsService)(nil)
	_ RouteProvider              = (*mapbox.Client)(nil)
)
