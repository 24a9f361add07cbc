package domain

import "errors"

// ErrNoRoute means the provider found no drivable route between the points.
var ErrNoRoute = errors.New("no route found")

// DirectionsRequest carries coordinates in degrees. Pointers keep a
// legitimate 0 apart from a missing field.
type DirectionsRequest struct {
	StartLat *float64 `json:"startLat" validate:"required,latitude"`
	StartLon *float64 `json:"startLon" validate:"required,longitude"`
	EndLat   *float64 `json:"endLat" validate:"required,latitude"`
	EndLon   *float64 `json:"endLon" validate:"required,longitude"`
}

type Route struct {
	EncodedPolyline string  `json:"encodedPolyline"`
	DistanceMeters  float64 `json:"distanceMeters"`
}
