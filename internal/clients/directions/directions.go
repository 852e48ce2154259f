// Package directions wraps the two third-party routing providers the app
// consumes: one for driving polylines between stops, one for ETA text.
// Both are narrow request/response contracts; neither provider's routing
// internals are of any interest here.
package directions

import (
	"context"

	"wastesync-backend-go/internal/models"
)

// NotAvailable is the sentinel returned by ETA lookups whenever the
// response lacks a usable duration or the request fails outright. Callers
// handle this string, not a typed error.
const NotAvailable = "N/A"

// RouteClient fetches a driving path between two coordinates.
type RouteClient interface {
	// DrivingPath returns the polyline between origin and destination in
	// (lat,lng) order. Malformed or empty provider responses yield an empty
	// slice and no error; transport failures are returned as errors so the
	// overlay pipeline can decide to skip the leg.
	DrivingPath(ctx context.Context, origin, destination models.Coordinate) ([]models.Coordinate, error)
}

// ETAClient fetches a human-readable travel duration between two coordinates.
type ETAClient interface {
	// ETA returns the provider's duration text, or NotAvailable when the
	// response is structurally absent or the request fails. It never returns
	// an error.
	ETA(ctx context.Context, origin, destination models.Coordinate) string
}
