package core

import (
	"context"
	"fmt"

	"wastesync-backend-go/internal/clients/directions"
	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

// Marker colors for map stops, keyed by completion state.
const (
	MarkerColorCompleted = "green"
	MarkerColorPending   = "red"
)

// Marker is one map pin per stop, colored by completion state.
type Marker struct {
	AreaID    string            `json:"areaId"`
	Name      string            `json:"name"`
	Position  models.Coordinate `json:"position"`
	Completed bool              `json:"completed"`
	Color     string            `json:"color"`
}

// Leg is the driving path between two consecutive stops.
type Leg struct {
	Points []models.Coordinate `json:"points"`
}

// BoundingBox frames the map camera around the overlay.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// RouteOverlay is the single published state update for the map: the full
// marker set, every leg that could be fetched, and the camera bounds.
type RouteOverlay struct {
	Markers []Marker     `json:"markers"`
	Legs    []Leg        `json:"legs"`
	Bounds  *BoundingBox `json:"bounds,omitempty"`
}

// routeService implements the RouteService interface.
type routeService struct {
	routeRepo    db.RouteRepository
	progressRepo db.RouteProgressRepository
	routeClient  directions.RouteClient
	etaClient    directions.ETAClient
}

// NewRouteService creates a new RouteService instance.
func NewRouteService(routeRepo db.RouteRepository, progressRepo db.RouteProgressRepository, routeClient directions.RouteClient, etaClient directions.ETAClient) RouteService {
	return &routeService{
		routeRepo:    routeRepo,
		progressRepo: progressRepo,
		routeClient:  routeClient,
		etaClient:    etaClient,
	}
}

// GetRoutes retrieves the route set once.
func (s *routeService) GetRoutes(ctx context.Context) ([]*models.Route, error) {
	routes, err := s.routeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get routes: %w", err)
	}
	return routes, nil
}

// ListenRoutes streams the full route set.
func (s *routeService) ListenRoutes(ctx context.Context) *result.Subscription[[]*models.Route] {
	return s.routeRepo.Listen(ctx)
}

// ListenProgress streams all route-progress documents.
func (s *routeService) ListenProgress(ctx context.Context) *result.Subscription[[]*models.RouteProgress] {
	return s.progressRepo.Listen(ctx)
}

// BuildOverlay fetches a driving leg for each consecutive stop pair and
// publishes markers, legs and bounds as one state update. A leg whose fetch
// fails or returns no points is skipped silently: it simply does not appear
// on the map, and the overlay still carries every marker and every leg that
// did succeed.
func (s *routeService) BuildOverlay(ctx context.Context, stops []models.AreaProgress) RouteOverlay {
	overlay := RouteOverlay{
		Markers: make([]Marker, 0, len(stops)),
		Legs:    make([]Leg, 0),
	}

	for _, stop := range stops {
		color := MarkerColorPending
		if stop.Completed {
			color = MarkerColorCompleted
		}
		overlay.Markers = append(overlay.Markers, Marker{
			AreaID:    stop.AreaID,
			Name:      stop.Name,
			Position:  models.Coordinate{Lat: stop.Lat, Lng: stop.Lng},
			Completed: stop.Completed,
			Color:     color,
		})
	}

	for i := 0; i+1 < len(stops); i++ {
		origin := models.Coordinate{Lat: stops[i].Lat, Lng: stops[i].Lng}
		destination := models.Coordinate{Lat: stops[i+1].Lat, Lng: stops[i+1].Lng}

		points, err := s.routeClient.DrivingPath(ctx, origin, destination)
		if err != nil || len(points) == 0 {
			continue
		}
		overlay.Legs = append(overlay.Legs, Leg{Points: points})
	}

	overlay.Bounds = overlayBounds(overlay)
	return overlay
}

// ETA returns the provider's duration text between two coordinates, or the
// "N/A" sentinel; the client never errors.
func (s *routeService) ETA(ctx context.Context, origin, destination models.Coordinate) string {
	return s.etaClient.ETA(ctx, origin, destination)
}

// overlayBounds computes the camera bounding box over every leg point,
// falling back to the markers alone when no leg returned any points. An
// overlay with neither has no bounds.
func overlayBounds(overlay RouteOverlay) *BoundingBox {
	var points []models.Coordinate
	for _, leg := range overlay.Legs {
		points = append(points, leg.Points...)
	}
	if len(points) == 0 {
		for _, marker := range overlay.Markers {
			points = append(points, marker.Position)
		}
	}
	if len(points) == 0 {
		return nil
	}

	bounds := &BoundingBox{
		MinLat: points[0].Lat, MaxLat: points[0].Lat,
		MinLng: points[0].Lng, MaxLng: points[0].Lng,
	}
	for _, p := range points[1:] {
		if p.Lat < bounds.MinLat {
			bounds.MinLat = p.Lat
		}
		if p.Lat > bounds.MaxLat {
			bounds.MaxLat = p.Lat
		}
		if p.Lng < bounds.MinLng {
			bounds.MinLng = p.Lng
		}
		if p.Lng > bounds.MaxLng {
			bounds.MaxLng = p.Lng
		}
	}
	return bounds
}
