package core

import (
	"context"
	"errors"
	"testing"

	"wastesync-backend-go/internal/models"
)

// fakeRouteClient returns a scripted path per consecutive-pair call.
type fakeRouteClient struct {
	paths []struct {
		points []models.Coordinate
		err    error
	}
	calls int
}

func (f *fakeRouteClient) DrivingPath(ctx context.Context, origin, destination models.Coordinate) ([]models.Coordinate, error) {
	i := f.calls
	f.calls++
	if i >= len(f.paths) {
		return nil, nil
	}
	return f.paths[i].points, f.paths[i].err
}

type fakeETAClient struct{ text string }

func (f *fakeETAClient) ETA(ctx context.Context, origin, destination models.Coordinate) string {
	return f.text
}

func threeStops() []models.AreaProgress {
	return []models.AreaProgress{
		{AreaID: "a", Name: "A", Completed: true, Lat: 6.90, Lng: 79.85},
		{AreaID: "b", Name: "B", Completed: false, Lat: 6.91, Lng: 79.86},
		{AreaID: "c", Name: "C", Completed: false, Lat: 6.92, Lng: 79.87},
	}
}

func TestBuildOverlaySkipsEmptyLegSilently(t *testing.T) {
	fiveLegPoints := []models.Coordinate{
		{Lat: 6.900, Lng: 79.850}, {Lat: 6.902, Lng: 79.852}, {Lat: 6.904, Lng: 79.854},
		{Lat: 6.906, Lng: 79.856}, {Lat: 6.910, Lng: 79.860},
	}
	client := &fakeRouteClient{}
	client.paths = append(client.paths,
		struct {
			points []models.Coordinate
			err    error
		}{points: fiveLegPoints},
		struct {
			points []models.Coordinate
			err    error
		}{points: nil}, // B→C comes back empty
	)

	svc := NewRouteService(nil, nil, client, &fakeETAClient{})
	overlay := svc.BuildOverlay(context.Background(), threeStops())

	if len(overlay.Legs) != 1 {
		t.Fatalf("len(legs) = %d, want 1 (empty leg must be skipped)", len(overlay.Legs))
	}
	if len(overlay.Legs[0].Points) != 5 {
		t.Fatalf("leg points = %d, want 5", len(overlay.Legs[0].Points))
	}
	if len(overlay.Markers) != 3 {
		t.Fatalf("len(markers) = %d, want 3 (all stops keep markers)", len(overlay.Markers))
	}
}

func TestBuildOverlayFailedLegIsNotAnError(t *testing.T) {
	client := &fakeRouteClient{}
	client.paths = append(client.paths,
		struct {
			points []models.Coordinate
			err    error
		}{err: errors.New("provider down")},
		struct {
			points []models.Coordinate
			err    error
		}{points: []models.Coordinate{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}},
	)

	svc := NewRouteService(nil, nil, client, &fakeETAClient{})
	overlay := svc.BuildOverlay(context.Background(), threeStops())

	if len(overlay.Legs) != 1 {
		t.Fatalf("len(legs) = %d, want 1: failed leg skipped, later leg kept", len(overlay.Legs))
	}
}

func TestBuildOverlayMarkerColors(t *testing.T) {
	svc := NewRouteService(nil, nil, &fakeRouteClient{}, &fakeETAClient{})
	overlay := svc.BuildOverlay(context.Background(), threeStops())

	if overlay.Markers[0].Color != MarkerColorCompleted {
		t.Errorf("completed stop color = %q, want %q", overlay.Markers[0].Color, MarkerColorCompleted)
	}
	if overlay.Markers[1].Color != MarkerColorPending {
		t.Errorf("pending stop color = %q, want %q", overlay.Markers[1].Color, MarkerColorPending)
	}
}

func TestBuildOverlayBoundsFromLegPoints(t *testing.T) {
	client := &fakeRouteClient{}
	client.paths = append(client.paths, struct {
		points []models.Coordinate
		err    error
	}{points: []models.Coordinate{{Lat: 6.80, Lng: 79.80}, {Lat: 6.95, Lng: 79.95}}})

	svc := NewRouteService(nil, nil, client, &fakeETAClient{})
	overlay := svc.BuildOverlay(context.Background(), threeStops())

	if overlay.Bounds == nil {
		t.Fatal("bounds missing")
	}
	if overlay.Bounds.MinLat != 6.80 || overlay.Bounds.MaxLat != 6.95 {
		t.Errorf("lat bounds = [%v, %v], want [6.80, 6.95]", overlay.Bounds.MinLat, overlay.Bounds.MaxLat)
	}
	if overlay.Bounds.MinLng != 79.80 || overlay.Bounds.MaxLng != 79.95 {
		t.Errorf("lng bounds = [%v, %v], want [79.80, 79.95]", overlay.Bounds.MinLng, overlay.Bounds.MaxLng)
	}
}

func TestBuildOverlayBoundsFallBackToMarkers(t *testing.T) {
	// No leg returns points; the camera still frames the markers.
	svc := NewRouteService(nil, nil, &fakeRouteClient{}, &fakeETAClient{})
	overlay := svc.BuildOverlay(context.Background(), threeStops())

	if overlay.Bounds == nil {
		t.Fatal("bounds should fall back to markers when no leg has points")
	}
	if overlay.Bounds.MinLat != 6.90 || overlay.Bounds.MaxLat != 6.92 {
		t.Errorf("marker-derived lat bounds = [%v, %v]", overlay.Bounds.MinLat, overlay.Bounds.MaxLat)
	}
}

func TestBuildOverlayNoStops(t *testing.T) {
	svc := NewRouteService(nil, nil, &fakeRouteClient{}, &fakeETAClient{})
	overlay := svc.BuildOverlay(context.Background(), nil)

	if len(overlay.Markers) != 0 || len(overlay.Legs) != 0 || overlay.Bounds != nil {
		t.Fatalf("empty stop list should yield empty overlay, got %+v", overlay)
	}
}

func TestETAPassThrough(t *testing.T) {
	svc := NewRouteService(nil, nil, &fakeRouteClient{}, &fakeETAClient{text: "22 mins"})
	if got := svc.ETA(context.Background(), models.Coordinate{}, models.Coordinate{}); got != "22 mins" {
		t.Fatalf("ETA = %q", got)
	}
}
