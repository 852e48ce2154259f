package directions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wastesync-backend-go/internal/models"
)

func TestDrivingPathFlipsCoordinatePairs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/v2/directions/driving-car" {
			t.Errorf("path = %q", got)
		}
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("missing api key header")
		}
		if r.URL.Query().Get("start") == "" || r.URL.Query().Get("end") == "" {
			t.Errorf("missing start/end query params: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[{"geometry":{"coordinates":[[79.91,6.84],[79.92,6.85]]}}]}`))
	}))
	defer srv.Close()

	client := NewOpenRouteClient(srv.URL, "test-key")
	path, err := client.DrivingPath(context.Background(),
		models.Coordinate{Lat: 6.84, Lng: 79.91},
		models.Coordinate{Lat: 6.85, Lng: 79.92})
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 2 {
		t.Fatalf("len(path) = %d, want 2", len(path))
	}
	if path[0].Lat != 6.84 || path[0].Lng != 79.91 {
		t.Errorf("coordinate order not flipped: %+v", path[0])
	}
}

func TestDrivingPathEmptyFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	client := NewOpenRouteClient(srv.URL, "test-key")
	path, err := client.DrivingPath(context.Background(), models.Coordinate{}, models.Coordinate{})
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 0 {
		t.Fatalf("empty feature collection should yield empty path, got %d points", len(path))
	}
}

func TestDrivingPathHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewOpenRouteClient(srv.URL, "test-key")
	if _, err := client.DrivingPath(context.Background(), models.Coordinate{}, models.Coordinate{}); err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}

func TestETAReturnsDurationText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("mode") != "driving" || q.Get("key") != "g-key" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"routes":[{"legs":[{"duration":{"text":"14 mins"}}]}]}`))
	}))
	defer srv.Close()

	client := NewGoogleETAClient(srv.URL, "g-key")
	got := client.ETA(context.Background(), models.Coordinate{Lat: 1, Lng: 2}, models.Coordinate{Lat: 3, Lng: 4})
	if got != "14 mins" {
		t.Fatalf("ETA = %q, want %q", got, "14 mins")
	}
}

func TestETAMissingRoutesIsNA(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ZERO_RESULTS"}`))
	}))
	defer srv.Close()

	client := NewGoogleETAClient(srv.URL, "g-key")
	if got := client.ETA(context.Background(), models.Coordinate{}, models.Coordinate{}); got != NotAvailable {
		t.Fatalf("ETA = %q, want %q", got, NotAvailable)
	}
}

func TestETATransportFailureIsNA(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewGoogleETAClient(srv.URL, "g-key")
	if got := client.ETA(context.Background(), models.Coordinate{}, models.Coordinate{}); got != NotAvailable {
		t.Fatalf("ETA = %q, want %q", got, NotAvailable)
	}
}
