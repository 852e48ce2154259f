package models

import "time"

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// AreaInfo is one ordered stop on a collection route.
type AreaInfo struct {
	AreaID string  `json:"areaId" firestore:"areaId"`
	Name   string  `json:"name" firestore:"name"`
	Lat    float64 `json:"lat" firestore:"lat"`
	Lng    float64 `json:"lng" firestore:"lng"`
}

// Route is a collection route maintained by back-office tooling. Read-only
// for this service's clients.
type Route struct {
	ID     string     `json:"id" firestore:"-"`
	Name   string     `json:"name" firestore:"name"`
	Areas  []AreaInfo `json:"areas" firestore:"areas"`
	Active bool       `json:"active" firestore:"active"`
}

// AreaProgress is the per-stop completion state within a day's run.
type AreaProgress struct {
	AreaID      string     `json:"areaId" firestore:"areaId"`
	Name        string     `json:"name" firestore:"name"`
	Completed   bool       `json:"completed" firestore:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty" firestore:"completedAt,omitempty"`
	Lat         float64    `json:"lat" firestore:"lat"`
	Lng         float64    `json:"lng" firestore:"lng"`
}

// RouteProgress is the per-route-per-day record written by field crews.
// Clients only ever read it, through a live subscription.
type RouteProgress struct {
	ID          string         `json:"id" firestore:"-"`
	RouteID     string         `json:"routeId" firestore:"routeId"`
	RouteName   string         `json:"routeName,omitempty" firestore:"routeName,omitempty"`
	Date        string         `json:"date" firestore:"date"` // yyyy-MM-dd
	CollectorID string         `json:"collectorId,omitempty" firestore:"collectorId,omitempty"`
	DriverID    string         `json:"driverId,omitempty" firestore:"driverId,omitempty"`
	TruckID     string         `json:"truckId,omitempty" firestore:"truckId,omitempty"`
	Areas       []AreaProgress `json:"areas" firestore:"areas"`
	Completed   bool           `json:"completed" firestore:"completed"`
	UpdatedAt   time.Time      `json:"updatedAt" firestore:"updatedAt,serverTimestamp"`
}
