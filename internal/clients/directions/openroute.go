package directions

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"wastesync-backend-go/internal/models"
)

// OpenRouteClient is a resty-backed RouteClient for the OpenRouteService
// driving-car endpoint.
type OpenRouteClient struct {
	httpClient *resty.Client
}

// NewOpenRouteClient builds an OpenRouteService client. The API key travels
// in the Authorization header, per the provider's contract.
func NewOpenRouteClient(baseURL, apiKey string) *OpenRouteClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Authorization", apiKey).
		SetHeader("Accept", "application/json").
		SetTimeout(15 * time.Second)

	return &OpenRouteClient{httpClient: restyClient}
}

// openRouteResponse mirrors the GeoJSON feature collection returned by the
// driving-car endpoint. Coordinates arrive as [lng, lat] pairs.
type openRouteResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// DrivingPath fetches the polyline between origin and destination. The
// provider's (lng,lat) pairs are flipped to (lat,lng). A response with no
// features or no coordinates yields an empty slice and no error.
func (c *OpenRouteClient) DrivingPath(ctx context.Context, origin, destination models.Coordinate) ([]models.Coordinate, error) {
	result := new(openRouteResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("start", fmt.Sprintf("%f,%f", origin.Lng, origin.Lat)).
		SetQueryParam("end", fmt.Sprintf("%f,%f", destination.Lng, destination.Lat)).
		SetResult(result).
		Get("/v2/directions/driving-car")
	if err != nil {
		return nil, fmt.Errorf("fetch driving path: %w", err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, fmt.Errorf("directions api error: status=%d, body=%s", resp.StatusCode(), resp.String())
	}

	if len(result.Features) == 0 {
		return nil, nil
	}

	coords := result.Features[0].Geometry.Coordinates
	path := make([]models.Coordinate, 0, len(coords))
	for _, pair := range coords {
		if len(pair) < 2 {
			continue
		}
		path = append(path, models.Coordinate{Lat: pair[1], Lng: pair[0]})
	}
	return path, nil
}
