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

// GoogleETAClient is a resty-backed ETAClient for the Google Directions API.
type GoogleETAClient struct {
	httpClient *resty.Client
	apiKey     string
}

// NewGoogleETAClient builds a Google Directions client. The key travels as a
// query parameter, per the provider's contract.
func NewGoogleETAClient(baseURL, apiKey string) *GoogleETAClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(15 * time.Second)

	return &GoogleETAClient{httpClient: restyClient, apiKey: apiKey}
}

// googleDirectionsResponse mirrors the slice of the Directions payload this
// client cares about: routes[0].legs[0].duration.text.
type googleDirectionsResponse struct {
	Routes []struct {
		Legs []struct {
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// ETA returns the first route's first leg's duration text. Any structural
// absence (no routes, no legs, empty duration) and any transport or HTTP
// failure resolve to the NotAvailable sentinel; this lookup never errors.
func (c *GoogleETAClient) ETA(ctx context.Context, origin, destination models.Coordinate) string {
	result := new(googleDirectionsResponse)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng)).
		SetQueryParam("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lng)).
		SetQueryParam("mode", "driving").
		SetQueryParam("key", c.apiKey).
		SetResult(result).
		Get("/directions/json")
	if err != nil || resp.StatusCode() >= http.StatusBadRequest {
		return NotAvailable
	}

	if len(result.Routes) == 0 || len(result.Routes[0].Legs) == 0 {
		return NotAvailable
	}
	text := result.Routes[0].Legs[0].Duration.Text
	if text == "" {
		return NotAvailable
	}
	return text
}
