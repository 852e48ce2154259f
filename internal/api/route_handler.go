package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/models"
)

// RouteHandler handles route, progress and map endpoints.
type RouteHandler struct {
	routeService core.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(rs core.RouteService) *RouteHandler {
	return &RouteHandler{routeService: rs}
}

// GetRoutes handles GET /routes
func (h *RouteHandler) GetRoutes(c *gin.Context) {
	routes, err := h.routeService.GetRoutes(c.Request.Context())
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	if routes == nil {
		routes = []*models.Route{}
	}
	c.JSON(http.StatusOK, routes)
}

// StreamRoutes handles GET /routes/stream, the live all-routes read.
func (h *RouteHandler) StreamRoutes(c *gin.Context) {
	sub := h.routeService.ListenRoutes(c.Request.Context())
	streamSubscription(c, sub)
}

// StreamProgress handles GET /route-progress/stream, the live, unfiltered
// route-progress read.
func (h *RouteHandler) StreamProgress(c *gin.Context) {
	sub := h.routeService.ListenProgress(c.Request.Context())
	streamSubscription(c, sub)
}

// BuildOverlay handles POST /map/overlay. It synthesizes markers, legs and
// camera bounds for an ordered stop list. Partial leg failures never fail
// the request.
func (h *RouteHandler) BuildOverlay(c *gin.Context) {
	var req OverlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	overlay := h.routeService.BuildOverlay(c.Request.Context(), req.Stops)
	c.JSON(http.StatusOK, overlay)
}

// ETA handles GET /map/eta and returns the duration text or "N/A".
func (h *RouteHandler) ETA(c *gin.Context) {
	origin, ok1 := parseCoordinate(c, "originLat", "originLng")
	destination, ok2 := parseCoordinate(c, "destLat", "destLng")
	if !ok1 || !ok2 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "originLat, originLng, destLat and destLng query parameters are required"})
		return
	}

	eta := h.routeService.ETA(c.Request.Context(), origin, destination)
	c.JSON(http.StatusOK, ETAResponse{ETA: eta})
}

func parseCoordinate(c *gin.Context, latKey, lngKey string) (models.Coordinate, bool) {
	lat, err1 := strconv.ParseFloat(c.Query(latKey), 64)
	lng, err2 := strconv.ParseFloat(c.Query(lngKey), 64)
	if err1 != nil || err2 != nil {
		return models.Coordinate{}, false
	}
	return models.Coordinate{Lat: lat, Lng: lng}, true
}
