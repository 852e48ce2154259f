package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/models"
)

// HolidayHandler handles holiday schedule endpoints.
type HolidayHandler struct {
	holidayService core.HolidayService
}

// NewHolidayHandler creates a new HolidayHandler.
func NewHolidayHandler(hs core.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidayService: hs}
}

// List handles GET /holidays: all holidays, sorted ascending by date.
func (h *HolidayHandler) List(c *gin.Context) {
	holidays, err := h.holidayService.Holidays(c.Request.Context())
	if err != nil {
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	if holidays == nil {
		holidays = []*models.Holiday{}
	}
	c.JSON(http.StatusOK, holidays)
}
