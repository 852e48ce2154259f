package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/models"
)

// ExtraServiceHandler handles extra pickup request endpoints.
type ExtraServiceHandler struct {
	extraService core.ExtraServiceService
}

// NewExtraServiceHandler creates a new ExtraServiceHandler.
func NewExtraServiceHandler(es core.ExtraServiceService) *ExtraServiceHandler {
	return &ExtraServiceHandler{extraService: es}
}

// Request handles POST /extra-services
func (h *ExtraServiceHandler) Request(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.CreateExtraServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	request, err := h.extraService.Request(c.Request.Context(), userID.(string), req)
	if err != nil {
		mapReportErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

// List handles GET /extra-services
func (h *ExtraServiceHandler) List(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	requests, err := h.extraService.List(c.Request.Context(), userID.(string))
	if err != nil {
		mapReportErrorToStatus(c, err)
		return
	}
	if requests == nil {
		requests = []*models.ExtraServiceRequest{}
	}
	c.JSON(http.StatusOK, requests)
}

// Delete handles DELETE /extra-services/:requestId
func (h *ExtraServiceHandler) Delete(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	requestID := c.Param("requestId")
	if requestID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Request ID is required"})
		return
	}

	if err := h.extraService.Delete(c.Request.Context(), userID.(string), requestID); err != nil {
		mapReportErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Extra service request deleted"})
}
