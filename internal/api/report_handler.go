package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/models"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService core.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs core.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// mapReportErrorToStatus maps errors from core.ReportService to HTTP status codes.
func mapReportErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrReportNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrReportNotFound.Error()}
	case errors.Is(err, core.ErrExtraServiceNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrExtraServiceNotFound.Error()}
	case errors.Is(err, core.ErrForbiddenAccess):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: core.ErrForbiddenAccess.Error()}
	case errors.Is(err, core.ErrReportNotPending):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrReportNotPending.Error()}
	case errors.Is(err, core.ErrRequestNotPending):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrRequestNotPending.Error()}
	case errors.Is(err, core.ErrInvalidServiceDate):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: core.ErrInvalidServiceDate.Error()}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// CreateReport handles POST /reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), userID.(string), req)
	if err != nil {
		mapReportErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// UpdateReport handles PATCH /reports/:reportId
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	reportID := c.Param("reportId")
	if reportID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Report ID is required"})
		return
	}

	var req models.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	report, err := h.reportService.UpdateReport(c.Request.Context(), userID.(string), reportID, req)
	if err != nil {
		mapReportErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// DeleteReport handles DELETE /reports/:reportId. Deletion is permitted only while the
// report is still Pending.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}
	reportID := c.Param("reportId")
	if reportID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Report ID is required"})
		return
	}

	if err := h.reportService.DeleteReport(c.Request.Context(), userID.(string), reportID); err != nil {
		mapReportErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Report deleted"})
}

// StreamOwnReports handles GET /reports/stream, the live filtered read of
// the caller's own reports.
func (h *ReportHandler) StreamOwnReports(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	sub := h.reportService.ListenOwnReports(c.Request.Context(), userID.(string))
	streamSubscription(c, sub)
}
