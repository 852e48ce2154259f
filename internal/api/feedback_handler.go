package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/models"
)

// FeedbackHandler handles worker feedback submission.
type FeedbackHandler struct {
	feedbackService core.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs core.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs}
}

// Submit handles POST /feedback, the fire-and-forget worker feedback write.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.feedbackService.Submit(c.Request.Context(), userID.(string), req); err != nil {
		if errors.Is(err, core.ErrInvalidRating) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: core.ErrInvalidRating.Error()})
			return
		}
		log.Printf("Internal Server Error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected internal server error occurred."})
		return
	}
	c.JSON(http.StatusCreated, SuccessResponse{Message: "Feedback submitted"})
}
