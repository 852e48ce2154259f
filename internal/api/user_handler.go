package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/models"
)

// UserHandler handles profile endpoints.
type UserHandler struct {
	authService core.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(as core.AuthService) *UserHandler {
	return &UserHandler{authService: as}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID.(string), req)
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// StreamProfile handles GET /users/me/stream, the live profile read.
func (h *UserHandler) StreamProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	sub := h.authService.ListenProfile(c.Request.Context(), userID.(string))
	streamSubscription(c, sub)
}

// SetOnboarding handles PUT /users/me/onboarding
func (h *UserHandler) SetOnboarding(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	var req models.SetOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.authService.SetOnboardingCompleted(c.Request.Context(), userID.(string), req.Completed); err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Onboarding preference saved"})
}
