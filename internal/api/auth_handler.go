package api

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/core"
	"wastesync-backend-go/internal/models"
)

// AuthHandler handles account endpoints: sign-up, sign-in and e-mail
// verification.
type AuthHandler struct {
	authService core.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as core.AuthService) *AuthHandler {
	return &AuthHandler{authService: as}
}

// mapAuthErrorToStatus maps errors from core.AuthService to HTTP status codes.
func mapAuthErrorToStatus(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrUserNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: core.ErrUserNotFound.Error()}
	case errors.Is(err, core.ErrProfileWriteAfterSignUp):
		// The identity exists but the profile is missing; 502 tells the
		// client the account is half-created and sign-up can be retried.
		statusCode = http.StatusBadGateway
		errResponse = ErrorResponse{Error: core.ErrProfileWriteAfterSignUp.Error(), Details: err.Error()}
	case errors.Is(err, core.ErrEmailAlreadyInUse), strings.Contains(err.Error(), "EMAIL_EXISTS"):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: core.ErrEmailAlreadyInUse.Error()}
	case strings.Contains(err.Error(), "INVALID_PASSWORD"), strings.Contains(err.Error(), "EMAIL_NOT_FOUND"), strings.Contains(err.Error(), "INVALID_LOGIN_CREDENTIALS"):
		statusCode = http.StatusUnauthorized
		errResponse = ErrorResponse{Error: "Invalid e-mail or password"}
	default:
		log.Printf("Internal Server Error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred."}
	}
	c.JSON(statusCode, errResponse)
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), req)
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	tokens, err := h.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// SendVerificationEmail handles POST /auth/verification/send
func (h *AuthHandler) SendVerificationEmail(c *gin.Context) {
	var req SendVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload", Details: err.Error()})
		return
	}

	if err := h.authService.SendVerificationEmail(c.Request.Context(), req.IDToken); err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Verification e-mail sent"})
}

// EmailVerified handles GET /auth/verification. It reloads the caller's
// identity and reports the verified flag.
func (h *AuthHandler) EmailVerified(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User ID not found in context"})
		return
	}

	verified, err := h.authService.EmailVerified(c.Request.Context(), userID.(string))
	if err != nil {
		mapAuthErrorToStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, VerificationResponse{EmailVerified: verified})
}
