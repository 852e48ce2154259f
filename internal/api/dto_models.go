package api

import "wastesync-backend-go/internal/models"

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// OverlayRequest carries the ordered stop list the map overlay is built for.
type OverlayRequest struct {
	Stops []models.AreaProgress `json:"stops" binding:"required"`
}

// ETAResponse wraps the duration text (or the "N/A" sentinel).
type ETAResponse struct {
	ETA string `json:"eta"`
}

// VerificationResponse reports the identity's email-verified flag.
type VerificationResponse struct {
	EmailVerified bool `json:"emailVerified"`
}

// SendVerificationRequest carries the ID token the verification mail is
// issued against.
type SendVerificationRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
