package models

// SignUpRequest represents the request body for creating an account.
type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	AreaID   string `json:"areaId,omitempty"`
	RouteID  string `json:"routeId,omitempty"`
}

// SignInRequest represents the request body for password sign-in.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest updates the caller's profile. Pointers distinguish
// "clear this field" from "field not provided".
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	PhotoURL *string `json:"photoURL,omitempty"`
	AreaID   *string `json:"areaId,omitempty"`
	RouteID  *string `json:"routeId,omitempty"`
}

// CreateReportRequest represents the request body for filing a report.
type CreateReportRequest struct {
	DriverID    string   `json:"driverId,omitempty"`
	CollectorID string   `json:"collectorId,omitempty"`
	RouteID     string   `json:"routeId" binding:"required"`
	AreaID      string   `json:"areaId" binding:"required"`
	AreaName    string   `json:"areaName,omitempty"`
	Description string   `json:"description" binding:"required"`
	Attachments []string `json:"attachments,omitempty"`
}

// UpdateReportRequest allows editing a report's free-text content while it
// is still pending.
type UpdateReportRequest struct {
	Description *string   `json:"description,omitempty"`
	Attachments *[]string `json:"attachments,omitempty"`
}

// CreateExtraServiceRequest represents the request body for an extra pickup.
type CreateExtraServiceRequest struct {
	AreaID      string `json:"areaId,omitempty"`
	RouteID     string `json:"routeId,omitempty"`
	Address     string `json:"address" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"` // yyyy-MM-dd
}

// SubmitFeedbackRequest represents the request body for worker feedback.
type SubmitFeedbackRequest struct {
	WorkerID   string `json:"workerId" binding:"required"`
	WorkerRole string `json:"workerRole,omitempty"`
	Rating     int    `json:"rating,omitempty"`
	Comment    string `json:"comment" binding:"required"`
}

// SetOnboardingRequest toggles the single persisted client preference.
type SetOnboardingRequest struct {
	Completed bool `json:"completed"`
}
