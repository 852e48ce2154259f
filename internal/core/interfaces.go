package core

import (
	"context"

	"wastesync-backend-go/internal/clients/identity"
	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

// AuthService defines the interface for account and profile operations.
type AuthService interface {
	// SignUp creates the auth identity and then writes the profile document.
	// The two steps are deliberately non-transactional: if the profile write
	// fails the identity still exists, and the returned error says so.
	SignUp(ctx context.Context, req models.SignUpRequest) (*models.User, error)
	SignIn(ctx context.Context, req models.SignInRequest) (*identity.SignInResponse, error)
	SendVerificationEmail(ctx context.Context, idToken string) error
	EmailVerified(ctx context.Context, userID string) (bool, error)

	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (*models.User, error)
	ListenProfile(ctx context.Context, userID string) *result.Subscription[*models.User]
	SetOnboardingCompleted(ctx context.Context, userID string, completed bool) error
}

// ReportService defines the interface for report operations.
type ReportService interface {
	CreateReport(ctx context.Context, userID string, req models.CreateReportRequest) (*models.Report, error)
	UpdateReport(ctx context.Context, userID, reportID string, req models.UpdateReportRequest) (*models.Report, error)
	DeleteReport(ctx context.Context, userID, reportID string) error
	ListenOwnReports(ctx context.Context, userID string) *result.Subscription[[]*models.Report]
}

// ExtraServiceService defines the interface for extra pickup requests.
type ExtraServiceService interface {
	Request(ctx context.Context, userID string, req models.CreateExtraServiceRequest) (*models.ExtraServiceRequest, error)
	List(ctx context.Context, userID string) ([]*models.ExtraServiceRequest, error)
	Delete(ctx context.Context, userID, requestID string) error
}

// RouteService defines the interface for route data, live progress and the
// map overlay pipeline.
type RouteService interface {
	GetRoutes(ctx context.Context) ([]*models.Route, error)
	ListenRoutes(ctx context.Context) *result.Subscription[[]*models.Route]
	ListenProgress(ctx context.Context) *result.Subscription[[]*models.RouteProgress]
	// BuildOverlay synthesizes the map overlay for an ordered stop list:
	// markers for every stop plus whatever driving legs could be fetched.
	BuildOverlay(ctx context.Context, stops []models.AreaProgress) RouteOverlay
	// ETA returns the provider's duration text between two coordinates, or
	// the "N/A" sentinel.
	ETA(ctx context.Context, origin, destination models.Coordinate) string
}

// HolidayService defines the interface for holiday reference data.
type HolidayService interface {
	// Holidays returns all holidays sorted ascending by date; an unparseable
	// date sorts first.
	Holidays(ctx context.Context) ([]*models.Holiday, error)
	// Refresh reloads the in-memory cache from the repository.
	Refresh(ctx context.Context) error
}

// FeedbackService defines the interface for worker feedback submission.
type FeedbackService interface {
	Submit(ctx context.Context, userID string, req models.SubmitFeedbackRequest) error
}
