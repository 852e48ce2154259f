package db

import (
	"context"

	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

// AuthRepository wraps the identity-provider operations the service needs.
type AuthRepository interface {
	// CreateAccount creates a new auth identity and returns its UID.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	// EmailVerified reloads the identity and reports its verified flag.
	EmailVerified(ctx context.Context, uid string) (bool, error)
}

// UserRepository defines the interface for profile document storage.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	// Listen streams the caller's own profile document.
	Listen(ctx context.Context, userID string) *result.Subscription[*models.User]
}

// RouteRepository defines the interface for route reference data. Routes are
// read-only to this service; back-office tooling maintains them.
type RouteRepository interface {
	GetAll(ctx context.Context) ([]*models.Route, error)
	// Listen streams the full route set, unfiltered.
	Listen(ctx context.Context) *result.Subscription[[]*models.Route]
}

// RouteProgressRepository defines the interface for live per-day run state.
// The client only ever reads these documents; field crews write them.
type RouteProgressRepository interface {
	// Listen streams all route-progress documents, unfiltered.
	Listen(ctx context.Context) *result.Subscription[[]*models.RouteProgress]
}

// ReportRepository defines the interface for report document storage.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) (string, error)
	GetByID(ctx context.Context, reportID string) (*models.Report, error)
	Update(ctx context.Context, report *models.Report) error
	Delete(ctx context.Context, reportID string) error
	// ListenByUser streams the reports filed by one user.
	ListenByUser(ctx context.Context, userID string) *result.Subscription[[]*models.Report]
}

// ExtraServiceRepository stores extra pickup requests in the per-user
// users/{uid}/extra_services sub-collection.
type ExtraServiceRepository interface {
	Create(ctx context.Context, req *models.ExtraServiceRequest) (string, error)
	GetByID(ctx context.Context, userID, requestID string) (*models.ExtraServiceRequest, error)
	ListByUser(ctx context.Context, userID string) ([]*models.ExtraServiceRequest, error)
	Delete(ctx context.Context, userID, requestID string) error
}

// HolidayRepository defines the interface for holiday reference data.
type HolidayRepository interface {
	GetAll(ctx context.Context) ([]*models.Holiday, error)
}

// FeedbackRepository stores worker feedback. Write-only from the client's
// perspective; there is no read-back.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.WorkerFeedback) error
}
