package core

import (
	"context"
	"errors"
	"fmt"

	"wastesync-backend-go/internal/db"
	"wastesync-backend-go/internal/models"
	"wastesync-backend-go/internal/result"
)

// ErrReportNotFound is returned when a report does not exist.
var ErrReportNotFound = errors.New("report not found")

// ErrForbiddenAccess is returned when a caller touches a document owned by
// someone else.
var ErrForbiddenAccess = errors.New("access to resource is forbidden")

// ErrReportNotPending is returned when a mutation requires Pending status.
// The gate used to live only in the UI; it is a service invariant here.
var ErrReportNotPending = errors.New("report is no longer pending")

// reportService implements the ReportService interface.
type reportService struct {
	reportRepo db.ReportRepository
}

// NewReportService creates a new ReportService instance.
func NewReportService(reportRepo db.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// CreateReport files a new report for userID. Status is always forced to
// Pending on creation regardless of anything in the request.
func (s *reportService) CreateReport(ctx context.Context, userID string, req models.CreateReportRequest) (*models.Report, error) {
	report := &models.Report{
		UserID:      userID,
		DriverID:    req.DriverID,
		CollectorID: req.CollectorID,
		RouteID:     req.RouteID,
		AreaID:      req.AreaID,
		AreaName:    req.AreaName,
		Description: req.Description,
		Attachments: req.Attachments,
		Status:      models.StatusPending,
	}

	id, err := s.reportRepo.Create(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	report.ID = id
	return report, nil
}

// UpdateReport edits a report's free-text content. Only the owner may edit,
// and only while the report is still Pending.
func (s *reportService) UpdateReport(ctx context.Context, userID, reportID string, req models.UpdateReportRequest) (*models.Report, error) {
	report, err := s.ownedPendingReport(ctx, userID, reportID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		report.Description = *req.Description
	}
	if req.Attachments != nil {
		report.Attachments = *req.Attachments
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report '%s': %w", reportID, err)
	}
	return report, nil
}

// DeleteReport removes a report. Only the owner may delete, and only while
// the report is still Pending (case-insensitive comparison, since historical
// documents carry arbitrary casing).
func (s *reportService) DeleteReport(ctx context.Context, userID, reportID string) error {
	if _, err := s.ownedPendingReport(ctx, userID, reportID); err != nil {
		return err
	}
	if err := s.reportRepo.Delete(ctx, reportID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("%w: '%s'", ErrReportNotFound, reportID)
		}
		return fmt.Errorf("failed to delete report '%s': %w", reportID, err)
	}
	return nil
}

// ListenOwnReports streams the reports filed by userID.
func (s *reportService) ListenOwnReports(ctx context.Context, userID string) *result.Subscription[[]*models.Report] {
	return s.reportRepo.ListenByUser(ctx, userID)
}

// ownedPendingReport fetches the report and enforces ownership plus the
// Pending-only mutation gate.
func (s *reportService) ownedPendingReport(ctx context.Context, userID, reportID string) (*models.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrReportNotFound, reportID)
		}
		return nil, fmt.Errorf("failed to get report '%s': %w", reportID, err)
	}
	if report.UserID != userID {
		return nil, ErrForbiddenAccess
	}
	if !report.Status.IsPending() {
		return nil, ErrReportNotPending
	}
	return report, nil
}
